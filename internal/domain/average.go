package domain

import "fmt"

// AveragePolicy selects the divisor used when reducing per-model major
// head losses to a single average.
type AveragePolicy int

const (
	// AverageFixedDivisor divides the sum by the maximum model count (3)
	// no matter how many models ran. Historical behavior, the default.
	AverageFixedDivisor AveragePolicy = iota
	// AverageOfModels divides by the number of models that actually ran.
	AverageOfModels
)

// maxModelCount is the fixed divisor used by AverageFixedDivisor.
const maxModelCount = 3

// String returns the config-facing name: "fixed" or "mean".
func (p AveragePolicy) String() string {
	if p == AverageOfModels {
		return "mean"
	}
	return "fixed"
}

// ParseAveragePolicy maps a config value to a policy. Accepts "fixed"
// and "mean".
func ParseAveragePolicy(s string) (AveragePolicy, error) {
	switch s {
	case "fixed":
		return AverageFixedDivisor, nil
	case "mean":
		return AverageOfModels, nil
	default:
		return AverageFixedDivisor, fmt.Errorf("unknown average policy %q (valid: fixed, mean)", s)
	}
}

// AverageMajorHeadloss reduces per-model major head losses to one value
// under the given policy. Under AverageFixedDivisor the sum is divided
// by 3 even when a single model ran, so the result is not an arithmetic
// mean in the transitional regime. An empty input yields 0 under
// AverageFixedDivisor and NaN under AverageOfModels.
func AverageMajorHeadloss(values []ModelValue, policy AveragePolicy) float64 {
	var sum float64
	for _, v := range values {
		sum += v.Value
	}
	if policy == AverageOfModels {
		return sum / float64(len(values))
	}
	return sum / maxModelCount
}
