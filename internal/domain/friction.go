package domain

import "math"

// Model identifies a friction-factor correlation.
type Model int

const (
	// ModelSerghides is Serghides' 1984 explicit approximation.
	ModelSerghides Model = iota
	// ModelFang is Fang's 2011 single-logarithm correlation.
	ModelFang
	// ModelBNT is the Bellos-Nalbantis-Tsakris 2018 blended-exponent model.
	ModelBNT
)

// turbulentThreshold is the Reynolds number above which every
// correlation applies; in (ReynoldsFloor, turbulentThreshold] only
// Serghides does.
const turbulentThreshold = 3000

// modelSpec pairs a Model with its report label, short name,
// applicability bound, and correlation function.
type modelSpec struct {
	label       string
	name        string
	minReynolds float64
	compute     func(relativeRoughness, reynolds float64) float64
}

var modelSpecs = [...]modelSpec{
	ModelSerghides: {label: "1984 - Serghide's model", name: "serghides", minReynolds: ReynoldsFloor, compute: Serghides},
	ModelFang:      {label: "2011 - Fang's model", name: "fang", minReynolds: turbulentThreshold, compute: Fang},
	ModelBNT:       {label: "2018 - BNT's model", name: "bnt", minReynolds: turbulentThreshold, compute: BNT},
}

// Label returns the fixed report label, e.g. "1984 - Serghide's model".
func (m Model) Label() string { return modelSpecs[m].label }

// String returns the short machine-friendly name: "serghides", "fang",
// or "bnt".
func (m Model) String() string { return modelSpecs[m].name }

// MarshalText implements encoding.TextMarshaler so models serialize as
// their short names.
func (m Model) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Factor evaluates the model's correlation at the given relative
// roughness and Reynolds number.
func (m Model) Factor(relativeRoughness, reynolds float64) float64 {
	return modelSpecs[m].compute(relativeRoughness, reynolds)
}

// Models returns every correlation in evaluation order.
func Models() []Model {
	return []Model{ModelSerghides, ModelFang, ModelBNT}
}

// ModelsFor returns the correlations applicable at the given Reynolds
// number, in evaluation order: all three above 3000, Serghides alone in
// (2500, 3000], none at or below 2500.
func ModelsFor(reynolds float64) []Model {
	var models []Model
	for _, m := range Models() {
		if reynolds > modelSpecs[m].minReynolds {
			models = append(models, m)
		}
	}
	return models
}

// Serghides computes the 1984 Serghides approximation: three nested
// logarithmic corrections A, B, C of the Colebrook-White equation.
func Serghides(relativeRoughness, reynolds float64) float64 {
	a := -2 * math.Log10(relativeRoughness/3.7+12/reynolds)
	b := -2 * math.Log10(relativeRoughness/3.7+2.51*a/reynolds)
	c := -2 * math.Log10(relativeRoughness/3.7+2.51*b/reynolds)
	return math.Pow(a-(b-a)*(b-a)/(c-2*b+a), -2)
}

// Fang computes the 2011 Fang correlation.
// https://www.sciencedirect.com/science/article/pii/S0029549311000173
func Fang(relativeRoughness, reynolds float64) float64 {
	arg := 0.234*math.Pow(relativeRoughness, 1.1007) -
		60.525/math.Pow(reynolds, 1.1105) +
		56.291/math.Pow(reynolds, 1.0712)
	return 1.613 * math.Pow(math.Log(arg), -2)
}

// BNT computes the 2018 Bellos-Nalbantis-Tsakris model, which blends
// the laminar, smooth-turbulent, and rough-turbulent asymptotes through
// Reynolds-dependent exponents.
func BNT(relativeRoughness, reynolds float64) float64 {
	invRoughness := 1 / relativeRoughness
	paramA := 1 / (1 + math.Pow(reynolds/2712, 8.4))
	paramB := 1 / (1 + math.Pow(reynolds/(150*invRoughness), 1.8))
	exponentA := 2 * (paramA - 1) * paramB
	exponentB := 2 * (paramA - 1) * (1 - paramB)
	return math.Pow(64/reynolds, paramA) *
		math.Pow(0.75*math.Log(reynolds/5.37), exponentA) *
		math.Pow(0.88*math.Log(6.82*invRoughness), exponentB)
}
