package domain

import "time"

// ModelValue pairs a correlation with a value derived from it. Slices
// of ModelValue keep the fixed evaluation order, so reports stay
// stable.
type ModelValue struct {
	Model Model   `json:"model"`
	Value float64 `json:"value"`
}

// MinorLoss holds the localized-loss results. It is present on a
// Result only when fitting coefficients were supplied.
type MinorLoss struct {
	GlobalK  float64 `json:"global_k_factor"`
	Headloss float64 `json:"minor_headloss_mce"`
	Total    float64 `json:"total_headloss_mce"` // average major + minor
}

// Result is the complete outcome of one head-loss computation.
type Result struct {
	System PipeSystem `json:"system"`

	FluidVelocity     float64 `json:"fluid_velocity_ms"`
	RelativeRoughness float64 `json:"relative_roughness"`
	ReynoldsNumber    float64 `json:"reynolds_number"`

	FrictionFactors      []ModelValue `json:"friction_factors"`
	MajorHeadloss        []ModelValue `json:"major_headloss_mce"`
	AverageMajorHeadloss float64      `json:"average_major_headloss_mce"`

	Minor *MinorLoss `json:"minor,omitempty"`

	ComputedAt time.Time `json:"computed_at"`
}

// Stamp records the computation time on the result using the package
// clock.
func (r *Result) Stamp() {
	r.ComputedAt = clock.Now()
}
