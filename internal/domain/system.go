package domain

// Gravity is the standard gravitational acceleration in m/s².
const Gravity = 9.80665

// PipeSystem holds the physical parameters of one pipe run, stored in
// SI units. Build it with NewPipeSystem; the value is immutable
// afterwards.
type PipeSystem struct {
	Diameter  float64   `json:"pipe_diameter_m"`             // inner diameter, meters
	Length    float64   `json:"pipe_length_m"`               // meters
	FlowRate  float64   `json:"flow_rate_m3s"`               // m³/s
	Roughness float64   `json:"pipe_roughness_m"`            // absolute roughness, meters
	Density   float64   `json:"fluid_density_kgm3"`          // kg/m³
	Viscosity float64   `json:"fluid_dynamic_viscosity_pas"` // Pa·s
	KFactors  []float64 `json:"k_factors,omitempty"`         // fitting loss coefficients, dimensionless
}

// NewPipeSystem builds a PipeSystem from catalog-style inputs: diameter
// and roughness in millimeters (divided by 1000), everything else
// already SI. No validation happens here; non-physical inputs surface
// later as ±Inf or NaN in derived quantities.
func NewPipeSystem(diameterMm, lengthM, flowRateM3s, roughnessMm, density, viscosity float64, kFactors []float64) PipeSystem {
	return PipeSystem{
		Diameter:  diameterMm / 1000,
		Length:    lengthM,
		FlowRate:  flowRateM3s,
		Roughness: roughnessMm / 1000,
		Density:   density,
		Viscosity: viscosity,
		KFactors:  kFactors,
	}
}
