// Package domain models pipe-flow head-loss calculation using the
// Darcy-Weisbach equation and empirical friction-factor correlations.
//
// # Units
//
// All stored quantities are SI: diameter, length, and roughness in
// meters, flow rate in m³/s, density in kg/m³, dynamic viscosity in
// Pa·s. Construction accepts diameter and roughness in millimeters
// because that is how pipe dimensions are tabulated, and divides by
// 1000; no other unit conversion is performed. Head losses are
// expressed in meters of fluid column (mCE). Gravity is fixed at
// 9.80665 m/s².
//
// # Friction-factor correlations
//
// Each correlation is an explicit approximation of the implicit
// Colebrook-White equation, taking relative roughness Rr and Reynolds
// number Re:
//
//	Serghides (1984):  three nested logarithmic corrections A, B, C;
//	                   stated range 2500 < Re < 1e8, 0 < Rr < 0.05.
//	Fang (2011):       single-log fit; stated range 3000 < Re < 1e8,
//	                   0 < Rr < 0.05.
//	Bellos-Nalbantis-Tsakris (2018): blended-exponent model covering
//	                   laminar through rough-turbulent regimes; stated
//	                   range 3000 < Re < 1e8.
//
// Stated ranges are advisory and deliberately not enforced; the only
// hard gate is the [ReynoldsFloor] at 2500, below which no correlation
// here is applicable and [CheckReynoldsRange] returns a
// [ReynoldsRangeError]. Out-of-range inputs follow IEEE-754: division
// by zero and logarithms of non-positive values produce ±Inf or NaN,
// which propagate into the results rather than panicking.
//
// # Model selection
//
// [ModelsFor] picks correlations by flow regime:
//
//	Re > 3000:          Serghides, Fang, BNT (in that order)
//	2500 < Re <= 3000:  Serghides only
//	Re <= 2500:         none
//
// Report labels are fixed per model, e.g. "1984 - Serghide's model";
// see [Model.Label].
//
// # Averaging
//
// The average major head loss historically divides the sum of model
// entries by 3, the maximum model count, even when only Serghides ran.
// That behavior is kept as [AverageFixedDivisor], the default;
// [AverageOfModels] divides by the actual entry count instead. See
// [AverageMajorHeadloss].
package domain
