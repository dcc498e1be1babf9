package domain

import "math"

// ReynoldsFloor is the Reynolds number at or below which none of the
// available friction-factor correlations apply.
const ReynoldsFloor = 2500

// FlowVelocity returns the mean flow speed in m/s of a volumetric flow
// rate through a circular section of the given diameter.
func FlowVelocity(flowRate, diameter float64) float64 {
	surface := math.Pi * diameter * diameter / 4
	return flowRate / surface
}

// RelativeRoughness returns the pipe's absolute roughness normalized by
// its diameter.
func RelativeRoughness(roughness, diameter float64) float64 {
	return roughness / diameter
}

// ReynoldsNumber returns the dimensionless ratio of inertial to viscous
// forces for the given flow conditions.
// https://en.wikipedia.org/wiki/Reynolds_number
func ReynoldsNumber(density, velocity, diameter, viscosity float64) float64 {
	return density * velocity * diameter / viscosity
}

// CheckReynoldsRange returns a *ReynoldsRangeError when the Reynolds
// number is at or below ReynoldsFloor. A non-nil return is terminal:
// head-loss computation must not proceed.
func CheckReynoldsRange(reynolds float64) error {
	if reynolds <= ReynoldsFloor {
		return &ReynoldsRangeError{Reynolds: reynolds}
	}
	return nil
}

// MajorHeadloss returns the Darcy-Weisbach distributed head loss in mCE
// for one friction factor over the pipe length.
func MajorHeadloss(frictionFactor, length, diameter, velocity float64) float64 {
	return frictionFactor * (length / diameter) * (velocity * velocity / (2 * Gravity))
}

// MinorHeadloss returns the localized head loss in mCE for a summed
// fitting coefficient.
func MinorHeadloss(globalK, velocity float64) float64 {
	return globalK * (velocity * velocity) / (2 * Gravity)
}
