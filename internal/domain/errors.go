package domain

import "errors"

// ErrNoKFactors reports a minor-head-loss computation requested without
// any fitting coefficients.
var ErrNoKFactors = errors.New("no k-factors supplied for minor headloss")

// ReynoldsRangeError reports a Reynolds number at or below
// ReynoldsFloor, where no friction-factor correlation applies. It is
// terminal: no head-loss values exist for such a flow.
type ReynoldsRangeError struct {
	Reynolds float64
}

func (e *ReynoldsRangeError) Error() string {
	return "Reynolds number is inferior or equal to 2500, none of the presented models can calculate major headlosses"
}
