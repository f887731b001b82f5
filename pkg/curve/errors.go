package curve

import "errors"

var (
	// ErrSingularCurve is returned when the coefficients give a zero discriminant
	ErrSingularCurve = errors.New("singular curve: discriminant is zero")
)
