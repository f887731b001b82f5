package field

import "errors"

var (
	// ErrZeroInverse is returned when inverting or dividing by the zero element
	ErrZeroInverse = errors.New("inverse of zero element")
)
