package modular

import "errors"

var (
	// ErrNoInverse is returned when no multiplicative inverse exists
	ErrNoInverse = errors.New("no modular inverse found")
)
