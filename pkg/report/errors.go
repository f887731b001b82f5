package report

import "errors"

var (
	// ErrNilScanner is returned when no scanner is provided
	ErrNilScanner = errors.New("scanner cannot be nil")
)
