package digest

import "errors"

var (
	// ErrHashToPointFailed is returned when no candidate x yields a curve point
	ErrHashToPointFailed = errors.New("hash-to-point failed to find valid point")
)
