// Package validate checks scan parameters shared by the public packages
package validate

import (
	"errors"

	"github.com/Caqil/eclab/pkg/field"
)

var (
	// ErrInvalidTorsionOrder is returned when a torsion order is zero
	ErrInvalidTorsionOrder = errors.New("invalid torsion order: must be >= 1")

	// ErrEmptyUniverse is returned when no field elements are provided
	ErrEmptyUniverse = errors.New("universe cannot be empty")

	// ErrDuplicateElements is returned when universe elements repeat
	ErrDuplicateElements = errors.New("universe elements must be unique")
)

// TorsionOrder checks that r can define a torsion subgroup search
func TorsionOrder(r uint64) error {
	if r < 1 {
		return ErrInvalidTorsionOrder
	}
	return nil
}

// Universe checks that a coordinate universe is usable for enumeration
func Universe(elems []field.Element) error {
	if len(elems) == 0 {
		return ErrEmptyUniverse
	}

	seen := make(map[field.Element]struct{}, len(elems))
	for _, e := range elems {
		if _, ok := seen[e]; ok {
			return ErrDuplicateElements
		}
		seen[e] = struct{}{}
	}

	return nil
}
