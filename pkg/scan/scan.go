// Package scan enumerates curve points and torsion subgroups by brute
// force over the GF(5^2) coordinate universe.
package scan

import (
	"crypto/rand"
	"math/big"

	"github.com/Caqil/eclab/internal/validate"
	"github.com/Caqil/eclab/pkg/curve"
	"github.com/Caqil/eclab/pkg/field"
)

// Scanner enumerates the points of one curve over a fixed coordinate
// universe. A scanner holds no mutable state: every method can be
// called repeatedly and returns the same sequence each time.
type Scanner struct {
	crv      curve.Curve
	universe []field.Element
}

// New creates a scanner for the curve over the given universe. The
// universe is copied, so callers may keep mutating their slice. The
// elements must be unique and non-empty; they are usually
// field.Universe() but any subset works and restricts the search.
func New(crv curve.Curve, universe []field.Element) (*Scanner, error) {
	if err := validate.Universe(universe); err != nil {
		return nil, err
	}
	elems := make([]field.Element, len(universe))
	copy(elems, universe)
	return &Scanner{crv: crv, universe: elems}, nil
}

// Curve returns the scanned curve
func (s *Scanner) Curve() curve.Curve {
	return s.crv
}

// Universe returns a copy of the coordinate universe
func (s *Scanner) Universe() []field.Element {
	elems := make([]field.Element, len(s.universe))
	copy(elems, s.universe)
	return elems
}

// Points returns every affine curve point with both coordinates in the
// universe, x-major and y-minor in universe order. The identity is not
// included.
func (s *Scanner) Points() []curve.Point {
	var points []curve.Point
	for _, x := range s.universe {
		rhs := s.crv.RHS(x)
		for _, y := range s.universe {
			if y.Square().Equal(rhs) {
				points = append(points, curve.NewPoint(x, y))
			}
		}
	}
	return points
}

// Count returns the group order without walking the y axis: each x
// contributes 1 + chi(x^3+Ax+B) solutions and the identity adds one.
// The character argument only holds when the universe is the whole
// field; over a subset Points is authoritative.
func (s *Scanner) Count() int {
	count := len(s.universe) + 1
	for _, x := range s.universe {
		count += s.crv.RHS(x).Chi()
	}
	return count
}

// TorsionPoints returns the points P with r*P = O in enumeration order,
// with the identity appended last. The full r-torsion lands in the
// result whenever the universe covers the field the torsion is rational
// over.
func (s *Scanner) TorsionPoints(r uint64) ([]curve.Point, error) {
	if err := validate.TorsionOrder(r); err != nil {
		return nil, err
	}

	var points []curve.Point
	for _, p := range s.Points() {
		rp, err := s.crv.ScalarMult(p, r)
		if err != nil {
			return nil, err
		}
		if rp.IsInfinity() {
			points = append(points, p)
		}
	}
	return append(points, curve.Infinity()), nil
}

// FrobeniusEigenspace returns the points P satisfying pi(P) = [5]P,
// where pi raises both coordinates to the fifth power, with the
// identity appended last. These are the points on which Frobenius acts
// as multiplication by the field characteristic.
func (s *Scanner) FrobeniusEigenspace() ([]curve.Point, error) {
	var points []curve.Point
	for _, p := range s.Points() {
		mult, err := s.crv.ScalarMult(p, field.P)
		if err != nil {
			return nil, err
		}
		if s.crv.Frobenius(p).IsEqual(mult) {
			points = append(points, p)
		}
	}
	return append(points, curve.Infinity()), nil
}

// FrobeniusFixed returns the points fixed by Frobenius, the subgroup
// rational over the base field, with the identity appended last
func (s *Scanner) FrobeniusFixed() []curve.Point {
	var points []curve.Point
	for _, p := range s.Points() {
		if s.crv.Frobenius(p).IsEqual(p) {
			points = append(points, p)
		}
	}
	return append(points, curve.Infinity())
}

// RandomPoint draws a uniformly random group element from the affine
// points plus the identity
func (s *Scanner) RandomPoint() (curve.Point, error) {
	points := append(s.Points(), curve.Infinity())
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(points))))
	if err != nil {
		return curve.Point{}, err
	}
	return points[idx.Int64()], nil
}
