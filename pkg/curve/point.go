package curve

import (
	"fmt"

	"github.com/Caqil/eclab/pkg/field"
)

// Point is an element of the curve group: either an affine coordinate
// pair or the distinguished identity. The zero value is the identity.
// Points are immutable values; group operations return new ones.
type Point struct {
	x, y   field.Element
	affine bool
}

// Infinity returns the group identity
func Infinity() Point {
	return Point{}
}

// NewPoint creates the affine point (x, y). The coordinates are not
// checked against any curve equation; callers that need the guarantee
// use Curve.IsOnCurve.
func NewPoint(x, y field.Element) Point {
	return Point{x: x, y: y, affine: true}
}

// X returns the x coordinate, the zero element for the identity
func (p Point) X() field.Element {
	return p.x
}

// Y returns the y coordinate, the zero element for the identity
func (p Point) Y() field.Element {
	return p.y
}

// IsInfinity checks if the point is the group identity
func (p Point) IsInfinity() bool {
	return !p.affine
}

// IsEqual checks if two points are equal
func (p Point) IsEqual(other Point) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() && other.IsInfinity()
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

// Bytes returns the canonical encoding: 0x00 for the identity, or the
// uncompressed form 0x04 || x || y
func (p Point) Bytes() []byte {
	if p.IsInfinity() {
		return []byte{0x00}
	}
	out := make([]byte, 0, 5)
	out = append(out, 0x04)
	out = append(out, p.x.Bytes()...)
	out = append(out, p.y.Bytes()...)
	return out
}

// String renders the point as "Point at infinity" or "(x, y)"
func (p Point) String() string {
	if p.IsInfinity() {
		return "Point at infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
