// Package curve implements the short Weierstrass group law for curves
// y^2 = x^3 + Ax + B over GF(5^2).
package curve

import (
	"github.com/Caqil/eclab/pkg/field"
)

// Curve is a short Weierstrass curve over GF(5^2), fixed by its two
// coefficients. The group law is the usual chord-and-tangent rule.
type Curve struct {
	a field.Element
	b field.Element
}

// New creates a curve with the given coefficients. Coefficient pairs
// with 4A^3 + 27B^2 = 0 describe singular curves and are rejected.
func New(a, b field.Element) (Curve, error) {
	disc := field.New(4, 0).Mul(a.Exp(3)).Add(field.New(27, 0).Mul(b.Square()))
	if disc.IsZero() {
		return Curve{}, ErrSingularCurve
	}
	return Curve{a: a, b: b}, nil
}

// A returns the coefficient of x in the curve equation
func (c Curve) A() field.Element {
	return c.a
}

// B returns the constant coefficient of the curve equation
func (c Curve) B() field.Element {
	return c.b
}

// RHS evaluates the right-hand side x^3 + Ax + B of the curve equation
func (c Curve) RHS(x field.Element) field.Element {
	return x.Exp(3).Add(c.a.Mul(x)).Add(c.b)
}

// IsOnCurve verifies that p satisfies the curve equation. The identity
// belongs to every curve.
func (c Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	return p.y.Square().Equal(c.RHS(p.x))
}

// Negate computes -P, the reflection across the x axis
func (c Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return NewPoint(p.x, p.y.Neg())
}

// Add computes P + Q by the chord-and-tangent rule. Identity operands
// short-circuit, a point plus its negation yields the identity before
// either slope divides, exact equality takes the tangent slope and any
// other pair the secant slope. Doubling a point whose y ordinate is
// zero still divides by zero; that error is returned as is.
func (c Curve) Add(p, q Point) (Point, error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	if p.x.Equal(q.x) && !p.y.Equal(q.y) {
		return Infinity(), nil
	}

	var lambda field.Element
	if p.IsEqual(q) {
		num := field.New(3, 0).Mul(p.x.Square()).Add(c.a)
		l, err := num.Div(field.New(2, 0).Mul(p.y))
		if err != nil {
			return Point{}, err
		}
		lambda = l
	} else {
		l, err := q.y.Sub(p.y).Div(q.x.Sub(p.x))
		if err != nil {
			return Point{}, err
		}
		lambda = l
	}

	x3 := lambda.Square().Sub(p.x).Sub(q.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return NewPoint(x3, y3), nil
}

// Double computes 2*P
func (c Curve) Double(p Point) (Point, error) {
	return c.Add(p, p)
}

// ScalarMult computes k*P by double-and-add over the bits of k from
// least to most significant. k=0 yields the identity.
func (c Curve) ScalarMult(p Point, k uint64) (Point, error) {
	result := Infinity()
	base := p
	var err error
	for k > 0 {
		if k&1 == 1 {
			result, err = c.Add(result, base)
			if err != nil {
				return Point{}, err
			}
		}
		base, err = c.Add(base, base)
		if err != nil {
			return Point{}, err
		}
		k >>= 1
	}
	return result, nil
}

// Frobenius applies the field Frobenius to both coordinates, the curve
// endomorphism (x, y) -> (x^5, y^5). The identity is fixed.
func (c Curve) Frobenius(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return NewPoint(p.x.Frobenius(), p.y.Frobenius())
}
