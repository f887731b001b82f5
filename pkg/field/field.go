// Package field implements arithmetic in GF(5^2), the quadratic extension
// of the five-element prime field built from the irreducible x^2 + 2.
package field

import (
	"fmt"
	"strconv"

	"github.com/Caqil/eclab/internal/modular"
)

const (
	// P is the characteristic of the base field
	P = 5

	// irreducibleTerm is the constant coefficient of the defining
	// quadratic x^2 + irreducibleTerm
	irreducibleTerm = 2
)

var (
	// reduction rewrites t^2 during multiplication: t^2 = -irreducibleTerm mod P
	reduction = modular.Neg(irreducibleTerm, P)

	// frobeniusScale multiplies the t coefficient under x -> x^P,
	// t^P = reduction^((P-1)/2) * t
	frobeniusScale = modular.Pow(reduction, (P-1)/2, P)
)

// Element is a value a + b*t in GF(5^2). Both coefficients are kept in
// canonical range [0, P). The zero value is the field's zero element.
// Elements are immutable; every operation returns a new value.
type Element struct {
	a uint8 // coefficient of 1
	b uint8 // coefficient of t
}

// New creates an element a + b*t, reducing both coefficients mod P
func New(a, b uint8) Element {
	return Element{a % P, b % P}
}

// Zero returns the additive identity
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity
func One() Element {
	return Element{a: 1}
}

// Coeffs returns the canonical coefficients (a, b) of a + b*t
func (e Element) Coeffs() (uint8, uint8) {
	return e.a, e.b
}

// IsZero reports whether e is the zero element
func (e Element) IsZero() bool {
	return e.a == 0 && e.b == 0
}

// IsOne reports whether e is the multiplicative identity
func (e Element) IsOne() bool {
	return e.a == 1 && e.b == 0
}

// Equal reports whether e and other are the same element
func (e Element) Equal(other Element) bool {
	return e.a == other.a && e.b == other.b
}

// Add returns e + other
func (e Element) Add(other Element) Element {
	return Element{
		a: modular.Add(e.a, other.a, P),
		b: modular.Add(e.b, other.b, P),
	}
}

// Sub returns e - other
func (e Element) Sub(other Element) Element {
	return Element{
		a: modular.Sub(e.a, other.a, P),
		b: modular.Sub(e.b, other.b, P),
	}
}

// Neg returns -e
func (e Element) Neg() Element {
	return Element{
		a: modular.Neg(e.a, P),
		b: modular.Neg(e.b, P),
	}
}

// Mul returns e * other. With e = a + b*t and other = c + d*t,
// the product is (a*c + r*b*d) + (a*d + b*c)*t where r rewrites t^2.
func (e Element) Mul(other Element) Element {
	ac := modular.Mul(e.a, other.a, P)
	bd := modular.Mul(e.b, other.b, P)
	ad := modular.Mul(e.a, other.b, P)
	bc := modular.Mul(e.b, other.a, P)
	return Element{
		a: modular.Add(ac, modular.Mul(reduction, bd, P), P),
		b: modular.Add(ad, bc, P),
	}
}

// Square returns e * e
func (e Element) Square() Element {
	return e.Mul(e)
}

// Exp returns e^n by square-and-multiply
func (e Element) Exp(n uint) Element {
	result := One()
	base := e
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Conjugate returns a - b*t, the image of e under the nontrivial field
// automorphism fixing the base field
func (e Element) Conjugate() Element {
	return Element{
		a: e.a,
		b: modular.Neg(e.b, P),
	}
}

// Norm returns the base-field norm a^2 - r*b^2 mod P, the product of e
// with its conjugate
func (e Element) Norm() uint8 {
	aa := modular.Mul(e.a, e.a, P)
	bb := modular.Mul(e.b, e.b, P)
	return modular.Sub(aa, modular.Mul(reduction, bb, P), P)
}

// Inverse returns e^-1, the conjugate divided by the norm.
// Inverting the zero element returns ErrZeroInverse.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrZeroInverse
	}
	normInv, err := modular.Inverse(e.Norm(), P)
	if err != nil {
		return Element{}, err
	}
	conj := e.Conjugate()
	return Element{
		a: modular.Mul(conj.a, normInv, P),
		b: modular.Mul(conj.b, normInv, P),
	}, nil
}

// Div returns e / other. Dividing by zero returns ErrZeroInverse.
func (e Element) Div(other Element) (Element, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// Frobenius returns e^P, computed directly as a + frobeniusScale*b*t
func (e Element) Frobenius() Element {
	return Element{
		a: e.a,
		b: modular.Mul(frobeniusScale, e.b, P),
	}
}

// Chi returns the quadratic character of e: 0 for the zero element,
// 1 for a nonzero square, -1 for a non-square
func (e Element) Chi() int {
	if e.IsZero() {
		return 0
	}
	if e.Exp((P*P - 1) / 2).IsOne() {
		return 1
	}
	return -1
}

// IsSquare reports whether e has a square root in the field
func (e Element) IsSquare() bool {
	return e.Chi() >= 0
}

// Bytes returns the canonical two-byte encoding {a, b}
func (e Element) Bytes() []byte {
	return []byte{e.a, e.b}
}

// String renders e as "0", "a", "bt" or "a + bt"
func (e Element) String() string {
	switch {
	case e.a == 0 && e.b == 0:
		return "0"
	case e.b == 0:
		return strconv.Itoa(int(e.a))
	case e.a == 0:
		return fmt.Sprintf("%dt", e.b)
	default:
		return fmt.Sprintf("%d + %dt", e.a, e.b)
	}
}

// Universe returns all P^2 field elements ordered by the 1-coefficient
// first and the t-coefficient second. The slice is freshly allocated on
// every call; callers own it.
func Universe() []Element {
	elems := make([]Element, 0, P*P)
	for a := uint8(0); a < P; a++ {
		for b := uint8(0); b < P; b++ {
			elems = append(elems, Element{a, b})
		}
	}
	return elems
}
