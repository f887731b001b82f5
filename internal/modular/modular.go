// Package modular provides residue arithmetic in the prime field Z/pZ
package modular

// Add returns (a + b) mod p
func Add(a, b, p uint8) uint8 {
	return uint8((uint16(a%p) + uint16(b%p)) % uint16(p))
}

// Sub returns (a - b) mod p, always in [0, p)
func Sub(a, b, p uint8) uint8 {
	return uint8((uint16(a%p) + uint16(p) - uint16(b%p)) % uint16(p))
}

// Mul returns (a * b) mod p
func Mul(a, b, p uint8) uint8 {
	return uint8(uint16(a%p) * uint16(b%p) % uint16(p))
}

// Neg returns the additive inverse of a mod p
func Neg(a, p uint8) uint8 {
	return Sub(0, a, p)
}

// Pow returns a^e mod p by square-and-multiply
func Pow(a uint8, e uint, p uint8) uint8 {
	result := uint8(1 % p)
	base := a % p
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base, p)
		}
		base = Mul(base, base, p)
		e >>= 1
	}
	return result
}

// Inverse returns the multiplicative inverse of v mod p by exhaustive
// search over the nonzero residues, or ErrNoInverse when v is zero mod p
func Inverse(v, p uint8) (uint8, error) {
	v %= p
	for c := uint8(1); c < p; c++ {
		if Mul(v, c, p) == 1 {
			return c, nil
		}
	}
	return 0, ErrNoInverse
}
