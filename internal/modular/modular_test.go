package modular

import (
	"errors"
	"testing"
)

func TestAddSubMulNeg(t *testing.T) {
	const p = 5

	tests := []struct {
		name string
		op   func(a, b uint8) uint8
		a, b uint8
		want uint8
	}{
		{"add simple", func(a, b uint8) uint8 { return Add(a, b, p) }, 2, 2, 4},
		{"add wraps", func(a, b uint8) uint8 { return Add(a, b, p) }, 3, 4, 2},
		{"add unreduced inputs", func(a, b uint8) uint8 { return Add(a, b, p) }, 7, 9, 1},
		{"sub simple", func(a, b uint8) uint8 { return Sub(a, b, p) }, 4, 1, 3},
		{"sub wraps", func(a, b uint8) uint8 { return Sub(a, b, p) }, 1, 3, 3},
		{"mul simple", func(a, b uint8) uint8 { return Mul(a, b, p) }, 2, 2, 4},
		{"mul wraps", func(a, b uint8) uint8 { return Mul(a, b, p) }, 4, 4, 1},
		{"mul by zero", func(a, b uint8) uint8 { return Mul(a, b, p) }, 0, 3, 0},
		{"neg nonzero", func(a, _ uint8) uint8 { return Neg(a, p) }, 2, 0, 3},
		{"neg zero", func(a, _ uint8) uint8 { return Neg(a, p) }, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.a, tt.b); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPow(t *testing.T) {
	const p = 5

	tests := []struct {
		name string
		a    uint8
		e    uint
		want uint8
	}{
		{"zero exponent", 3, 0, 1},
		{"first power", 4, 1, 4},
		{"square", 3, 2, 4},
		{"fermat", 2, 4, 1},
		{"cube", 2, 3, 3},
		{"zero base", 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pow(tt.a, tt.e, p); got != tt.want {
				t.Errorf("Pow(%d, %d, %d) = %d, want %d", tt.a, tt.e, p, got, tt.want)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	const p = 5

	for v := uint8(1); v < p; v++ {
		inv, err := Inverse(v, p)
		if err != nil {
			t.Fatalf("Inverse(%d, %d): %v", v, p, err)
		}
		if got := Mul(v, inv, p); got != 1 {
			t.Errorf("%d * %d mod %d = %d, want 1", v, inv, p, got)
		}
	}
}

func TestInverseOfZero(t *testing.T) {
	if _, err := Inverse(0, 5); !errors.Is(err, ErrNoInverse) {
		t.Errorf("expected ErrNoInverse, got %v", err)
	}
}
