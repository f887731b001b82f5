// Package main demonstrates the chord-and-tangent group law on the
// curve y^2 = x^3 + x + 1 over GF(5^2)
package main

import (
	"fmt"
	"log"

	"github.com/Caqil/eclab/pkg/curve"
	"github.com/Caqil/eclab/pkg/field"
)

func main() {
	fmt.Println("=== Group Law Walkthrough: y^2 = x^3 + x + 1 over F(5^2) ===")

	crv, err := curve.New(field.New(1, 0), field.New(1, 0))
	if err != nil {
		log.Fatalf("Failed to build curve: %v", err)
	}

	// g generates the order-9 subgroup of base-field points
	g := curve.NewPoint(field.New(0, 0), field.New(1, 0))
	fmt.Printf("Generator G = %s\n", g)

	// Phase 1: tangent doubling
	fmt.Println("\nPhase 1: Doubling G...")
	twoG, err := crv.Double(g)
	if err != nil {
		log.Fatalf("Double failed: %v", err)
	}
	fmt.Printf("  ✓ 2G = %s\n", twoG)

	// Phase 2: secant addition
	fmt.Println("\nPhase 2: Adding 2G + G...")
	threeG, err := crv.Add(twoG, g)
	if err != nil {
		log.Fatalf("Add failed: %v", err)
	}
	fmt.Printf("  ✓ 3G = %s\n", threeG)

	// Phase 3: the scalar ladder walks the whole cyclic subgroup
	fmt.Println("\nPhase 3: Scalar ladder...")
	for k := uint64(0); k <= 9; k++ {
		p, err := crv.ScalarMult(g, k)
		if err != nil {
			log.Fatalf("ScalarMult(%d) failed: %v", k, err)
		}
		fmt.Printf("  %dG = %s\n", k, p)
	}
	fmt.Println("  ✓ 9G returns to the identity, so G has order 9")

	// Phase 4: inverse pairs collapse to the identity
	fmt.Println("\nPhase 4: Adding G to its negation...")
	sum, err := crv.Add(g, crv.Negate(g))
	if err != nil {
		log.Fatalf("Add failed: %v", err)
	}
	fmt.Printf("  ✓ G + (-G) = %s\n", sum)
}
