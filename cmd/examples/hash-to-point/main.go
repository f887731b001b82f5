// Package main demonstrates deterministic hash-to-point mapping and
// scan fingerprints over GF(5^2)
package main

import (
	"fmt"
	"log"

	"github.com/Caqil/eclab/pkg/curve"
	"github.com/Caqil/eclab/pkg/digest"
	"github.com/Caqil/eclab/pkg/field"
	"github.com/Caqil/eclab/pkg/scan"
)

func main() {
	fmt.Println("=== Hash-to-Point Example ===")

	crv, err := curve.New(field.New(1, 0), field.New(1, 0))
	if err != nil {
		log.Fatalf("Failed to build curve: %v", err)
	}

	// Phase 1: map messages onto the curve
	fmt.Println("Phase 1: Mapping messages to curve points...")
	messages := []string{"alpha", "beta", "gamma", "delta"}
	points := make([]curve.Point, 0, len(messages))
	for _, msg := range messages {
		p, err := digest.HashToPoint([]byte(msg), crv)
		if err != nil {
			log.Fatalf("HashToPoint(%q) failed: %v", msg, err)
		}
		if !crv.IsOnCurve(p) {
			log.Fatalf("hashed point %s is not on the curve", p)
		}
		points = append(points, p)
		fmt.Printf("  ✓ %q -> %s\n", msg, p)
	}

	// Phase 2: the map is deterministic
	fmt.Println("\nPhase 2: Re-hashing the first message...")
	again, err := digest.HashToPoint([]byte(messages[0]), crv)
	if err != nil {
		log.Fatalf("HashToPoint failed: %v", err)
	}
	if !again.IsEqual(points[0]) {
		log.Fatalf("determinism broken: %s != %s", again, points[0])
	}
	fmt.Printf("  ✓ %q maps to %s again\n", messages[0], again)

	// Phase 3: fingerprint the full point enumeration
	fmt.Println("\nPhase 3: Fingerprinting the curve scan...")
	s, err := scan.New(crv, field.Universe())
	if err != nil {
		log.Fatalf("scan.New failed: %v", err)
	}
	enumerated := s.Points()
	fmt.Printf("  ✓ %d points, fingerprint %s\n", len(enumerated), digest.FingerprintHex(enumerated))
}
