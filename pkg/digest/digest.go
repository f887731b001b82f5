// Package digest produces canonical SHA3-256 digests of point
// sequences and a deterministic hash-to-point map.
package digest

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/Caqil/eclab/pkg/curve"
	"github.com/Caqil/eclab/pkg/field"
)

const (
	fingerprintDST = "ECLAB-V1-FINGERPRINT"
	hashToPointDST = "ECLAB-V1-HASH-TO-POINT"
)

// Fingerprint digests a point sequence into a single SHA3-256 value.
// The canonical point encodings feed the hash in sequence order, so two
// scans agree on the fingerprint exactly when they produce the same
// points in the same order.
func Fingerprint(points []curve.Point) [32]byte {
	h := sha3.New256()
	h.Write([]byte(fingerprintDST))
	for _, p := range points {
		h.Write(p.Bytes())
	}

	var out [32]byte
	h.Sum(out[:0])
	return out
}

// FingerprintHex returns the fingerprint as a lowercase hex string
func FingerprintHex(points []curve.Point) string {
	sum := Fingerprint(points)
	return hex.EncodeToString(sum[:])
}

// HashToPoint maps a message to a curve point by try-and-increment: the
// message digest picks a starting x, and candidate x values walk the
// universe in enumeration order until the curve equation has a
// solution. The first matching y in universe order is taken, making the
// map deterministic for a fixed curve.
func HashToPoint(msg []byte, crv curve.Curve) (curve.Point, error) {
	universe := field.Universe()

	h := sha3.New256()
	h.Write([]byte(hashToPointDST))
	h.Write(msg)
	seed := h.Sum(nil)

	start := int(binary.BigEndian.Uint16(seed[:2])) % len(universe)
	for i := 0; i < len(universe); i++ {
		x := universe[(start+i)%len(universe)]
		rhs := crv.RHS(x)
		if !rhs.IsSquare() {
			continue
		}
		for _, y := range universe {
			if !y.Square().Equal(rhs) {
				continue
			}
			p := curve.NewPoint(x, y)
			if crv.IsOnCurve(p) {
				return p, nil
			}
		}
	}

	return curve.Point{}, ErrHashToPointFailed
}
