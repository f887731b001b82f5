// Package report assembles scan results into text and JSON reports
package report

import (
	"bufio"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/Caqil/eclab/internal/validate"
	"github.com/Caqil/eclab/pkg/curve"
	"github.com/Caqil/eclab/pkg/digest"
	"github.com/Caqil/eclab/pkg/field"
	"github.com/Caqil/eclab/pkg/scan"
)

// Report holds one full scan of a curve: the coordinate universe, the
// curve points, the torsion and Frobenius subgroups, and a fingerprint
// over the point sequence. Subgroup slices carry the identity as their
// last entry.
type Report struct {
	Curve            curve.Curve
	FieldElements    []field.Element
	CurvePoints      []curve.Point
	GroupOrder       int
	TorsionOrder     uint64
	TorsionPoints    []curve.Point
	EigenspacePoints []curve.Point
	FixedPoints      []curve.Point
	Fingerprint      string
}

// Build runs every scan once and collects the results
func Build(s *scan.Scanner, torsionOrder uint64) (*Report, error) {
	if s == nil {
		return nil, ErrNilScanner
	}
	if err := validate.TorsionOrder(torsionOrder); err != nil {
		return nil, err
	}

	points := s.Points()

	torsion, err := s.TorsionPoints(torsionOrder)
	if err != nil {
		return nil, err
	}

	eigenspace, err := s.FrobeniusEigenspace()
	if err != nil {
		return nil, err
	}

	return &Report{
		Curve:            s.Curve(),
		FieldElements:    s.Universe(),
		CurvePoints:      points,
		GroupOrder:       len(points) + 1,
		TorsionOrder:     torsionOrder,
		TorsionPoints:    torsion,
		EigenspacePoints: eigenspace,
		FixedPoints:      s.FrobeniusFixed(),
		Fingerprint:      digest.FingerprintHex(points),
	}, nil
}

// WriteText renders the report in the classic listing format: one
// section per scan, one value per line
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Elements of F(5^2):")
	for _, e := range r.FieldElements {
		fmt.Fprintln(bw, e)
	}

	fmt.Fprintf(bw, "\nPoints on the elliptic curve %s:\n", equationString(r.Curve))
	for _, p := range r.CurvePoints {
		fmt.Fprintln(bw, p)
	}

	fmt.Fprintf(bw, "\nFull %d-torsion points (%dP = O):\n", r.TorsionOrder, r.TorsionOrder)
	for _, p := range r.TorsionPoints {
		fmt.Fprintln(bw, p)
	}

	fmt.Fprintln(bw, "\nGroup G₂ points (P such that (x^5, y^5) = 5P):")
	for _, p := range r.EigenspacePoints {
		fmt.Fprintln(bw, p)
	}

	fmt.Fprintln(bw, "\nGroup G₁ points (P such that (x^5, y^5) = P):")
	for _, p := range r.FixedPoints {
		fmt.Fprintln(bw, p)
	}

	fmt.Fprintf(bw, "\nGroup order: %d\n", r.GroupOrder)
	fmt.Fprintf(bw, "Fingerprint: %s\n", r.Fingerprint)

	return bw.Flush()
}

// equationString renders the curve equation with zero terms elided and
// unit coefficients dropped, e.g. "y^2 = x^3 + x + 1"
func equationString(c curve.Curve) string {
	s := "y^2 = x^3"
	if !c.A().IsZero() {
		s += " + " + coefficient(c.A(), "x")
	}
	if !c.B().IsZero() {
		s += " + " + coefficient(c.B(), "")
	}
	return s
}

// coefficient renders one term, parenthesizing extension coefficients
// that would otherwise read ambiguously next to the variable
func coefficient(e field.Element, variable string) string {
	if variable != "" && e.IsOne() {
		return variable
	}
	a, b := e.Coeffs()
	if b != 0 && (variable != "" || a != 0) {
		return "(" + e.String() + ")" + variable
	}
	return e.String() + variable
}

type elementJSON struct {
	A    uint8  `json:"a"`
	B    uint8  `json:"b"`
	Text string `json:"text"`
}

type pointJSON struct {
	Infinity bool         `json:"infinity,omitempty"`
	X        *elementJSON `json:"x,omitempty"`
	Y        *elementJSON `json:"y,omitempty"`
	Text     string       `json:"text"`
}

type curveJSON struct {
	A        elementJSON `json:"a"`
	B        elementJSON `json:"b"`
	Equation string      `json:"equation"`
}

type reportJSON struct {
	Curve         curveJSON     `json:"curve"`
	FieldElements []elementJSON `json:"field_elements"`
	Points        []pointJSON   `json:"points"`
	GroupOrder    int           `json:"group_order"`
	TorsionOrder  uint64        `json:"torsion_order"`
	TorsionPoints []pointJSON   `json:"torsion_points"`
	Eigenspace    []pointJSON   `json:"frobenius_eigenspace"`
	Fixed         []pointJSON   `json:"frobenius_fixed"`
	Fingerprint   string        `json:"fingerprint"`
}

func encodeElement(e field.Element) elementJSON {
	a, b := e.Coeffs()
	return elementJSON{A: a, B: b, Text: e.String()}
}

func encodePoint(p curve.Point) pointJSON {
	if p.IsInfinity() {
		return pointJSON{Infinity: true, Text: p.String()}
	}
	x := encodeElement(p.X())
	y := encodeElement(p.Y())
	return pointJSON{X: &x, Y: &y, Text: p.String()}
}

func encodePoints(points []curve.Point) []pointJSON {
	out := make([]pointJSON, len(points))
	for i, p := range points {
		out[i] = encodePoint(p)
	}
	return out
}

// WriteJSON renders the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	elements := make([]elementJSON, len(r.FieldElements))
	for i, e := range r.FieldElements {
		elements[i] = encodeElement(e)
	}

	dto := reportJSON{
		Curve: curveJSON{
			A:        encodeElement(r.Curve.A()),
			B:        encodeElement(r.Curve.B()),
			Equation: equationString(r.Curve),
		},
		FieldElements: elements,
		Points:        encodePoints(r.CurvePoints),
		GroupOrder:    r.GroupOrder,
		TorsionOrder:  r.TorsionOrder,
		TorsionPoints: encodePoints(r.TorsionPoints),
		Eigenspace:    encodePoints(r.EigenspacePoints),
		Fixed:         encodePoints(r.FixedPoints),
		Fingerprint:   r.Fingerprint,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto)
}
