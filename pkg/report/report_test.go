package report

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/Caqil/eclab/internal/validate"
	"github.com/Caqil/eclab/pkg/curve"
	"github.com/Caqil/eclab/pkg/field"
	"github.com/Caqil/eclab/pkg/scan"
)

// goldenText is the full listing for y^2 = x^3 + x + 1 with r = 3,
// everything up to the fingerprint value
const goldenText = `Elements of F(5^2):
0
1t
2t
3t
4t
1
1 + 1t
1 + 2t
1 + 3t
1 + 4t
2
2 + 1t
2 + 2t
2 + 3t
2 + 4t
3
3 + 1t
3 + 2t
3 + 3t
3 + 4t
4
4 + 1t
4 + 2t
4 + 3t
4 + 4t

Points on the elliptic curve y^2 = x^3 + x + 1:
(0, 1)
(0, 4)
(1, 1t)
(1, 4t)
(1 + 2t, 1 + 1t)
(1 + 2t, 4 + 4t)
(1 + 3t, 1 + 4t)
(1 + 3t, 4 + 1t)
(2, 1)
(2, 4)
(2 + 2t, 1t)
(2 + 2t, 4t)
(2 + 3t, 1t)
(2 + 3t, 4t)
(3, 1)
(3, 4)
(3 + 1t, 1 + 3t)
(3 + 1t, 4 + 2t)
(3 + 2t, 2)
(3 + 2t, 3)
(3 + 3t, 2)
(3 + 3t, 3)
(3 + 4t, 1 + 2t)
(3 + 4t, 4 + 3t)
(4, 2)
(4, 3)

Full 3-torsion points (3P = O):
(1, 1t)
(1, 4t)
(1 + 2t, 1 + 1t)
(1 + 2t, 4 + 4t)
(1 + 3t, 1 + 4t)
(1 + 3t, 4 + 1t)
(2, 1)
(2, 4)
Point at infinity

Group G₂ points (P such that (x^5, y^5) = 5P):
(1, 1t)
(1, 4t)
Point at infinity

Group G₁ points (P such that (x^5, y^5) = P):
(0, 1)
(0, 4)
(2, 1)
(2, 4)
(3, 1)
(3, 4)
(4, 2)
(4, 3)
Point at infinity

Group order: 27
Fingerprint: `

func buildFixture(t *testing.T) *Report {
	t.Helper()
	c, err := curve.New(field.New(1, 0), field.New(1, 0))
	if err != nil {
		t.Fatalf("curve.New: %v", err)
	}
	s, err := scan.New(c, field.Universe())
	if err != nil {
		t.Fatalf("scan.New: %v", err)
	}
	r, err := Build(s, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r
}

func TestWriteTextGolden(t *testing.T) {
	r := buildFixture(t)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()

	idx := strings.Index(out, "Fingerprint: ")
	if idx < 0 {
		t.Fatal("output has no fingerprint line")
	}
	head := out[:idx+len("Fingerprint: ")]
	if head != goldenText {
		t.Errorf("listing diverges from the golden output:\n--- got ---\n%s\n--- want ---\n%s", head, goldenText)
	}

	tail := out[idx+len("Fingerprint: "):]
	if ok, _ := regexp.MatchString(`^[0-9a-f]{64}\n$`, tail); !ok {
		t.Errorf("fingerprint line %q is not a 64-digit hex value", tail)
	}
	if tail != r.Fingerprint+"\n" {
		t.Error("rendered fingerprint differs from the report field")
	}
}

func TestWriteTextDeterministic(t *testing.T) {
	r := buildFixture(t)

	var first, second bytes.Buffer
	if err := r.WriteText(&first); err != nil {
		t.Fatal(err)
	}
	if err := r.WriteText(&second); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("two renderings of the same report differ")
	}
}

func TestBuild(t *testing.T) {
	r := buildFixture(t)

	if r.GroupOrder != 27 {
		t.Errorf("GroupOrder = %d, want 27", r.GroupOrder)
	}
	if len(r.FieldElements) != 25 {
		t.Errorf("report carries %d field elements, want 25", len(r.FieldElements))
	}
	if len(r.CurvePoints) != 26 {
		t.Errorf("report carries %d curve points, want 26", len(r.CurvePoints))
	}
	if len(r.TorsionPoints) != 9 {
		t.Errorf("report carries %d torsion points, want 9", len(r.TorsionPoints))
	}
	if len(r.EigenspacePoints) != 3 {
		t.Errorf("report carries %d eigenspace points, want 3", len(r.EigenspacePoints))
	}
	if len(r.FixedPoints) != 9 {
		t.Errorf("report carries %d fixed points, want 9", len(r.FixedPoints))
	}
	if len(r.Fingerprint) != 64 {
		t.Errorf("fingerprint %q is not 64 hex digits", r.Fingerprint)
	}
}

func TestBuildValidation(t *testing.T) {
	if _, err := Build(nil, 3); !errors.Is(err, ErrNilScanner) {
		t.Errorf("nil scanner: expected ErrNilScanner, got %v", err)
	}

	c, err := curve.New(field.New(1, 0), field.New(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	s, err := scan.New(c, field.Universe())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Build(s, 0); !errors.Is(err, validate.ErrInvalidTorsionOrder) {
		t.Errorf("zero torsion order: expected ErrInvalidTorsionOrder, got %v", err)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	r := buildFixture(t)

	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded reportJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Curve.Equation != "y^2 = x^3 + x + 1" {
		t.Errorf("equation = %q", decoded.Curve.Equation)
	}
	if decoded.GroupOrder != 27 || decoded.TorsionOrder != 3 {
		t.Errorf("group order %d, torsion order %d", decoded.GroupOrder, decoded.TorsionOrder)
	}
	if len(decoded.FieldElements) != 25 || len(decoded.Points) != 26 {
		t.Errorf("decoded %d elements and %d points", len(decoded.FieldElements), len(decoded.Points))
	}
	if len(decoded.TorsionPoints) != 9 || len(decoded.Eigenspace) != 3 || len(decoded.Fixed) != 9 {
		t.Errorf("decoded subgroup sizes %d/%d/%d", len(decoded.TorsionPoints), len(decoded.Eigenspace), len(decoded.Fixed))
	}
	if decoded.Fingerprint != r.Fingerprint {
		t.Error("fingerprint did not survive the round trip")
	}

	last := decoded.TorsionPoints[len(decoded.TorsionPoints)-1]
	if !last.Infinity || last.X != nil || last.Y != nil {
		t.Errorf("identity encodes as %+v", last)
	}
	if first := decoded.Points[0]; first.Text != "(0, 1)" || first.X.Text != "0" || first.Y.Text != "1" {
		t.Errorf("first point encodes as %+v", first)
	}
}

func TestEquationString(t *testing.T) {
	tests := []struct {
		name string
		a, b field.Element
		want string
	}{
		{"unit coefficients", field.New(1, 0), field.New(1, 0), "y^2 = x^3 + x + 1"},
		{"zero A", field.New(0, 0), field.New(1, 0), "y^2 = x^3 + 1"},
		{"zero B", field.New(1, 0), field.New(0, 0), "y^2 = x^3 + x"},
		{"base coefficients", field.New(4, 0), field.New(3, 0), "y^2 = x^3 + 4x + 3"},
		{"extension coefficients", field.New(2, 3), field.New(0, 2), "y^2 = x^3 + (2 + 3t)x + 2t"},
		{"pure t A", field.New(0, 2), field.New(2, 3), "y^2 = x^3 + (2t)x + (2 + 3t)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := curve.New(tt.a, tt.b)
			if err != nil {
				t.Fatalf("curve.New: %v", err)
			}
			if got := equationString(c); got != tt.want {
				t.Errorf("equationString = %q, want %q", got, tt.want)
			}
		})
	}
}
