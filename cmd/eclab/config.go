package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Caqil/eclab/internal/validate"
	"github.com/Caqil/eclab/pkg/field"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the driver configuration
type Config struct {
	// A and B are the curve coefficients
	A field.Element
	B field.Element

	// Torsion is the torsion order to scan for
	Torsion uint64

	// Format selects the report encoding (text or json)
	Format string

	// Out is the report destination path, "-" for stdout
	Out string

	// LogLevel and PrettyLog configure the logger
	LogLevel  string
	PrettyLog bool
}

// ParseFlags parses command line arguments into a validated Config
func ParseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("eclab", flag.ContinueOnError)

	aFlag := fs.String("A", "1,0", "curve coefficient A, written a,b for a+bt")
	bFlag := fs.String("B", "1,0", "curve coefficient B, written a,b for a+bt")
	torsion := fs.Uint64("r", 3, "torsion order to scan for")
	format := fs.String("format", FormatText, "report format: text or json")
	out := fs.String("out", "-", "report destination path, - for stdout")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	prettyLog := fs.Bool("pretty", false, "human-readable log output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	a, err := parseElement(*aFlag)
	if err != nil {
		return nil, fmt.Errorf("flag -A: %w", err)
	}
	b, err := parseElement(*bFlag)
	if err != nil {
		return nil, fmt.Errorf("flag -B: %w", err)
	}

	cfg := &Config{
		A:         a,
		B:         b,
		Torsion:   *torsion,
		Format:    *format,
		Out:       *out,
		LogLevel:  *logLevel,
		PrettyLog: *prettyLog,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parsed configuration
func (c *Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Out == "" {
		return errors.New("output path cannot be empty")
	}
	return validate.TorsionOrder(c.Torsion)
}

// parseElement reads "a,b" into the field element a + bt
func parseElement(s string) (field.Element, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return field.Element{}, fmt.Errorf("want \"a,b\", got %q", s)
	}
	a, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 8)
	if err != nil {
		return field.Element{}, fmt.Errorf("coefficient %q: %w", parts[0], err)
	}
	b, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 8)
	if err != nil {
		return field.Element{}, fmt.Errorf("coefficient %q: %w", parts[1], err)
	}
	return field.New(uint8(a), uint8(b)), nil
}
