// Package main is the eclab driver: it enumerates the points of a
// short Weierstrass curve over GF(5^2), scans its torsion and Frobenius
// subgroups, and writes the listing report.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Caqil/eclab/pkg/curve"
	"github.com/Caqil/eclab/pkg/field"
	"github.com/Caqil/eclab/pkg/logger"
	"github.com/Caqil/eclab/pkg/report"
	"github.com/Caqil/eclab/pkg/scan"
)

func main() {
	cfg, err := ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "eclab:", err)
		os.Exit(2)
	}

	log := logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.PrettyLog,
	})
	logger.SetGlobalLogger(log)

	if err := run(cfg, log); err != nil {
		log.With().Err(err).Logger().Fatal("scan failed")
	}
}

func run(cfg *Config, log *logger.Logger) error {
	start := time.Now()

	crv, err := curve.New(cfg.A, cfg.B)
	if err != nil {
		return err
	}
	log.DebugEvent().
		Str("A", cfg.A.String()).
		Str("B", cfg.B.String()).
		Msg("curve ready")

	s, err := scan.New(crv, field.Universe())
	if err != nil {
		return err
	}

	rep, err := report.Build(s, cfg.Torsion)
	if err != nil {
		return err
	}

	log.InfoEvent().
		Int("points", len(rep.CurvePoints)).
		Int("group_order", rep.GroupOrder).
		Uint64("torsion_order", rep.TorsionOrder).
		Int("torsion_points", len(rep.TorsionPoints)).
		Int("eigenspace_points", len(rep.EigenspacePoints)).
		Str("fingerprint", rep.Fingerprint).
		Dur("elapsed", time.Since(start)).
		Msg("scan complete")

	w, cleanup, err := openOutput(cfg.Out)
	if err != nil {
		return err
	}

	werr := writeReport(rep, cfg.Format, w)
	cerr := cleanup()
	if werr != nil {
		return werr
	}
	return cerr
}

func writeReport(rep *report.Report, format string, w io.Writer) error {
	if format == FormatJSON {
		return rep.WriteJSON(w)
	}
	return rep.WriteText(w)
}

// openOutput returns the report destination, stdout for "-"
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
