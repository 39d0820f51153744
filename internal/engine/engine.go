// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine drives point format conversion: it resolves a source
// format to its parser, a target format to its formatter, and turns raw
// input text into output text. The engine is pure text-to-text and holds
// no state between calls, so any number of callers may convert
// concurrently; file I/O belongs to the caller.
package engine

import (
	"errors"
	"fmt"

	"github.com/adlenadlen/xyzconv/internal/delimited"
	"github.com/adlenadlen/xyzconv/internal/sdr33"
	"github.com/adlenadlen/xyzconv/pkg/types"
)

// ErrNoRecords reports that parsing produced zero valid points. It is
// distinct from a structural format error so callers can say "file had no
// usable data" rather than "file was malformed".
var ErrNoRecords = errors.New("input contains no valid point records")

// MissingOptionError reports a conversion request lacking an option the
// chosen format requires. It is a usage error, not a data error; the
// engine never guesses a default.
type MissingOptionError struct {
	Format types.Format
	Option string
}

func (e *MissingOptionError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("missing required option %q", e.Option)
	}
	return fmt.Sprintf("format %s requires option %q", e.Format, e.Option)
}

// Options carries the caller-supplied parameters for one side of a
// conversion. Formats with fixed conventions ignore them.
type Options struct {
	Delimiter types.Delimiter
	Order     types.CoordinateOrder
}

// Request describes one conversion.
type Request struct {
	Source types.Format
	Target types.Format

	// Text is the decoded input file content.
	Text string

	SourceOptions Options
	TargetOptions Options
}

// Result is a successful conversion outcome.
type Result struct {
	// Output is the formatted text, ready to be persisted by the caller.
	Output string

	// Points is the number of records converted.
	Points int

	// Skipped is the number of input lines dropped as unparsable.
	Skipped int
}

type parseFunc func(text string, opts Options) ([]types.Point, int, error)
type formatFunc func(points []types.Point, opts Options) string

// parsers and formatters dispatch by format variant; option resolution
// happens once in resolveOptions before lookup.
var parsers = map[types.Format]parseFunc{
	types.FormatSDR: func(text string, _ Options) ([]types.Point, int, error) {
		return sdr33.Parse(text)
	},
	types.FormatTXT: parseDelimited,
	types.FormatPNT: parseDelimited,
	types.FormatCSV: parseDelimited,
}

var formatters = map[types.Format]formatFunc{
	types.FormatSDR: func(points []types.Point, _ Options) string {
		return sdr33.Format(points)
	},
	types.FormatTXT: formatDelimited,
	types.FormatPNT: formatDelimited,
	types.FormatCSV: formatDelimited,
}

func parseDelimited(text string, opts Options) ([]types.Point, int, error) {
	points, skipped := delimited.Parse(text, opts.Delimiter, opts.Order)
	return points, skipped, nil
}

func formatDelimited(points []types.Point, opts Options) string {
	return delimited.Format(points, opts.Delimiter, opts.Order)
}

// Convert runs one conversion: parse the request text under the source
// format, then serialize the points under the target format. It fails with
// *MissingOptionError before touching the text if the request is
// incomplete, with a parse error if the source is structurally invalid,
// and with ErrNoRecords if no usable records were found.
func Convert(req Request) (*Result, error) {
	srcOpts, err := resolveOptions(req.Source, req.SourceOptions)
	if err != nil {
		return nil, err
	}
	dstOpts, err := resolveOptions(req.Target, req.TargetOptions)
	if err != nil {
		return nil, err
	}

	points, skipped, err := parsers[req.Source](req.Text, srcOpts)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoRecords
	}

	return &Result{
		Output:  formatters[req.Target](points, dstOpts),
		Points:  len(points),
		Skipped: skipped,
	}, nil
}

// resolveOptions returns the effective delimiter and order for a format:
// SDR is self-describing, PNT and CSV carry fixed conventions, TXT takes
// both from the caller. A required option left unset is an error.
func resolveOptions(f types.Format, opts Options) (Options, error) {
	switch f {
	case types.FormatSDR:
		return Options{}, nil
	case types.FormatPNT:
		return Options{Delimiter: types.DelimiterComma, Order: types.OrderEastNorth}, nil
	case types.FormatCSV:
		if opts.Order == "" {
			return Options{}, &MissingOptionError{Format: f, Option: "order"}
		}
		return Options{Delimiter: types.DelimiterSemicolon, Order: opts.Order}, nil
	case types.FormatTXT:
		if opts.Delimiter == "" {
			return Options{}, &MissingOptionError{Format: f, Option: "delimiter"}
		}
		if opts.Order == "" {
			return Options{}, &MissingOptionError{Format: f, Option: "order"}
		}
		return opts, nil
	default:
		return Options{}, &MissingOptionError{Option: "format"}
	}
}
