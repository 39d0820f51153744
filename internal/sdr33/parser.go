// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sdr33 parses and formats the SDR33 fixed-width instrument dump
// format. Field positions are character offsets and are a bit-exact
// compatibility contract with instrument output, so all slicing here is
// rune-based rather than byte-based.
package sdr33

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/adlenadlen/xyzconv/pkg/types"
)

const (
	headerPrefix    = "00NMSDR33"
	minHeaderLen    = 45
	orderFlagOffset = 44
	minRecordLen    = 84
)

// FormatError reports a structural violation in the SDR33 header. It is
// fatal: the whole parse fails with no partial result, unlike per-record
// numeric failures which only skip the offending line.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid SDR33 structure: " + e.Reason
}

// Parse reads SDR33 text and returns the points in file order plus the
// number of recognized record lines skipped due to unparsable numeric
// fields. Lines that are not point records (comments, annotations, other
// record types) are ignored silently.
func Parse(content string) ([]types.Point, int, error) {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	flag, err := headerOrderFlag(lines[0])
	if err != nil {
		return nil, 0, err
	}

	var points []types.Point
	skipped := 0
	for i, line := range lines[1:] {
		lineNum := i + 2

		r := []rune(line)
		if len(r) < minRecordLen {
			continue
		}
		prefix := string(r[:2])
		if prefix != "08" && prefix != "02" {
			continue
		}

		p, err := parseRecord(r, flag)
		if err != nil {
			log.Warn().Int("line", lineNum).Err(err).Msg("skipping SDR33 record")
			skipped++
			continue
		}
		points = append(points, p)
	}

	return points, skipped, nil
}

// headerOrderFlag validates the header line and returns its coordinate
// order flag: '1' for North,East or '2' for East,North.
func headerOrderFlag(header string) (rune, error) {
	r := []rune(header)
	if len(r) < minHeaderLen {
		return 0, &FormatError{Reason: fmt.Sprintf("header too short: %d < %d characters", len(r), minHeaderLen)}
	}
	if !strings.HasPrefix(header, headerPrefix) {
		return 0, &FormatError{Reason: fmt.Sprintf("header does not start with %q", headerPrefix)}
	}
	flag := r[orderFlagOffset]
	if flag != '1' && flag != '2' {
		return 0, &FormatError{Reason: fmt.Sprintf("invalid coordinate order flag %q", flag)}
	}
	return flag, nil
}

// parseRecord extracts one point from a record line of at least 84 runes.
func parseRecord(r []rune, flag rune) (types.Point, error) {
	name := strings.TrimSpace(string(r[4:20]))
	coord1, err := parseField(r[20:36], "first coordinate")
	if err != nil {
		return types.Point{}, err
	}
	coord2, err := parseField(r[36:52], "second coordinate")
	if err != nil {
		return types.Point{}, err
	}
	height, err := parseField(r[52:68], "height")
	if err != nil {
		return types.Point{}, err
	}
	description := strings.TrimSpace(string(r[68:84]))

	p := types.Point{Name: name, Height: height, Description: description}
	if flag == '1' {
		p.North, p.East = coord1, coord2
	} else {
		p.North, p.East = coord2, coord1
	}
	return p, nil
}

func parseField(field []rune, what string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(field)), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", what, err)
	}
	return v, nil
}
