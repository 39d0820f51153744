// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package delimited parses and formats delimiter-separated point text.
// It is the shared implementation behind the TXT, PNT, and CSV formats,
// which differ only in delimiter character and coordinate order.
package delimited

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/adlenadlen/xyzconv/pkg/types"
)

// minFields is the smallest usable record: name, two coordinates, height.
// A fifth field, when present, is the description.
const minFields = 4

// Parse reads delimited text and returns the points in file order plus the
// number of lines skipped as unparsable. Blank lines are ignored silently;
// lines with too few fields or non-numeric coordinate/height fields are
// skipped with a logged warning, never aborting the parse.
func Parse(content string, delim types.Delimiter, order types.CoordinateOrder) ([]types.Point, int) {
	var points []types.Point
	skipped := 0

	for i, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		p, err := parseLine(line, delim, order)
		if err != nil {
			log.Warn().Int("line", i+1).Err(err).Msg("skipping record")
			skipped++
			continue
		}
		points = append(points, p)
	}

	return points, skipped
}

func parseLine(line string, delim types.Delimiter, order types.CoordinateOrder) (types.Point, error) {
	parts := strings.Split(line, delim.Char())
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	if len(parts) < minFields {
		return types.Point{}, fmt.Errorf("not enough fields: %d < %d", len(parts), minFields)
	}

	coord1, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("parsing first coordinate: %w", err)
	}
	coord2, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("parsing second coordinate: %w", err)
	}
	height, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("parsing height: %w", err)
	}

	p := types.Point{Name: parts[0], Height: height}
	if len(parts) > minFields {
		p.Description = parts[4]
	}
	if order == types.OrderNorthEast {
		p.North, p.East = coord1, coord2
	} else {
		p.North, p.East = coord2, coord1
	}
	return p, nil
}
