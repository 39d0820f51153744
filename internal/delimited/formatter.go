// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package delimited

import (
	"fmt"
	"strings"

	"github.com/adlenadlen/xyzconv/pkg/types"
)

// Format serializes points as delimited text. Coordinates and height are
// emitted with exactly 4 decimal places; an empty description still gets
// its field, producing a trailing delimiter. Delimiter characters inside
// names and descriptions are not escaped, matching the files the
// instrument ecosystem already exchanges.
func Format(points []types.Point, delim types.Delimiter, order types.CoordinateOrder) string {
	lines := make([]string, 0, len(points))

	for _, p := range points {
		first, second := p.North, p.East
		if order == types.OrderEastNorth {
			first, second = p.East, p.North
		}
		parts := []string{
			p.Name,
			fmt.Sprintf("%.4f", first),
			fmt.Sprintf("%.4f", second),
			fmt.Sprintf("%.4f", p.Height),
			p.Description,
		}
		lines = append(lines, strings.Join(parts, delim.Char()))
	}

	return strings.Join(lines, "\n")
}
