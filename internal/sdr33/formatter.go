// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sdr33

import (
	"fmt"
	"strings"

	"github.com/adlenadlen/xyzconv/pkg/types"
)

// header is the fixed output header line. Its order flag (offset 44)
// asserts North,East field order.
const header = "00NMSDR33 V04-02.00                     111111"

// Format serializes points as SDR33 fixed-width text. Each record line is
// hard-truncated to 84 characters, so names and descriptions that overflow
// their 16-character fields silently lose trailing characters rather than
// wrapping or erroring.
func Format(points []types.Point) string {
	lines := make([]string, 0, len(points)+1)
	lines = append(lines, header)

	for _, p := range points {
		line := fmt.Sprintf("08KI%16s%-16.4f%-16.4f%-16.4f%-16s",
			p.Name, p.North, p.East, p.Height, p.Description)
		if r := []rune(line); len(r) > minRecordLen {
			line = string(r[:minRecordLen])
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
