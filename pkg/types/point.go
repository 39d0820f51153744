// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types shared across the conversion
// pipeline: the canonical survey point record, the closed option sets
// (delimiter, coordinate order, file format), and the tool configuration.
package types

// Point is a single surveyed location. Points are constructed only by
// parsers and consumed only by formatters; they are plain value records
// with no identity beyond field equality and are safe to copy freely.
type Point struct {
	// Name is the point identifier. Non-empty, not guaranteed unique.
	Name string

	// North and East are the planar coordinate components (not geodetic
	// latitude/longitude).
	North float64
	East  float64

	// Height is the point elevation.
	Height float64

	// Description is a free-text annotation, possibly empty.
	Description string
}
