// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Delimiter identifies a field separator for delimited point formats.
// The zero value means "not supplied".
type Delimiter string

const (
	DelimiterComma     Delimiter = "comma"
	DelimiterSpace     Delimiter = "space"
	DelimiterTab       Delimiter = "tab"
	DelimiterSemicolon Delimiter = "semicolon"
)

// Delimiters lists all supported delimiters in display order.
var Delimiters = []Delimiter{DelimiterComma, DelimiterSpace, DelimiterTab, DelimiterSemicolon}

// Char returns the delimiter's separator character.
func (d Delimiter) Char() string {
	switch d {
	case DelimiterComma:
		return ","
	case DelimiterSpace:
		return " "
	case DelimiterTab:
		return "\t"
	case DelimiterSemicolon:
		return ";"
	}
	return ""
}

// Label returns the delimiter's human-readable name.
func (d Delimiter) Label() string {
	switch d {
	case DelimiterComma:
		return "Comma (,)"
	case DelimiterSpace:
		return "Space"
	case DelimiterTab:
		return "Tab"
	case DelimiterSemicolon:
		return "Semicolon (;)"
	}
	return string(d)
}

// DelimiterFromString resolves a delimiter from its constant name or its
// separator character. It accepts both so config files can say either
// "comma" or ",".
func DelimiterFromString(s string) (Delimiter, error) {
	for _, d := range Delimiters {
		if s == string(d) || s == d.Char() {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown delimiter %q (want comma, space, tab, or semicolon)", s)
}

// CoordinateOrder says whether the first of the two coordinate fields in a
// record is North or East. The zero value means "not supplied".
type CoordinateOrder string

const (
	OrderNorthEast CoordinateOrder = "north-east"
	OrderEastNorth CoordinateOrder = "east-north"
)

// CoordinateOrders lists both orders in display order.
var CoordinateOrders = []CoordinateOrder{OrderNorthEast, OrderEastNorth}

// Code returns the order's two-letter code.
func (o CoordinateOrder) Code() string {
	switch o {
	case OrderNorthEast:
		return "NE"
	case OrderEastNorth:
		return "EN"
	}
	return ""
}

// Label returns the order's human-readable name.
func (o CoordinateOrder) Label() string {
	switch o {
	case OrderNorthEast:
		return "North, East"
	case OrderEastNorth:
		return "East, North"
	}
	return string(o)
}

// OrderFromString resolves a coordinate order from its constant name or its
// two-letter code ("NE", "EN").
func OrderFromString(s string) (CoordinateOrder, error) {
	for _, o := range CoordinateOrders {
		if s == string(o) || s == o.Code() {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown coordinate order %q (want north-east or east-north)", s)
}

// Format identifies one of the supported point file formats.
// The zero value means "not supplied".
type Format string

const (
	// FormatSDR is the fixed-width SDR33 instrument dump; its header is
	// self-describing with respect to coordinate order.
	FormatSDR Format = "sdr"

	// FormatTXT is delimited text with caller-chosen delimiter and order.
	FormatTXT Format = "txt"

	// FormatPNT is delimited text fixed to comma and East,North order.
	FormatPNT Format = "pnt"

	// FormatCSV is delimited text fixed to semicolon with caller-chosen order.
	FormatCSV Format = "csv"
)

// Formats lists all supported formats in display order.
var Formats = []Format{FormatSDR, FormatTXT, FormatPNT, FormatCSV}

// Extension returns the format's file extension, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Label returns the format's human-readable name.
func (f Format) Label() string {
	switch f {
	case FormatSDR:
		return "SDR33 (fixed-width)"
	case FormatTXT:
		return "TXT (delimited)"
	case FormatPNT:
		return "PNT (comma, East-North)"
	case FormatCSV:
		return "CSV (semicolon)"
	}
	return string(f)
}

// FormatFromString resolves a format from its name.
func FormatFromString(s string) (Format, error) {
	for _, f := range Formats {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want sdr, txt, pnt, or csv)", s)
}

// FormatFromExtension resolves a source format from a file extension such
// as ".sdr". Unrecognized extensions fall back to TXT, matching how the
// tool treats arbitrary text files.
func FormatFromExtension(ext string) Format {
	switch ext {
	case ".sdr":
		return FormatSDR
	case ".pnt":
		return FormatPNT
	case ".csv":
		return FormatCSV
	default:
		return FormatTXT
	}
}
