// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultsConfig holds fallback option values applied when a conversion
// does not specify a delimiter or coordinate order for a format that
// needs one.
type DefaultsConfig struct {
	// Delimiter is the default field separator for TXT files
	// (comma, space, tab, or semicolon).
	Delimiter string `json:"delimiter" yaml:"delimiter"`

	// Order is the default coordinate order (north-east or east-north).
	Order string `json:"order" yaml:"order"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// Enabled controls whether conversions are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file location.
	Path string `json:"path" yaml:"path"`
}

// Config groups all tool configuration.
type Config struct {
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`

	// Encodings is the ordered list of candidate encodings tried when
	// loading input files (e.g. utf-8, cp1251, cp1252, latin-1).
	Encodings []string `json:"encodings" yaml:"encodings"`

	History HistoryConfig `json:"history" yaml:"history"`
}
