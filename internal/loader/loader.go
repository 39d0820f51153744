// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader reads point files from disk and decodes them as text,
// trying an ordered list of candidate encodings until one succeeds.
// Survey instrument dumps frequently arrive in legacy single-byte code
// pages, so UTF-8 alone is not enough.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DefaultEncodings is the candidate list used when none is configured.
// Latin-1 maps every byte, so with the default list decoding cannot fail;
// a stricter configured list can.
var DefaultEncodings = []string{"utf-8", "cp1251", "cp1252", "latin-1"}

// charmaps resolves legacy code page names to their decoders. UTF-8 is
// handled separately since it is a validity check, not a byte remap.
var charmaps = map[string]*charmap.Charmap{
	"cp1251":  charmap.Windows1251,
	"cp1252":  charmap.Windows1252,
	"latin-1": charmap.ISO8859_1,
}

// EncodingError reports that a file's bytes decode under none of the
// candidate encodings.
type EncodingError struct {
	// Name is the file's display name (base name, not the full path).
	Name string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot read %q: unknown or corrupted encoding", e.Name)
}

// Reader decodes files under a fixed candidate encoding list.
type Reader struct {
	encodings []string
}

// New creates a Reader trying the given encodings in order. Supported
// names are utf-8, cp1251, cp1252, and latin-1. An empty list selects
// DefaultEncodings.
func New(encodings []string) (*Reader, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	for _, name := range encodings {
		if name == "utf-8" {
			continue
		}
		if _, ok := charmaps[name]; !ok {
			return nil, fmt.Errorf("unsupported encoding %q", name)
		}
	}
	return &Reader{encodings: encodings}, nil
}

// Read loads the file at path and returns its decoded text. It tries each
// candidate encoding in order and returns the first full successful decode;
// if all candidates fail it returns an *EncodingError carrying the file's
// display name. Text is never partially returned.
func (r *Reader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	text, ok := r.Decode(data)
	if !ok {
		return "", &EncodingError{Name: filepath.Base(path)}
	}
	return text, nil
}

// Decode attempts to decode raw bytes under the candidate list. The second
// return value reports whether any candidate succeeded.
func (r *Reader) Decode(data []byte) (string, bool) {
	for _, name := range r.encodings {
		if text, ok := decodeOne(name, data); ok {
			return text, true
		}
	}
	return "", false
}

// decodeOne decodes data under a single encoding. A decode succeeds only
// if every byte maps to a defined character; no heuristic beyond
// decode-or-fail is applied.
func decodeOne(name string, data []byte) (string, bool) {
	if name == "utf-8" {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}

	cm := charmaps[name]
	out, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	// The charmap decoders substitute U+FFFD for bytes the code page does
	// not define rather than erroring, so its presence means the decode
	// was not clean.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}
