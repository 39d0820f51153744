// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestDelimiterFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    Delimiter
		wantErr bool
	}{
		{in: "comma", want: DelimiterComma},
		{in: ",", want: DelimiterComma},
		{in: "tab", want: DelimiterTab},
		{in: "\t", want: DelimiterTab},
		{in: ";", want: DelimiterSemicolon},
		{in: "pipe", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := DelimiterFromString(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrderFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    CoordinateOrder
		wantErr bool
	}{
		{in: "north-east", want: OrderNorthEast},
		{in: "NE", want: OrderNorthEast},
		{in: "east-north", want: OrderEastNorth},
		{in: "EN", want: OrderEastNorth},
		{in: "up-down", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := OrderFromString(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
	}{
		{ext: ".sdr", want: FormatSDR},
		{ext: ".pnt", want: FormatPNT},
		{ext: ".csv", want: FormatCSV},
		{ext: ".txt", want: FormatTXT},
		{ext: ".xyz", want: FormatTXT}, // unknown extensions fall back to TXT
		{ext: "", want: FormatTXT},
	}

	for _, tt := range tests {
		if got := FormatFromExtension(tt.ext); got != tt.want {
			t.Errorf("FormatFromExtension(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestDelimiterChars(t *testing.T) {
	want := map[Delimiter]string{
		DelimiterComma:     ",",
		DelimiterSpace:     " ",
		DelimiterTab:       "\t",
		DelimiterSemicolon: ";",
	}
	for _, d := range Delimiters {
		if d.Char() != want[d] {
			t.Errorf("%s.Char() = %q, want %q", d, d.Char(), want[d])
		}
		if d.Label() == "" {
			t.Errorf("%s has no label", d)
		}
	}
}
