// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/adlenadlen/xyzconv/internal/sdr33"
	"github.com/adlenadlen/xyzconv/pkg/types"
)

const sdrSample = "00NMSDR33 V04-02.00                     111111\n" +
	"08KI              P1100.1234        200.5678        10.0000         benchmark       "

func TestConvertSDRToCSV(t *testing.T) {
	res, err := Convert(Request{
		Source:        types.FormatSDR,
		Target:        types.FormatCSV,
		Text:          sdrSample,
		TargetOptions: Options{Order: types.OrderNorthEast},
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Points != 1 {
		t.Errorf("points = %d, want 1", res.Points)
	}
	want := "P1;100.1234;200.5678;10.0000;benchmark"
	if res.Output != want {
		t.Errorf("output = %q, want %q", res.Output, want)
	}
}

func TestConvertTXTToSDR(t *testing.T) {
	res, err := Convert(Request{
		Source: types.FormatTXT,
		Target: types.FormatSDR,
		Text:   "P1,100.1234,200.5678,10.0000,benchmark",
		SourceOptions: Options{
			Delimiter: types.DelimiterComma,
			Order:     types.OrderNorthEast,
		},
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	// The SDR33 output must itself parse back to the same point.
	points, _, err := sdr33.Parse(res.Output)
	if err != nil {
		t.Fatalf("re-parsing output: %v", err)
	}
	want := types.Point{Name: "P1", North: 100.1234, East: 200.5678, Height: 10, Description: "benchmark"}
	if len(points) != 1 || points[0] != want {
		t.Errorf("points = %+v, want [%+v]", points, want)
	}
}

func TestConvertPNTFixedConventions(t *testing.T) {
	// PNT is comma-delimited with East,North order on both sides.
	res, err := Convert(Request{
		Source: types.FormatPNT,
		Target: types.FormatTXT,
		Text:   "P1,200.5678,100.1234,10.0000",
		TargetOptions: Options{
			Delimiter: types.DelimiterTab,
			Order:     types.OrderNorthEast,
		},
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := "P1\t100.1234\t200.5678\t10.0000\t"
	if res.Output != want {
		t.Errorf("output = %q, want %q", res.Output, want)
	}
}

func TestConvertMissingOptions(t *testing.T) {
	tests := []struct {
		name       string
		req        Request
		wantOption string
	}{
		{
			name: "txt source without delimiter",
			req: Request{
				Source:        types.FormatTXT,
				Target:        types.FormatPNT,
				Text:          "P1,1.0,2.0,3.0",
				SourceOptions: Options{Order: types.OrderNorthEast},
			},
			wantOption: "delimiter",
		},
		{
			name: "txt source without order",
			req: Request{
				Source:        types.FormatTXT,
				Target:        types.FormatPNT,
				Text:          "P1,1.0,2.0,3.0",
				SourceOptions: Options{Delimiter: types.DelimiterComma},
			},
			wantOption: "order",
		},
		{
			name: "csv target without order",
			req: Request{
				Source: types.FormatPNT,
				Target: types.FormatCSV,
				Text:   "P1,1.0,2.0,3.0",
			},
			wantOption: "order",
		},
		{
			name:       "missing source format",
			req:        Request{Target: types.FormatCSV, Text: "x"},
			wantOption: "format",
		},
		{
			name: "missing target format",
			req: Request{
				Source: types.FormatPNT,
				Text:   "P1,1.0,2.0,3.0",
			},
			wantOption: "format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.req)
			var moe *MissingOptionError
			if !errors.As(err, &moe) {
				t.Fatalf("err = %v, want *MissingOptionError", err)
			}
			if moe.Option != tt.wantOption {
				t.Errorf("option = %q, want %q", moe.Option, tt.wantOption)
			}
		})
	}
}

func TestConvertNoRecords(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty text", text: ""},
		{name: "only blank lines", text: "\n   \n\t\n"},
		{name: "only unparsable lines", text: "a,b\nc,d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(Request{
				Source: types.FormatTXT,
				Target: types.FormatCSV,
				Text:   tt.text,
				SourceOptions: Options{
					Delimiter: types.DelimiterComma,
					Order:     types.OrderNorthEast,
				},
				TargetOptions: Options{Order: types.OrderNorthEast},
			})
			if !errors.Is(err, ErrNoRecords) {
				t.Fatalf("err = %v, want ErrNoRecords", err)
			}
		})
	}
}

func TestConvertStructuralErrorIsNotNoRecords(t *testing.T) {
	_, err := Convert(Request{
		Source:        types.FormatSDR,
		Target:        types.FormatCSV,
		Text:          "not an sdr file",
		TargetOptions: Options{Order: types.OrderNorthEast},
	})
	var fe *sdr33.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *sdr33.FormatError", err)
	}
	if errors.Is(err, ErrNoRecords) {
		t.Error("structural errors must stay distinct from ErrNoRecords")
	}
}

func TestConvertSkippedLinesAreReported(t *testing.T) {
	res, err := Convert(Request{
		Source: types.FormatTXT,
		Target: types.FormatCSV,
		Text:   "P1,1.0,2.0,3.0\nbroken line\nP2,4.0,5.0,6.0",
		SourceOptions: Options{
			Delimiter: types.DelimiterComma,
			Order:     types.OrderNorthEast,
		},
		TargetOptions: Options{Order: types.OrderNorthEast},
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Points != 2 || res.Skipped != 1 {
		t.Errorf("(points, skipped) = (%d, %d), want (2, 1)", res.Points, res.Skipped)
	}
	if strings.Contains(res.Output, "broken") {
		t.Error("skipped lines must not leak into the output")
	}
}
