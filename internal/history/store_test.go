// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/adlenadlen/xyzconv/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{
		Enabled: true,
		Path:    filepath.Join(t.TempDir(), "history.db"),
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	recs := []Record{
		{Input: "a.sdr", Output: "a_converted.csv", Source: types.FormatSDR, Target: types.FormatCSV, Points: 12},
		{Input: "b.txt", Output: "b_converted.sdr", Source: types.FormatTXT, Target: types.FormatSDR, Points: 3, Skipped: 1},
	}
	for _, rec := range recs {
		if err := s.Add(ctx, rec); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	// Newest first.
	if got[0].Input != "b.txt" || got[1].Input != "a.sdr" {
		t.Errorf("order = [%s, %s], want newest first", got[0].Input, got[1].Input)
	}
	if got[0].Source != types.FormatTXT || got[0].Target != types.FormatSDR {
		t.Errorf("formats = (%s, %s)", got[0].Source, got[0].Target)
	}
	if got[0].Points != 3 || got[0].Skipped != 1 {
		t.Errorf("(points, skipped) = (%d, %d), want (3, 1)", got[0].Points, got[0].Skipped)
	}
	if got[0].ConvertedAt.IsZero() {
		t.Error("ConvertedAt should be stamped on insert")
	}
}

func TestListLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.Add(ctx, Record{Input: "in", Output: "out", Source: types.FormatTXT, Target: types.FormatCSV}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.List(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("got %d records, want 3", len(got))
	}
}

func TestAddKeepsExplicitTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if err := s.Add(ctx, Record{Input: "in", Output: "out", Source: types.FormatPNT, Target: types.FormatSDR, ConvertedAt: ts}); err != nil {
		t.Fatal(err)
	}

	got, err := s.List(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !got[0].ConvertedAt.Equal(ts) {
		t.Errorf("ConvertedAt = %v, want %v", got[0].ConvertedAt, ts)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.Add(ctx, Record{Input: "in", Output: "out", Source: types.FormatTXT, Target: types.FormatCSV}); err != nil {
			t.Fatal(err)
		}
	}

	n, err := s.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("cleared %d records, want 3", n)
	}

	got, err := s.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records after clear, want 0", len(got))
	}
}
