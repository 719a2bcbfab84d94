package feed

import (
	"errors"
	"testing"
	"time"
)

func TestPushRejectsInvalidFix(t *testing.T) {
	tests := []struct {
		name string
		fix  Fix
	}{
		{"lon too small", Fix{Lon: -181, Lat: 0, Yaw: 0}},
		{"lon too large", Fix{Lon: 181, Lat: 0, Yaw: 0}},
		{"lat too small", Fix{Lon: 0, Lat: -91, Yaw: 0}},
		{"lat too large", Fix{Lon: 0, Lat: 91, Yaw: 0}},
		{"yaw negative", Fix{Lon: 0, Lat: 0, Yaw: -1}},
		{"yaw 360", Fix{Lon: 0, Lat: 0, Yaw: 360}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdapter(time.Minute)
			if err := a.Push(tt.fix); !errors.Is(err, ErrInvalidFix) {
				t.Errorf("expected ErrInvalidFix, got %v", err)
			}
			if _, ok := a.Latest(); ok {
				t.Error("invalid fix must not become latest")
			}
		})
	}
}

func TestPushBoundaryValues(t *testing.T) {
	a := NewAdapter(time.Minute)
	valid := []Fix{
		{Lon: -180, Lat: -90, Yaw: 0},
		{Lon: 180, Lat: 90, Yaw: 359.999},
	}
	for _, f := range valid {
		if err := a.Push(f); err != nil {
			t.Errorf("boundary fix %+v should be accepted: %v", f, err)
		}
	}
}

func TestLatestIsNewestByTimestamp(t *testing.T) {
	a := NewAdapter(time.Minute)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	must := func(f Fix) {
		t.Helper()
		if err := a.Push(f); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}
	must(Fix{Lon: 1, Lat: 1, Yaw: 10, Time: base})
	must(Fix{Lon: 2, Lat: 2, Yaw: 20, Time: base.Add(2 * time.Second)})
	// Late arrival with an older timestamp is kept in history but does not
	// replace latest.
	must(Fix{Lon: 3, Lat: 3, Yaw: 30, Time: base.Add(time.Second)})

	latest, ok := a.Latest()
	if !ok {
		t.Fatal("expected a latest fix")
	}
	if latest.Lon != 2 {
		t.Errorf("expected the newest-by-timestamp fix, got lon %f", latest.Lon)
	}

	hist := a.History(0)
	if len(hist) != 3 {
		t.Fatalf("expected 3 fixes in history, got %d", len(hist))
	}
	for i := 1; i < len(hist); i++ {
		if hist[i].Time.Before(hist[i-1].Time) {
			t.Error("history must be ordered oldest first")
		}
	}
}

func TestHistoryWindow(t *testing.T) {
	a := NewAdapter(10 * time.Second)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 30; i++ {
		f := Fix{Lon: float64(i), Lat: 0, Yaw: 0, Time: base.Add(time.Duration(i) * time.Second)}
		if err := a.Push(f); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}
	// Retention window is 10 s ending at the latest fix (t=29).
	hist := a.History(0)
	for _, f := range hist {
		if f.Time.Before(base.Add(19 * time.Second)) {
			t.Errorf("fix at %v should have been pruned", f.Time)
		}
	}
	if len(hist) == 0 {
		t.Fatal("expected retained history")
	}

	short := a.History(3 * time.Second)
	if len(short) >= len(hist) {
		t.Errorf("narrower window must return fewer fixes: %d vs %d", len(short), len(hist))
	}
}
