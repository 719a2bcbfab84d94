package feed

import (
	"errors"
	"log"
	"math"
	"sort"
	"sync"
	"time"
)

// ErrInvalidFix marks a malformed feed sample. Invalid fixes are dropped and
// logged, never propagated downstream.
var ErrInvalidFix = errors.New("feed: invalid fix")

// Fix is one normalized GNSS sample. Immutable once created.
type Fix struct {
	Lon  float64   `json:"lon"`
	Lat  float64   `json:"lat"`
	Yaw  float64   `json:"yaw"`
	Time time.Time `json:"time"`
}

// Valid reports whether the fix passes range validation:
// lon in [-180,180], lat in [-90,90], yaw in [0,360).
func (f Fix) Valid() bool {
	if math.IsNaN(f.Lon) || math.IsNaN(f.Lat) || math.IsNaN(f.Yaw) {
		return false
	}
	if f.Lon < -180 || f.Lon > 180 {
		return false
	}
	if f.Lat < -90 || f.Lat > 90 {
		return false
	}
	if f.Yaw < 0 || f.Yaw >= 360 {
		return false
	}
	return true
}

// Adapter normalizes pushed fixes and exposes the latest one plus a bounded
// trailing history. Push never blocks on readers; the latest slot is simply
// overwritten.
type Adapter struct {
	mu      sync.RWMutex
	window  time.Duration
	latest  Fix
	hasFix  bool
	history []Fix

	now func() time.Time
}

// NewAdapter creates an adapter keeping window worth of fix history
func NewAdapter(window time.Duration) *Adapter {
	if window <= 0 {
		window = 30 * time.Second
	}
	return &Adapter{window: window, now: time.Now}
}

// Push accepts one fix from the external feed. Out-of-order fixes are kept
// in history, but only the newest by timestamp becomes latest.
func (a *Adapter) Push(f Fix) error {
	if !f.Valid() {
		log.Printf("feed: dropping invalid fix lon=%f lat=%f yaw=%f", f.Lon, f.Lat, f.Yaw)
		return ErrInvalidFix
	}
	if f.Time.IsZero() {
		f.Time = a.now()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.hasFix || !f.Time.Before(a.latest.Time) {
		a.latest = f
		a.hasFix = true
	}
	a.history = append(a.history, f)
	if len(a.history) > 1 && f.Time.Before(a.history[len(a.history)-2].Time) {
		sort.Slice(a.history, func(i, j int) bool { return a.history[i].Time.Before(a.history[j].Time) })
	}
	a.prune()
	return nil
}

// Latest returns the most recent fix by timestamp.
func (a *Adapter) Latest() (Fix, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.latest, a.hasFix
}

// History returns the fixes within window of the latest fix, oldest first.
// A zero window returns the full retained history.
func (a *Adapter) History(window time.Duration) []Fix {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.hasFix {
		return nil
	}
	if window <= 0 || window > a.window {
		window = a.window
	}
	cutoff := a.latest.Time.Add(-window)
	out := make([]Fix, 0, len(a.history))
	for _, f := range a.history {
		if !f.Time.Before(cutoff) {
			out = append(out, f)
		}
	}
	return out
}

// prune drops history older than the retention window. Caller holds mu.
func (a *Adapter) prune() {
	cutoff := a.latest.Time.Add(-a.window)
	i := 0
	for i < len(a.history) && a.history[i].Time.Before(cutoff) {
		i++
	}
	if i > 0 {
		a.history = append(a.history[:0], a.history[i:]...)
	}
}
