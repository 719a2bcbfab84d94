package nav

import (
	"sync"

	"github.com/theoremus-urban-solutions/gnss-livenav/feed"
	"github.com/theoremus-urban-solutions/gnss-livenav/geo"
	"github.com/theoremus-urban-solutions/gnss-livenav/route"
)

// Progress is the vehicle's position relative to the active route,
// recomputed on every fix. A reroute produces a fresh Progress anchored to
// the new route.
type Progress struct {
	RouteID         string
	NearestSegment  int
	AlongRouteM     float64
	DriftM          float64
	NextManeuver    int // -1 when the route has no maneuvers
	ToNextManeuverM float64
	ToDestinationM  float64
	Arrived         bool
	Valid           bool // false is the no-route sentinel
}

// Tracker projects fixes onto the active route. The previously matched
// segment anchors each search so GNSS noise cannot snap the vehicle backward
// onto a segment it already passed; a small backward tolerance absorbs
// jitter around a vertex.
type Tracker struct {
	mu      sync.Mutex
	store   *route.Store
	window  int // forward segment search bound, 0 = unbounded
	backTol int

	lastSeg  int
	lastMan  int
	lastGen  uint64
	anchored bool
}

// NewTracker creates a tracker reading routes from store
func NewTracker(store *route.Store, window, backTol int) *Tracker {
	return &Tracker{store: store, window: window, backTol: backTol}
}

// Update recomputes progress for the given fix against the currently active
// route. Calling it again with the same fix yields the same result.
func (t *Tracker) Update(f feed.Fix) Progress {
	p, _ := t.UpdateWithRoute(f)
	return p
}

// UpdateWithRoute additionally returns the route the progress was computed
// against. Progress and route come from one store snapshot, so a reroute
// committing concurrently can never pair old maneuvers with new distances.
func (t *Tracker) UpdateWithRoute(f feed.Fix) (Progress, *route.Route) {
	r, gen := t.store.Snapshot()

	t.mu.Lock()
	defer t.mu.Unlock()

	if r == nil {
		t.anchored = false
		return Progress{NextManeuver: -1}, nil
	}
	if !t.anchored || gen != t.lastGen {
		t.lastSeg = 0
		t.lastMan = 0
		t.lastGen = gen
		t.anchored = true
	}

	start := t.lastSeg - t.backTol
	end := 0
	if t.window > 0 {
		end = t.lastSeg + t.window
	}
	proj, ok := geo.ProjectOnPolyline(geo.Point{Lon: f.Lon, Lat: f.Lat}, r.Geometry, r.Cumulative, start, end)
	if !ok {
		return Progress{NextManeuver: -1}, r
	}
	if proj.SegmentIndex > t.lastSeg {
		t.lastSeg = proj.SegmentIndex
	}

	total := r.LengthM()
	toDest := total - proj.AlongM
	if toDest < 0 {
		toDest = 0
	}
	arrived := proj.SegmentIndex == len(r.Geometry)-2 && proj.T >= 1

	p := Progress{
		RouteID:        r.ID,
		NearestSegment: proj.SegmentIndex,
		AlongRouteM:    proj.AlongM,
		DriftM:         proj.DriftM,
		NextManeuver:   -1,
		ToDestinationM: toDest,
		Arrived:        arrived,
		Valid:          true,
	}
	if len(r.Maneuvers) > 0 {
		idx := nextManeuverIndex(r.Maneuvers, proj.AlongM)
		// Maneuvers are never un-passed while this route is active.
		if idx < t.lastMan {
			idx = t.lastMan
		}
		t.lastMan = idx
		p.NextManeuver = idx
		d := r.Maneuvers[idx].DistanceFromStartM - proj.AlongM
		if d < 0 {
			d = 0
		}
		p.ToNextManeuverM = d
	}
	return p, r
}

// nextManeuverIndex returns the first maneuver at or beyond alongM, or the
// terminal maneuver when the fix projects past all of them.
func nextManeuverIndex(mans []route.Maneuver, alongM float64) int {
	for i, m := range mans {
		if m.DistanceFromStartM >= alongM {
			return i
		}
	}
	return len(mans) - 1
}
