package nav

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/gnss-livenav/feed"
	"github.com/theoremus-urban-solutions/gnss-livenav/geo"
	"github.com/theoremus-urban-solutions/gnss-livenav/route"
)

const metersPerDegLat = 6371000.0 * math.Pi / 180

// makeStraightRoute builds a 250 m route heading due north with vertices
// every 10 m and maneuvers at 0 m (left), 100 m (right) and 250 m (arrive).
func makeStraightRoute(id string) *route.Route {
	var poly []geo.Point
	for m := 0.0; m <= 250; m += 10 {
		poly = append(poly, geo.Point{Lon: 0, Lat: m / metersPerDegLat})
	}
	r := &route.Route{
		ID:         id,
		Geometry:   poly,
		Cumulative: geo.Cumulative(poly),
		Maneuvers: []route.Maneuver{
			{Position: poly[0], Turn: route.TurnLeft, Instruction: "Head north", DistanceFromStartM: 0},
			{Position: geo.Point{Lon: 0, Lat: 100 / metersPerDegLat}, Turn: route.TurnRight, Instruction: "Turn right", DistanceFromStartM: 100},
			{Position: poly[len(poly)-1], Turn: route.TurnArrive, Instruction: "Arrive", DistanceFromStartM: 250},
		},
		Waypoints: []route.Waypoint{
			{Lon: 0, Lat: 0, Label: "origin"},
			{Lon: 0, Lat: 250 / metersPerDegLat, Label: "destination"},
		},
		DistanceM: 250,
	}
	return r
}

// fixAt places a fix alongM meters along the straight test route, offset
// driftM meters to the east.
func fixAt(alongM, driftM float64) feed.Fix {
	return feed.Fix{
		Lon:  driftM / metersPerDegLat,
		Lat:  alongM / metersPerDegLat,
		Yaw:  0,
		Time: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// fakePlanner records calls and returns a scripted result.
type fakePlanner struct {
	mu        sync.Mutex
	calls     int
	result    *route.Route
	err       error
	waypoints []route.Waypoint
}

func (f *fakePlanner) Plan(ctx context.Context, waypoints []route.Waypoint) (*route.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.waypoints = waypoints
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakePlanner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// testPolicy builds a policy with a fake clock and a manual launcher so
// reroute calls run deterministically inside the test.
func testPolicy(cfg PolicyConfig, store *route.Store, planner Planner, notifier *Notifier) (*Policy, *time.Time, *[]func()) {
	p := NewPolicy(cfg, store, planner, notifier)
	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	pending := []func(){}
	p.now = func() time.Time { return clock }
	p.launch = func(f func()) { pending = append(pending, f) }
	return p, &clock, &pending
}

func runPending(pending *[]func()) int {
	ran := 0
	for _, f := range *pending {
		f()
		ran++
	}
	*pending = (*pending)[:0]
	return ran
}
