package nav

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/gnss-livenav/feed"
	"github.com/theoremus-urban-solutions/gnss-livenav/geo"
	"github.com/theoremus-urban-solutions/gnss-livenav/route"
)

// State is the reroute policy state.
type State int

const (
	StateOnRoute State = iota
	StateDrifting
	StateRerouting
)

func (s State) String() string {
	switch s {
	case StateDrifting:
		return "drifting"
	case StateRerouting:
		return "rerouting"
	default:
		return "on_route"
	}
}

// Planner is the outbound routing engine boundary seen by the policy.
type Planner interface {
	Plan(ctx context.Context, waypoints []route.Waypoint) (*route.Route, error)
}

// PolicyConfig carries the reroute tunables.
type PolicyConfig struct {
	DriftThresholdM       float64
	Debounce              time.Duration
	Cooldown              time.Duration
	FailureCooldown       time.Duration
	MaxAttempts           int
	WaypointPassedBufferM float64
	CallTimeout           time.Duration
}

// Policy decides when the routing engine is invoked again. Drift must stay
// strictly above the threshold for the full debounce before a reroute
// starts, and cooldowns keep noisy fixes near the boundary from causing
// reroute thrashing. The engine call runs off the fix path and never holds
// the policy lock.
type Policy struct {
	cfg      PolicyConfig
	store    *route.Store
	planner  Planner
	notifier *Notifier

	mu            sync.Mutex
	state         State
	driftSince    time.Time
	cooldownUntil time.Time
	attempts      int
	lastFailed    bool

	now    func() time.Time
	launch func(func())
}

// NewPolicy creates a reroute policy
func NewPolicy(cfg PolicyConfig, store *route.Store, planner Planner, notifier *Notifier) *Policy {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 5 * time.Second
	}
	return &Policy{
		cfg:      cfg,
		store:    store,
		planner:  planner,
		notifier: notifier,
		now:      time.Now,
		launch:   func(f func()) { go f() },
	}
}

// State returns the current policy state.
func (p *Policy) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// LastAttemptFailed reports whether the most recent reroute attempt failed
// without a later success.
func (p *Policy) LastAttemptFailed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFailed
}

// Reset clears all drift and retry bookkeeping. Called when a route is
// created or cleared externally.
func (p *Policy) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateOnRoute
	p.driftSince = time.Time{}
	p.cooldownUntil = time.Time{}
	p.attempts = 0
	p.lastFailed = false
}

// Observe feeds one drift/progress signal into the state machine. It may
// start an asynchronous reroute; it never blocks on one.
func (p *Policy) Observe(f feed.Fix, prog Progress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !prog.Valid {
		p.state = StateOnRoute
		p.driftSince = time.Time{}
		return
	}
	if p.state == StateRerouting {
		return
	}

	now := p.now()
	// A fix at exactly the threshold does not count as drifting. Getting
	// back under it clears the failure flag too: the vehicle recovered
	// onto the still-active route, so guidance is healthy again.
	if prog.DriftM <= p.cfg.DriftThresholdM {
		p.state = StateOnRoute
		p.driftSince = time.Time{}
		p.attempts = 0
		p.lastFailed = false
		return
	}

	if p.driftSince.IsZero() {
		p.driftSince = now
		p.state = StateDrifting
		return
	}
	if now.Sub(p.driftSince) < p.cfg.Debounce {
		return
	}
	if now.Before(p.cooldownUntil) {
		return
	}
	if p.cfg.MaxAttempts > 0 && p.attempts >= p.cfg.MaxAttempts {
		return
	}

	r, gen := p.store.Snapshot()
	if r == nil {
		p.state = StateOnRoute
		p.driftSince = time.Time{}
		return
	}
	p.state = StateRerouting
	waypoints := remainingWaypoints(r, prog.AlongRouteM, p.cfg.WaypointPassedBufferM, f)
	p.launch(func() { p.reroute(waypoints, gen) })
}

// reroute performs one routing engine call and commits or discards the
// result. Runs outside the policy lock.
func (p *Policy) reroute(waypoints []route.Waypoint, gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.CallTimeout)
	defer cancel()
	newRoute, err := p.planner.Plan(ctx, waypoints)

	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	p.state = StateOnRoute
	p.driftSince = time.Time{}

	if err != nil {
		p.lastFailed = true
		p.attempts++
		p.cooldownUntil = now.Add(p.cfg.FailureCooldown)
		log.Printf("nav: reroute failed (attempt %d): %v", p.attempts, err)
		return
	}
	if !p.store.SetIfGeneration(newRoute, gen) {
		// The route was cleared or replaced while the call was in flight.
		// A stale reroute must not resurrect it.
		log.Printf("nav: discarding stale reroute result %s", newRoute.ID)
		return
	}
	p.lastFailed = false
	p.attempts = 0
	p.cooldownUntil = now.Add(p.cfg.Cooldown)
	log.Printf("nav: rerouted onto %s", newRoute.ID)
	p.notifier.Publish(RerouteEvent{RouteID: newRoute.ID, Rerouted: true})
}

// remainingWaypoints keeps the original waypoints not yet passed and puts
// the vehicle's current position in front as the new origin.
func remainingWaypoints(r *route.Route, alongM, bufferM float64, f feed.Fix) []route.Waypoint {
	out := []route.Waypoint{{Lon: f.Lon, Lat: f.Lat, Label: "current position"}}
	var remaining []route.Waypoint
	for _, wp := range r.Waypoints {
		proj, ok := geo.ProjectOnPolyline(geo.Point{Lon: wp.Lon, Lat: wp.Lat}, r.Geometry, r.Cumulative, 0, 0)
		if !ok {
			continue
		}
		if proj.AlongM > alongM+bufferM {
			remaining = append(remaining, wp)
		}
	}
	if len(remaining) == 0 && len(r.Waypoints) > 0 {
		remaining = []route.Waypoint{r.Waypoints[len(r.Waypoints)-1]}
	}
	return append(out, remaining...)
}
