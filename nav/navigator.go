package nav

import (
	"context"

	"github.com/theoremus-urban-solutions/gnss-livenav/feed"
	"github.com/theoremus-urban-solutions/gnss-livenav/route"
)

// Navigator wires the feed adapter, progress tracker and reroute policy into
// the live-navigation loop: one producer pushing fixes, any number of
// consumers polling status.
type Navigator struct {
	adapter  *feed.Adapter
	store    *route.Store
	tracker  *Tracker
	policy   *Policy
	planner  Planner
	notifier *Notifier
}

// NewNavigator assembles the navigation core
func NewNavigator(adapter *feed.Adapter, store *route.Store, tracker *Tracker, policy *Policy, planner Planner, notifier *Notifier) *Navigator {
	return &Navigator{
		adapter:  adapter,
		store:    store,
		tracker:  tracker,
		policy:   policy,
		planner:  planner,
		notifier: notifier,
	}
}

// Notifier exposes the reroute event fan-out for push consumers.
func (n *Navigator) Notifier() *Notifier { return n.notifier }

// Store exposes the route store for read-only consumers.
func (n *Navigator) Store() *route.Store { return n.store }

// Adapter exposes the position feed adapter.
func (n *Navigator) Adapter() *feed.Adapter { return n.adapter }

// HandleFix is the per-fix path: normalize, track, and let the reroute
// policy observe the drift signal. Invalid fixes are dropped here.
func (n *Navigator) HandleFix(f feed.Fix) error {
	if err := n.adapter.Push(f); err != nil {
		return err
	}
	latest, ok := n.adapter.Latest()
	if !ok {
		return nil
	}
	prog := n.tracker.Update(latest)
	n.policy.Observe(latest, prog)
	return nil
}

// Status recomputes the published guidance summary from the current route
// and the latest fix. Idempotent between fixes and route changes. Route and
// progress come from the same tracker snapshot so a concurrently committed
// reroute is observed wholly or not at all.
func (n *Navigator) Status() NavStatus {
	latest, ok := n.adapter.Latest()
	if !ok {
		return BuildStatus(n.store.Get(), Progress{NextManeuver: -1}, n.policy.LastAttemptFailed())
	}
	prog, r := n.tracker.UpdateWithRoute(latest)
	return BuildStatus(r, prog, n.policy.LastAttemptFailed())
}

// Progress returns the latest progress computation for diagnostics.
func (n *Navigator) Progress() Progress {
	latest, ok := n.adapter.Latest()
	if !ok {
		return Progress{NextManeuver: -1}
	}
	return n.tracker.Update(latest)
}

// CreateRoute plans a route through the waypoints and makes it active.
func (n *Navigator) CreateRoute(ctx context.Context, waypoints []route.Waypoint) (*route.Route, error) {
	r, err := n.planner.Plan(ctx, waypoints)
	if err != nil {
		return nil, err
	}
	n.store.Set(r)
	n.policy.Reset()
	return r, nil
}

// ClearRoute drops the active route. An in-flight reroute result arriving
// afterwards is discarded by the store's generation check.
func (n *Navigator) ClearRoute() {
	n.store.Clear()
	n.policy.Reset()
}
