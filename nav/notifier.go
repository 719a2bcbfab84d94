package nav

import (
	"log"
	"sync"
)

// RerouteEvent is published once per committed reroute. Consumers must
// invalidate any cached route rendering when they receive it.
type RerouteEvent struct {
	RouteID  string `json:"route_id"`
	Rerouted bool   `json:"rerouted"`
}

// Notifier fans reroute events out to subscribers. Delivery is exactly once
// per subscriber per event as long as the subscriber keeps draining; a
// subscriber that falls more than a buffer behind loses the oldest events
// and is logged.
type Notifier struct {
	mu   sync.Mutex
	subs map[chan RerouteEvent]struct{}
}

// NewNotifier creates an empty notifier
func NewNotifier() *Notifier {
	return &Notifier{subs: map[chan RerouteEvent]struct{}{}}
}

// Subscribe registers a consumer. The returned cancel func must be called
// when the consumer goes away.
func (n *Notifier) Subscribe() (<-chan RerouteEvent, func()) {
	ch := make(chan RerouteEvent, 8)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()
	cancel := func() {
		n.mu.Lock()
		delete(n.subs, ch)
		n.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers ev to every current subscriber without blocking the
// caller.
func (n *Notifier) Publish(ev RerouteEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- ev:
		default:
			log.Printf("nav: reroute subscriber lagging, dropping event for route %s", ev.RouteID)
		}
	}
}
