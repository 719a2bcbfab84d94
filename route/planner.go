package route

import (
	"context"

	"github.com/theoremus-urban-solutions/gnss-livenav/osrm"
)

// Planner turns ordered waypoints into a ready-to-navigate Route by calling
// the routing engine and post-processing its response.
type Planner struct {
	client       *osrm.Client
	densifyStepM float64
}

// NewPlanner creates a planner backed by the given engine client
func NewPlanner(client *osrm.Client, densifyStepM float64) *Planner {
	return &Planner{client: client, densifyStepM: densifyStepM}
}

// Plan requests a route through the waypoints and builds the Route model.
func (p *Planner) Plan(ctx context.Context, waypoints []Waypoint) (*Route, error) {
	coords := make([][2]float64, len(waypoints))
	for i, wp := range waypoints {
		coords[i] = [2]float64{wp.Lon, wp.Lat}
	}
	data, err := p.client.Route(ctx, coords)
	if err != nil {
		return nil, err
	}
	return New(data, waypoints, p.densifyStepM)
}
