package livenav

import (
	"github.com/theoremus-urban-solutions/gnss-livenav/route"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// routeRequest is the create-route payload. Either an explicit waypoint list
// or an origin/destination pair is accepted.
type routeRequest struct {
	Waypoints   []route.Waypoint `json:"waypoints"`
	Origin      []float64        `json:"origin"`
	Destination []float64        `json:"destination"`
}

// parseRouteRequest normalizes both request shapes into an ordered waypoint
// list and validates coordinate ranges.
func parseRouteRequest(req routeRequest) ([]route.Waypoint, error) {
	waypoints := req.Waypoints
	if len(waypoints) == 0 && len(req.Origin) == 2 && len(req.Destination) == 2 {
		waypoints = []route.Waypoint{
			{Lon: req.Origin[0], Lat: req.Origin[1], Label: "origin"},
			{Lon: req.Destination[0], Lat: req.Destination[1], Label: "destination"},
		}
	}
	if len(waypoints) < 2 {
		return nil, &QueryError{Msg: "Need at least 2 waypoints."}
	}
	for _, wp := range waypoints {
		if wp.Lon < -180 || wp.Lon > 180 || wp.Lat < -90 || wp.Lat > 90 {
			return nil, &QueryError{Msg: "Waypoint out of range."}
		}
	}
	return waypoints, nil
}
