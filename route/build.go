package route

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/gnss-livenav/geo"
	"github.com/theoremus-urban-solutions/gnss-livenav/osrm"
)

// maneuverTypes lists the OSRM step types surfaced as turn instructions.
var maneuverTypes = map[string]bool{
	"turn":       true,
	"new name":   true,
	"roundabout": true,
	"fork":       true,
	"merge":      true,
	"ramp":       true,
	"on ramp":    true,
	"off ramp":   true,
	"arrive":     true,
}

// New builds an immutable Route from a routing engine response. The geometry
// is densified to densifyStepM so nearest-vertex queries stay accurate, the
// cumulative distance table is precomputed, and each step maneuver is
// anchored to its distance from the route start by projection.
func New(data *osrm.RouteData, waypoints []Waypoint, densifyStepM float64) (*Route, error) {
	if data == nil || len(data.Geometry) < 2 {
		return nil, errors.New("route: geometry requires at least 2 vertices")
	}
	poly := geo.Densify(data.Geometry, densifyStepM)
	cum := geo.Cumulative(poly)

	r := &Route{
		ID:         uuid.NewString(),
		Geometry:   poly,
		Cumulative: cum,
		Waypoints:  waypoints,
		DistanceM:  data.DistanceM,
		DurationS:  data.DurationS,
	}
	for _, step := range data.Steps {
		if !maneuverTypes[step.Type] {
			continue
		}
		proj, ok := geo.ProjectOnPolyline(step.Location, poly, cum, 0, 0)
		if !ok {
			continue
		}
		r.Maneuvers = append(r.Maneuvers, Maneuver{
			Position:           step.Location,
			Turn:               classifyTurn(step.Type, step.Modifier),
			Instruction:        step.Name,
			DistanceFromStartM: proj.AlongM,
		})
	}
	sort.Slice(r.Maneuvers, func(i, j int) bool {
		return r.Maneuvers[i].DistanceFromStartM < r.Maneuvers[j].DistanceFromStartM
	})
	return r, nil
}

func classifyTurn(typ, modifier string) TurnType {
	typ = strings.ToLower(typ)
	modifier = strings.ToLower(modifier)
	if typ == "arrive" {
		return TurnArrive
	}
	switch modifier {
	case "uturn":
		return TurnUTurn
	case "left", "slight left", "sharp left":
		return TurnLeft
	case "right", "slight right", "sharp right":
		return TurnRight
	}
	return TurnStraight
}
