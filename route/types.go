package route

import (
	"github.com/theoremus-urban-solutions/gnss-livenav/geo"
)

// TurnType is the closed set of maneuver kinds surfaced to clients.
type TurnType int

const (
	TurnStraight TurnType = iota
	TurnLeft
	TurnRight
	TurnUTurn
	TurnArrive
)

func (t TurnType) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnUTurn:
		return "uturn"
	case TurnArrive:
		return "arrive"
	default:
		return "straight"
	}
}

// MarshalJSON encodes the turn type as its string name.
func (t TurnType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Waypoint is a user-supplied via point for a route request.
type Waypoint struct {
	Lon   float64 `json:"lon"`
	Lat   float64 `json:"lat"`
	Label string  `json:"label,omitempty"`
}

// Maneuver is one turn instruction anchored to a point along the route.
// Passed/unpassed status is derived from progress, never stored here.
type Maneuver struct {
	Position           geo.Point `json:"position"`
	Turn               TurnType  `json:"turn_type"`
	Instruction        string    `json:"instruction"`
	DistanceFromStartM float64   `json:"distance_from_start_m"`
}

// Route is the active navigation route: densified geometry, its cumulative
// distance table and the ordered maneuver list. Immutable once built; a
// reroute produces a whole new Route with a new ID.
type Route struct {
	ID         string
	Geometry   []geo.Point
	Cumulative []float64
	Maneuvers  []Maneuver
	Waypoints  []Waypoint
	DistanceM  float64
	DurationS  float64
}

// LengthM returns the total route length along the geometry.
func (r *Route) LengthM() float64 {
	if len(r.Cumulative) == 0 {
		return 0
	}
	return r.Cumulative[len(r.Cumulative)-1]
}
