package osrm

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/gnss-livenav/geo"
)

// RouteData is the parsed result of one routing engine call: the route
// geometry in lon,lat order plus the raw step maneuvers, before
// densification and distance anchoring.
type RouteData struct {
	Geometry  []geo.Point
	Steps     []Step
	DistanceM float64
	DurationS float64
}

// Step is a single OSRM step maneuver.
type Step struct {
	Name     string
	Type     string
	Modifier string
	Location geo.Point
}

// Wire types. OSRM returns geometry either as a GeoJSON LineString or as an
// encoded polyline string depending on the geometries parameter; both are
// accepted.
type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry json.RawMessage `json:"geometry"`
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Legs     []osrmLeg       `json:"legs"`
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmStep struct {
	Name     string       `json:"name"`
	Ref      string       `json:"ref"`
	Maneuver osrmManeuver `json:"maneuver"`
}

type osrmManeuver struct {
	Type     string    `json:"type"`
	Modifier string    `json:"modifier"`
	Location []float64 `json:"location"`
}

type geojsonGeometry struct {
	Coordinates [][]float64 `json:"coordinates"`
}
