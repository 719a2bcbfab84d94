package osrm

import (
	"encoding/json"
	"errors"

	"github.com/theoremus-urban-solutions/gnss-livenav/geo"
)

// decodeGeometry accepts either a GeoJSON LineString object or an encoded
// polyline string.
func decodeGeometry(raw json.RawMessage) ([]geo.Point, error) {
	if len(raw) == 0 {
		return nil, errors.New("osrm: missing geometry")
	}
	switch raw[0] {
	case '{':
		var g geojsonGeometry
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, err
		}
		pts := make([]geo.Point, 0, len(g.Coordinates))
		for _, c := range g.Coordinates {
			if len(c) < 2 {
				continue
			}
			pts = append(pts, pointFromPair(c))
		}
		return pts, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return geo.DecodePolyline(s)
	default:
		return nil, errors.New("osrm: unsupported geometry format")
	}
}

func pointFromPair(c []float64) geo.Point {
	return geo.Point{Lon: c[0], Lat: c[1]}
}
