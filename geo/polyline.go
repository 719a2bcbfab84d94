package geo

import "errors"

// ErrBadPolyline is returned when an encoded polyline is truncated or corrupt.
var ErrBadPolyline = errors.New("geo: malformed encoded polyline")

// DecodePolyline decodes a Google encoded polyline (precision 5) into
// lon,lat points. OSRM emits this format when geometries=polyline.
func DecodePolyline(s string) ([]Point, error) {
	var points []Point
	var lat, lon int64
	i := 0
	for i < len(s) {
		dLat, n, err := decodeVarint(s[i:])
		if err != nil {
			return nil, err
		}
		i += n
		lat += dLat

		dLon, n, err := decodeVarint(s[i:])
		if err != nil {
			return nil, err
		}
		i += n
		lon += dLon

		points = append(points, Point{Lon: float64(lon) / 1e5, Lat: float64(lat) / 1e5})
	}
	return points, nil
}

func decodeVarint(s string) (int64, int, error) {
	var result int64
	var shift uint
	for i := 0; i < len(s); i++ {
		b := int64(s[i]) - 63
		if b < 0 {
			return 0, 0, ErrBadPolyline
		}
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			if result&1 != 0 {
				return ^(result >> 1), i + 1, nil
			}
			return result >> 1, i + 1, nil
		}
	}
	return 0, 0, ErrBadPolyline
}
