package geo

import (
	"math"
)

const earthRadiusM = 6371000.0

// Point is a lon,lat pair in degrees. Longitude first, matching GeoJSON order.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// HaversineM returns the great-circle distance between two points in meters.
func HaversineM(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusM * c
}

// ProjectOnSegment projects p onto the segment a-b in coordinate space and
// returns the projected point plus the clamped segment parameter t in [0,1].
func ProjectOnSegment(p, a, b Point) (Point, float64) {
	vx := b.Lon - a.Lon
	vy := b.Lat - a.Lat
	wx := p.Lon - a.Lon
	wy := p.Lat - a.Lat

	denom := vx*vx + vy*vy
	t := 0.0
	if denom > 0 {
		t = (wx*vx + wy*vy) / denom
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return Point{Lon: a.Lon + t*vx, Lat: a.Lat + t*vy}, t
}

// Cumulative builds the running distance table along poly in meters.
// Cumulative(poly)[i] is the distance from poly[0] to poly[i].
func Cumulative(poly []Point) []float64 {
	if len(poly) == 0 {
		return nil
	}
	cum := make([]float64, len(poly))
	for i := 1; i < len(poly); i++ {
		cum[i] = cum[i-1] + HaversineM(poly[i-1], poly[i])
	}
	return cum
}

// Densify inserts interpolated vertices so no segment of the returned
// polyline is longer than stepM meters. Input vertices are preserved.
func Densify(poly []Point, stepM float64) []Point {
	if len(poly) < 2 || stepM <= 0 {
		return poly
	}
	dense := make([]Point, 0, len(poly))
	dense = append(dense, poly[0])
	for i := 1; i < len(poly); i++ {
		a := poly[i-1]
		b := poly[i]
		dist := HaversineM(a, b)
		n := int(dist / stepM)
		for j := 1; j < n; j++ {
			t := float64(j) / float64(n)
			dense = append(dense, Point{
				Lon: a.Lon + (b.Lon-a.Lon)*t,
				Lat: a.Lat + (b.Lat-a.Lat)*t,
			})
		}
		dense = append(dense, b)
	}
	return dense
}

// PointAtDistance returns the point on poly at targetM along the cumulative
// table cum. Clamps to the endpoints when targetM is out of range.
func PointAtDistance(poly []Point, cum []float64, targetM float64) (Point, bool) {
	if len(poly) == 0 || len(cum) != len(poly) {
		return Point{}, false
	}
	if targetM <= 0 {
		return poly[0], true
	}
	if targetM >= cum[len(cum)-1] {
		return poly[len(poly)-1], true
	}
	segIdx := 0
	for i := 1; i < len(cum); i++ {
		if cum[i] >= targetM {
			segIdx = i - 1
			break
		}
	}
	prevM := cum[segIdx]
	nextM := cum[segIdx+1]
	t := 0.0
	if nextM > prevM {
		t = (targetM - prevM) / (nextM - prevM)
	}
	a := poly[segIdx]
	b := poly[segIdx+1]
	return Point{Lon: a.Lon + t*(b.Lon-a.Lon), Lat: a.Lat + t*(b.Lat-a.Lat)}, true
}
