package geo

import (
	"math"
	"testing"
)

// metersPerDegLat is the great-circle length of one degree of latitude for
// the sphere radius used by HaversineM.
const metersPerDegLat = earthRadiusM * math.Pi / 180

func TestHaversineM(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		wantM  float64
		within float64
	}{
		{
			name:   "zero distance",
			a:      Point{Lon: 10, Lat: 50},
			b:      Point{Lon: 10, Lat: 50},
			wantM:  0,
			within: 0.001,
		},
		{
			name:   "one degree of latitude",
			a:      Point{Lon: 0, Lat: 0},
			b:      Point{Lon: 0, Lat: 1},
			wantM:  metersPerDegLat,
			within: 1,
		},
		{
			name:   "hundred meters north",
			a:      Point{Lon: 23.3219, Lat: 42.6977},
			b:      Point{Lon: 23.3219, Lat: 42.6977 + 100/metersPerDegLat},
			wantM:  100,
			within: 0.1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineM(tt.a, tt.b)
			if math.Abs(got-tt.wantM) > tt.within {
				t.Errorf("expected %f m (±%f), got %f", tt.wantM, tt.within, got)
			}
		})
	}
}

func TestProjectOnSegment(t *testing.T) {
	a := Point{Lon: 0, Lat: 0}
	b := Point{Lon: 0, Lat: 1}

	tests := []struct {
		name  string
		p     Point
		wantT float64
	}{
		{"midpoint offset east", Point{Lon: 0.1, Lat: 0.5}, 0.5},
		{"before start clamps", Point{Lon: 0, Lat: -0.5}, 0},
		{"beyond end clamps", Point{Lon: 0, Lat: 1.5}, 1},
		{"quarter", Point{Lon: -0.2, Lat: 0.25}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, gotT := ProjectOnSegment(tt.p, a, b)
			if math.Abs(gotT-tt.wantT) > 1e-9 {
				t.Errorf("expected t=%f, got %f", tt.wantT, gotT)
			}
			if math.Abs(pt.Lon) > 1e-9 {
				t.Errorf("projected point should sit on the segment, got lon %f", pt.Lon)
			}
		})
	}
}

func TestCumulative(t *testing.T) {
	poly := []Point{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 100 / metersPerDegLat},
		{Lon: 0, Lat: 250 / metersPerDegLat},
	}
	cum := Cumulative(poly)
	if len(cum) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(cum))
	}
	if cum[0] != 0 {
		t.Errorf("first entry must be 0, got %f", cum[0])
	}
	if math.Abs(cum[1]-100) > 0.1 {
		t.Errorf("expected 100 m, got %f", cum[1])
	}
	if math.Abs(cum[2]-250) > 0.1 {
		t.Errorf("expected 250 m, got %f", cum[2])
	}
}

func TestDensify(t *testing.T) {
	poly := []Point{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 100 / metersPerDegLat},
	}
	dense := Densify(poly, 10)
	if len(dense) != 11 {
		t.Fatalf("expected 11 vertices for 100 m at 10 m step, got %d", len(dense))
	}
	cum := Cumulative(dense)
	for i := 1; i < len(cum); i++ {
		seg := cum[i] - cum[i-1]
		if seg > 10.01 {
			t.Errorf("segment %d is %f m, exceeds step", i, seg)
		}
	}
	if dense[0] != poly[0] || dense[len(dense)-1] != poly[1] {
		t.Error("endpoints must be preserved")
	}
}

func TestPointAtDistance(t *testing.T) {
	poly := []Point{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 100 / metersPerDegLat},
	}
	cum := Cumulative(poly)

	tests := []struct {
		name    string
		target  float64
		wantLat float64
	}{
		{"start", 0, 0},
		{"middle", 50, 50 / metersPerDegLat},
		{"end clamp", 500, 100 / metersPerDegLat},
		{"negative clamp", -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, ok := PointAtDistance(poly, cum, tt.target)
			if !ok {
				t.Fatal("expected a point")
			}
			if math.Abs(pt.Lat-tt.wantLat) > 1e-7 {
				t.Errorf("expected lat %f, got %f", tt.wantLat, pt.Lat)
			}
		})
	}
}

func TestProjectOnPolyline(t *testing.T) {
	// Straight 300 m north with vertices every 100 m.
	poly := []Point{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 100 / metersPerDegLat},
		{Lon: 0, Lat: 200 / metersPerDegLat},
		{Lon: 0, Lat: 300 / metersPerDegLat},
	}
	cum := Cumulative(poly)

	proj, ok := ProjectOnPolyline(Point{Lon: 20 / metersPerDegLat, Lat: 150 / metersPerDegLat}, poly, cum, 0, 0)
	if !ok {
		t.Fatal("expected a projection")
	}
	if proj.SegmentIndex != 1 {
		t.Errorf("expected segment 1, got %d", proj.SegmentIndex)
	}
	if math.Abs(proj.AlongM-150) > 0.5 {
		t.Errorf("expected 150 m along, got %f", proj.AlongM)
	}
	if math.Abs(proj.DriftM-20) > 0.5 {
		t.Errorf("expected 20 m drift, got %f", proj.DriftM)
	}
}

func TestProjectOnPolylineForwardTieBreak(t *testing.T) {
	// A point exactly on a shared vertex is equidistant from both adjacent
	// segments; the later one must win.
	poly := []Point{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 100 / metersPerDegLat},
		{Lon: 100 / metersPerDegLat, Lat: 100 / metersPerDegLat},
	}
	cum := Cumulative(poly)
	proj, ok := ProjectOnPolyline(poly[1], poly, cum, 0, 0)
	if !ok {
		t.Fatal("expected a projection")
	}
	if proj.SegmentIndex != 1 {
		t.Errorf("tie must break toward the later segment, got %d", proj.SegmentIndex)
	}
}

func TestProjectOnPolylineWindow(t *testing.T) {
	poly := []Point{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 100 / metersPerDegLat},
		{Lon: 0, Lat: 200 / metersPerDegLat},
		{Lon: 0, Lat: 300 / metersPerDegLat},
	}
	cum := Cumulative(poly)

	// Restricting the search to segment 0 keeps the match there even though
	// segment 2 is nearer.
	proj, ok := ProjectOnPolyline(Point{Lon: 0, Lat: 250 / metersPerDegLat}, poly, cum, 0, 1)
	if !ok {
		t.Fatal("expected a projection")
	}
	if proj.SegmentIndex != 0 {
		t.Errorf("expected windowed match on segment 0, got %d", proj.SegmentIndex)
	}
	if proj.T != 1 {
		t.Errorf("expected clamp to segment end, got t=%f", proj.T)
	}
}
