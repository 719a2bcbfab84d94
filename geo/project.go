package geo

// Projection is the result of snapping a point onto a polyline.
type Projection struct {
	// SegmentIndex is the matched segment: poly[SegmentIndex]..poly[SegmentIndex+1].
	SegmentIndex int
	// T is the clamped parameter along the matched segment.
	T float64
	// Point is the snapped position on the polyline.
	Point Point
	// AlongM is the distance from the polyline start to Point, in meters.
	AlongM float64
	// DriftM is the great-circle distance from the input point to Point.
	DriftM float64
}

// ProjectOnPolyline snaps p onto poly, considering only segments in
// [startSeg, endSeg). endSeg <= 0 means all remaining segments. On equal
// distance the later segment wins, so noise at a vertex never snaps the
// match backward.
func ProjectOnPolyline(p Point, poly []Point, cum []float64, startSeg, endSeg int) (Projection, bool) {
	nSeg := len(poly) - 1
	if nSeg < 1 || len(cum) != len(poly) {
		return Projection{}, false
	}
	if startSeg < 0 {
		startSeg = 0
	}
	if startSeg > nSeg-1 {
		startSeg = nSeg - 1
	}
	if endSeg <= 0 || endSeg > nSeg {
		endSeg = nSeg
	}
	if endSeg <= startSeg {
		endSeg = startSeg + 1
	}

	best := Projection{SegmentIndex: -1}
	bestDist := -1.0
	for i := startSeg; i < endSeg; i++ {
		pt, t := ProjectOnSegment(p, poly[i], poly[i+1])
		d := HaversineM(p, pt)
		if bestDist < 0 || d <= bestDist {
			bestDist = d
			best = Projection{
				SegmentIndex: i,
				T:            t,
				Point:        pt,
				AlongM:       cum[i] + t*(cum[i+1]-cum[i]),
				DriftM:       d,
			}
		}
	}
	return best, best.SegmentIndex >= 0
}
