package polyline

// CurveLocation describes a position on a path. It is produced by projection
// queries (see [Path.NearestLocation]) and by intersection extraction (see
// [PathIntersections]); it is never stored inside a [Path].
type CurveLocation struct {
	// Point is the location on the path.
	Point Vec3
	// SegmentIndex is the index of the segment containing the point.
	SegmentIndex int
	// Distance is the distance between the point and the query point that
	// produced this location. For intersection results it is the distance from
	// the start of the containing segment.
	Distance float64
	// Offset is the arclength position of the point along the path.
	Offset float64
	// Paired cross-references the location on the other path contributing to
	// an intersection. It is nil for projection results.
	Paired *CurveLocation
}
