package polyline

import (
	"math"
)

// Orientation classifies an ordered point triplet in the horizontal plane.
type Orientation int

const (
	Colinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Colinear:
		return "colinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "unknown"
	}
}

// TripletOrientation returns the orientation of the ordered triplet (p, q, r)
// via the sign of the cross-product determinant. Determinants within
// [Epsilon] of zero are classified as colinear.
func TripletOrientation(p, q, r Vec3) Orientation {
	det := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case math.Abs(det) <= Epsilon:
		return Colinear
	case det > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// onSegment reports whether q, known to be colinear with the segment from p
// to r, lies within the segment's bounding box.
func onSegment(p, q, r Vec3) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// SegmentsIntersect classifies the intersection of the segments p1q1 and
// p2q2 in the horizontal plane. It returns 1 for a proper crossing, 0 when
// the segments touch at an endpoint or overlap colinearly, and -1 when they
// are disjoint.
func SegmentsIntersect(p1, q1, p2, q2 Vec3) int {
	o1 := TripletOrientation(p1, q1, p2)
	o2 := TripletOrientation(p1, q1, q2)
	o3 := TripletOrientation(p2, q2, p1)
	o4 := TripletOrientation(p2, q2, q1)

	if o1 != Colinear && o2 != Colinear && o3 != Colinear && o4 != Colinear &&
		o1 != o2 && o3 != o4 {
		return 1
	}
	if o1 == Colinear && onSegment(p1, p2, q1) {
		return 0
	}
	if o2 == Colinear && onSegment(p1, q2, q1) {
		return 0
	}
	if o3 == Colinear && onSegment(p2, p1, q2) {
		return 0
	}
	if o4 == Colinear && onSegment(p2, q1, q2) {
		return 0
	}
	return -1
}

// SegmentIntersection solves the two parametric segment equations in closed
// form and returns the intersection point. It reports false when the segments
// are degenerate, parallel, or when the intersection of the underlying lines
// falls outside either segment.
func SegmentIntersection(p1, p2, p3, p4 Vec3) (Vec3, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	det := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(det) <= Epsilon {
		return Vec3{}, false
	}
	rel := p3.Sub(p1)
	t := (rel.X*d2.Y - rel.Y*d2.X) / det
	u := (rel.X*d1.Y - rel.Y*d1.X) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec3{}, false
	}
	return p1.Lerp(p2, t), true
}

// Intersection records one crossing between two path segments as a pair of
// cross-linked locations sharing the same spatial point, one per contributing
// path. A path may intersect itself, in which case both locations refer to
// the same path.
type Intersection struct {
	First, Second *CurveLocation
}

// segmentsAdjacent reports whether segments a and b of a path with nseg
// segments are the same or neighbors, measuring index distance with
// wraparound for closed paths.
func segmentsAdjacent(a, b, nseg int, closed bool) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	if closed && nseg-d < d {
		d = nseg - d
	}
	return d <= 1
}

// pathSegments caches the per-path data the intersection loops need so the
// O(n²) pair iteration doesn't recompute it.
type pathSegments struct {
	path    *Path
	verts   []Vec3
	offsets []float64
	nseg    int
}

func collectSegments(paths []*Path) []pathSegments {
	out := make([]pathSegments, len(paths))
	for i, p := range paths {
		out[i] = pathSegments{
			path:    p,
			verts:   p.Vertices(),
			offsets: p.Offsets(),
			nseg:    p.NumSegments(),
		}
	}
	return out
}

func (ps *pathSegments) segment(i int) (Vec3, Vec3) {
	return ps.verts[i], ps.verts[(i+1)%len(ps.verts)]
}

// CountIntersections counts the crossings within and between the given paths:
// self-intersections between non-adjacent segments of each path, plus every
// intersection between segments of distinct paths. Each crossing is counted
// once.
func CountIntersections(paths []*Path) int {
	count := 0
	forEachSegmentPair(collectSegments(paths), func(pa *pathSegments, a int, pb *pathSegments, b int) {
		a0, a1 := pa.segment(a)
		b0, b1 := pb.segment(b)
		if SegmentsIntersect(a0, a1, b0, b1) == 1 {
			count++
		}
	})
	// Directed pairs count every crossing twice.
	return count / 2
}

// PathIntersections returns the deduplicated intersection points within and
// between the given paths. Each intersection pairs two cross-linked
// [CurveLocation]s whose offsets are the contributing path's cumulative
// offset at the segment start plus the distance to the intersection point.
// Spatially coincident intersections are reported once, deduplicated by a
// rounded-coordinate key.
func PathIntersections(paths []*Path) []Intersection {
	var out []Intersection
	seen := make(map[[3]int64]bool)
	forEachSegmentPair(collectSegments(paths), func(pa *pathSegments, a int, pb *pathSegments, b int) {
		a0, a1 := pa.segment(a)
		b0, b1 := pb.segment(b)
		pt, ok := SegmentIntersection(a0, a1, b0, b1)
		if !ok {
			return
		}
		key := roundedKey(pt)
		if seen[key] {
			return
		}
		seen[key] = true
		first := &CurveLocation{
			Point:        pt,
			SegmentIndex: a,
			Distance:     pt.Distance(a0),
			Offset:       pa.offsets[a] + pt.Distance(a0),
		}
		second := &CurveLocation{
			Point:        pt,
			SegmentIndex: b,
			Distance:     pt.Distance(b0),
			Offset:       pb.offsets[b] + pt.Distance(b0),
		}
		first.Paired = second
		second.Paired = first
		out = append(out, Intersection{First: first, Second: second})
	})
	return out
}

// forEachSegmentPair visits every directed pair of distinct segments across
// the given paths, skipping pairs of identical or adjacent segments within
// the same path.
func forEachSegmentPair(paths []pathSegments, visit func(pa *pathSegments, a int, pb *pathSegments, b int)) {
	for i := range paths {
		pa := &paths[i]
		for a := 0; a < pa.nseg; a++ {
			for j := range paths {
				pb := &paths[j]
				for b := 0; b < pb.nseg; b++ {
					if i == j && segmentsAdjacent(a, b, pa.nseg, pa.path.Closed()) {
						continue
					}
					visit(pa, a, pb, b)
				}
			}
		}
	}
}

// roundedKey quantizes pt for intersection deduplication.
func roundedKey(pt Vec3) [3]int64 {
	const grid = 1e6
	return [3]int64{
		int64(math.Round(pt.X * grid)),
		int64(math.Round(pt.Y * grid)),
		int64(math.Round(pt.Z * grid)),
	}
}
