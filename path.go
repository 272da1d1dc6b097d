package polyline

import (
	"fmt"
	"math"
	"slices"
)

// Path is an ordered sequence of vertices traced by straight segments,
// optionally closed by a segment from the last vertex back to the first.
//
// A path lazily computes and caches its total length, its per-segment
// lengths, and the cumulative arclength offset of every vertex. The caches
// are invalidated by [Path.SetVertices], [Path.SetClosed],
// [Path.SetLengthMetric], [Path.Reduce], and [Path.ClearVertices], and
// recomputed on the next read; no read ever observes a cache computed against
// a prior vertex set.
//
// The zero value is an empty open path.
type Path struct {
	verts  []Vec3
	closed bool
	metric Axes

	vertsDirty  bool
	lengthDirty bool

	// Caches. filtered holds the metric-filtered vertices that all geometric
	// queries operate on; offsets[i] is the arclength at vertex i.
	filtered []Vec3
	length   float64
	segLens  []float64
	offsets  []float64
}

// NewPath returns a path over a copy of the given vertices. The input slice is
// never aliased.
func NewPath(verts []Vec3, closed bool) *Path {
	p := &Path{closed: closed}
	p.SetVertices(verts)
	return p
}

// NewPathFromCoords returns a path over a flat coordinate list. dim selects
// how many consecutive values form one vertex: 2 for points in the horizontal
// plane, 3 for full 3D points.
//
// This is the flat-list counterpart of [NewPath]; it fails rather than guess
// when the input is malformed.
func NewPathFromCoords(coords []float64, dim int, closed bool) (*Path, error) {
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("polyline: coordinate dimension must be 2 or 3, got %d", dim)
	}
	if len(coords)%dim != 0 {
		return nil, fmt.Errorf("polyline: coordinate list length %d is not a multiple of %d", len(coords), dim)
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("polyline: coordinate %d is %g", i, c)
		}
	}
	verts := make([]Vec3, 0, len(coords)/dim)
	for i := 0; i < len(coords); i += dim {
		v := Vec3{X: coords[i], Y: coords[i+1]}
		if dim == 3 {
			v.Z = coords[i+2]
		}
		verts = append(verts, v)
	}
	p := &Path{closed: closed, verts: verts}
	p.invalidate()
	return p, nil
}

func (p *Path) invalidate() {
	p.vertsDirty = true
	p.lengthDirty = true
}

// SetVertices replaces the path's vertices with a copy of verts and
// invalidates all cached state.
func (p *Path) SetVertices(verts []Vec3) {
	p.verts = slices.Clone(verts)
	p.invalidate()
}

// ClearVertices removes all vertices from the path.
func (p *Path) ClearVertices() {
	p.verts = nil
	p.invalidate()
}

// Closed reports whether the path is closed.
func (p *Path) Closed() bool { return p.closed }

// SetClosed sets whether the path is closed and invalidates the length cache.
func (p *Path) SetClosed(closed bool) {
	if p.closed == closed {
		return
	}
	p.closed = closed
	p.lengthDirty = true
}

// LengthMetric returns the axis subset used for length computation. The zero
// value means all axes contribute.
func (p *Path) LengthMetric() Axes { return p.metric }

// SetLengthMetric restricts every length, offset, and position computation to
// the given axis subset and invalidates all cached state.
func (p *Path) SetLengthMetric(metric Axes) {
	if p.metric == metric {
		return
	}
	p.metric = metric
	p.invalidate()
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{
		verts:  slices.Clone(p.verts),
		closed: p.closed,
		metric: p.metric,
	}
	out.invalidate()
	return out
}

func (p *Path) ensureVertices() {
	if !p.vertsDirty {
		return
	}
	p.filtered = p.filtered[:0]
	for _, v := range p.verts {
		p.filtered = append(p.filtered, p.metric.Filter(v))
	}
	p.vertsDirty = false
}

func (p *Path) ensureLength() {
	p.ensureVertices()
	if !p.lengthDirty {
		return
	}
	n := len(p.filtered)
	nseg := p.numSegments(n)
	p.segLens = p.segLens[:0]
	p.offsets = p.offsets[:0]
	p.length = 0
	if n > 0 {
		p.offsets = append(p.offsets, 0)
	}
	for i := 0; i < nseg; i++ {
		l := p.filtered[i].Distance(p.filtered[(i+1)%n])
		p.segLens = append(p.segLens, l)
		if i < n-1 {
			p.offsets = append(p.offsets, p.offsets[i]+l)
		}
		p.length += l
	}
	p.lengthDirty = false
}

func (p *Path) numSegments(n int) int {
	if n == 0 {
		return 0
	}
	if p.closed {
		return n
	}
	return n - 1
}

// NumVertices returns the number of vertices.
func (p *Path) NumVertices() int { return len(p.verts) }

// NumSegments returns the number of segments: one per vertex for closed
// paths, one less for open paths.
func (p *Path) NumSegments() int { return p.numSegments(len(p.verts)) }

// Vertices returns a copy of the path's metric-filtered vertices. The
// filtered set is cached; only the returned slice is freshly allocated.
func (p *Path) Vertices() []Vec3 {
	p.ensureVertices()
	return slices.Clone(p.filtered)
}

// Vertex returns the metric-filtered vertex at index i.
func (p *Path) Vertex(i int) Vec3 {
	p.ensureVertices()
	return p.filtered[i]
}

// Length returns the total arclength of the path under its length metric.
// Empty and single-vertex paths have length 0.
func (p *Path) Length() float64 {
	p.ensureLength()
	return p.length
}

// SegmentLengths returns a copy of the per-segment lengths. For a closed path
// the final entry is the wraparound segment from the last vertex back to the
// first.
func (p *Path) SegmentLengths() []float64 {
	p.ensureLength()
	return slices.Clone(p.segLens)
}

// Offsets returns a copy of the cumulative arclength offsets, one per vertex.
// The sequence is non-decreasing and starts at 0; Offsets()[i+1]−Offsets()[i]
// equals SegmentLengths()[i].
func (p *Path) Offsets() []float64 {
	p.ensureLength()
	return slices.Clone(p.offsets)
}

// Times returns the cumulative offsets normalized to [0, 1]. A zero-length
// path yields all zeros.
func (p *Path) Times() []float64 {
	p.ensureLength()
	out := make([]float64, len(p.offsets))
	for i, off := range p.offsets {
		out[i] = safeDiv(off, p.length)
	}
	return out
}

// BoundingBox returns the smallest box enclosing the path's metric-filtered
// vertices.
func (p *Path) BoundingBox() Box {
	p.ensureVertices()
	return NewBoxFromVertices(p.filtered)
}

// locate converts an arclength offset to the index of the containing segment
// and the fractional position within it. The offset is clamped to [0, length].
func (p *Path) locate(offset float64) (int, float64) {
	p.ensureLength()
	nseg := len(p.segLens)
	if nseg == 0 {
		return 0, 0
	}
	offset = Clamp(offset, 0, p.length)
	for i := 0; i < nseg; i++ {
		end := p.offsets[i] + p.segLens[i]
		if offset <= end || i == nseg-1 {
			return i, Clamp(safeDiv(offset-p.offsets[i], p.segLens[i]), 0, 1)
		}
	}
	return nseg - 1, 1
}

// PointAt returns the point at the given arclength offset, clamped to
// [0, Length]. An empty path yields the zero vector; a single-vertex path
// yields its sole vertex.
func (p *Path) PointAt(offset float64) Vec3 {
	p.ensureLength()
	n := len(p.filtered)
	switch n {
	case 0:
		return Vec3{}
	case 1:
		return p.filtered[0]
	}
	i, t := p.locate(offset)
	return p.filtered[i].Lerp(p.filtered[(i+1)%n], t)
}

// distinctNeighbor walks the vertices outward from index start in the given
// direction, skipping vertices that coincide with pt, and returns the nearest
// distinct one. Closed paths wrap around; open paths stop at the ends.
func (p *Path) distinctNeighbor(pt Vec3, start, step int) (Vec3, bool) {
	n := len(p.filtered)
	j := start
	for iter := 0; iter < p.numSegments(n)+2; iter++ {
		if p.closed {
			j = ((j % n) + n) % n
		} else if j < 0 || j >= n {
			return Vec3{}, false
		}
		if v := p.filtered[j]; v.Distance(pt) > Epsilon {
			return v, true
		}
		j += step
	}
	return Vec3{}, false
}

// tangentAt returns the tangent at the given offset together with a secondary
// direction orthogonal to both neighboring edge directions. The secondary
// direction is zero when the neighboring edges are parallel or only one side
// exists.
func (p *Path) tangentAt(offset float64) (tangent, secondary Vec3) {
	p.ensureLength()
	if len(p.filtered) < 2 {
		return Vec3{}, Vec3{}
	}
	i, _ := p.locate(offset)
	pt := p.PointAt(offset)
	prev, okIn := p.distinctNeighbor(pt, i, -1)
	next, okOut := p.distinctNeighbor(pt, i+1, +1)
	switch {
	case okIn && okOut:
		dirIn := pt.Sub(prev).Normalize()
		dirOut := next.Sub(pt).Normalize()
		return dirIn.Slerp(dirOut, 0.5).Normalize(), dirIn.Cross(dirOut).Normalize()
	case okIn:
		return pt.Sub(prev).Normalize(), Vec3{}
	case okOut:
		return next.Sub(pt).Normalize(), Vec3{}
	default:
		return Vec3{}, Vec3{}
	}
}

// TangentAt returns the unit tangent at the given arclength offset. At shared
// vertices the incoming and outgoing edge directions are blended by spherical
// interpolation, so the tangent varies smoothly across corners. If confine is
// true the tangent is projected into the horizontal plane.
func (p *Path) TangentAt(offset float64, confine bool) Vec3 {
	tangent, _ := p.tangentAt(offset)
	if confine {
		return tangent.Horizontal().Normalize()
	}
	return tangent
}

// NormalAt returns the unit normal at the given arclength offset. For paths
// in the horizontal plane, and whenever confine is true, the normal is the
// horizontal tangent rotated −90°. Otherwise it is orthogonal to both the
// tangent and the local edge plane.
func (p *Path) NormalAt(offset float64, confine bool) Vec3 {
	tangent, secondary := p.tangentAt(offset)
	if !confine && secondary.Hypot() > Epsilon {
		return tangent.Cross(secondary).Normalize()
	}
	return tangent.Horizontal().Normalize().PerpXY()
}

// NearestLocation returns the location on the path nearest to pt, with its
// arclength offset filled in from the cumulative-offset table. It returns nil
// if the path has no segments.
func (p *Path) NearestLocation(pt Vec3) *CurveLocation {
	p.ensureLength()
	loc := NearestLocationOnPath(p, pt)
	if loc == nil {
		return nil
	}
	loc.Offset = p.offsets[loc.SegmentIndex] + loc.Point.Distance(p.filtered[loc.SegmentIndex])
	return loc
}

// SignedDistances returns, for each point, its distance to the path signed by
// which side of the path the point falls on: positive when the point lies in
// the direction of the local normal, negative otherwise. Points are reported
// as 0 if the path has no segments.
func (p *Path) SignedDistances(pts []Vec3) []float64 {
	out := make([]float64, len(pts))
	for i, pt := range pts {
		loc := p.NearestLocation(pt)
		if loc == nil {
			continue
		}
		n := p.NormalAt(loc.Offset, true)
		if pt.Sub(loc.Point).Dot(n) >= 0 {
			out[i] = loc.Distance
		} else {
			out[i] = -loc.Distance
		}
	}
	return out
}

// Reduce removes neighboring duplicate vertices, including across the closure
// seam, and then removes colinear interior vertices. It is idempotent.
func (p *Path) Reduce() {
	verts := dedupeVertices(p.verts, p.closed)

	n := len(verts)
	if n < 3 {
		p.verts = verts
		p.invalidate()
		return
	}
	out := make([]Vec3, 0, n)
	for i, v := range verts {
		if !p.closed && (i == 0 || i == n-1) {
			out = append(out, v)
			continue
		}
		var prev Vec3
		if len(out) > 0 {
			prev = out[len(out)-1]
		} else {
			prev = verts[n-1]
		}
		next := verts[(i+1)%n]
		dirIn := v.Sub(prev).Normalize()
		dirOut := next.Sub(v).Normalize()
		if dirIn.Dot(dirOut) >= 1-Epsilon {
			continue
		}
		out = append(out, v)
	}
	p.verts = out
	p.invalidate()
}

// dedupeVertices drops vertices within Epsilon of their predecessor. For
// closed paths the seam between the last and first vertex is checked as well.
func dedupeVertices(verts []Vec3, closed bool) []Vec3 {
	out := make([]Vec3, 0, len(verts))
	for _, v := range verts {
		if len(out) > 0 && v.Distance(out[len(out)-1]) <= Epsilon {
			continue
		}
		out = append(out, v)
	}
	if closed && len(out) > 1 && out[len(out)-1].Distance(out[0]) <= Epsilon {
		out = out[:len(out)-1]
	}
	return out
}
