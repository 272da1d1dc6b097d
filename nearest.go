package polyline

// ProjectToSegment projects pt onto the segment starting at origin and
// extending by dir. It returns the scalar distance from origin to the
// projected point if the projection falls within the segment, and false
// otherwise.
func ProjectToSegment(pt, origin, dir Vec3) (float64, bool) {
	rel := pt.Sub(origin)
	if rel.Dot(dir) < 0 {
		return 0, false
	}
	end := origin.Add(dir)
	if pt.Sub(end).Dot(dir.Negate()) < 0 {
		return 0, false
	}
	return rel.Dot(dir.Normalize()), true
}

// NearestOnSegment returns the point on the segment from a to b nearest to
// pt, and its distance to pt. If the projection of pt falls outside the
// segment, the nearer endpoint is returned; ties go to a.
func NearestOnSegment(pt, a, b Vec3) (Vec3, float64) {
	dir := b.Sub(a)
	if proj, ok := ProjectToSegment(pt, a, dir); ok {
		nearest := a.Add(dir.Normalize().Mul(proj))
		return nearest, pt.Distance(nearest)
	}
	da := pt.Distance(a)
	db := pt.Distance(b)
	if db < da {
		return b, db
	}
	return a, da
}

// NearestLocationOnPath evaluates every segment of p and returns the location
// nearest to pt, ties broken by the lowest segment index. It returns nil if
// the path has no segments. The returned location's Offset is not filled in;
// use [Path.NearestLocation] for that.
func NearestLocationOnPath(p *Path, pt Vec3) *CurveLocation {
	verts := p.Vertices()
	n := len(verts)
	nseg := p.NumSegments()
	var best *CurveLocation
	for i := 0; i < nseg; i++ {
		nearest, dist := NearestOnSegment(pt, verts[i], verts[(i+1)%n])
		if best == nil || dist < best.Distance {
			best = &CurveLocation{
				Point:        nearest,
				SegmentIndex: i,
				Distance:     dist,
			}
		}
	}
	return best
}
