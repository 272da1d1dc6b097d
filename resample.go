package polyline

// Subdivide resamples the path at n equally arclength-spaced points,
// replacing its vertex set. For a closed path the samples divide the full
// loop into n segments; for an open path the first and last samples coincide
// with the path's endpoints. Paths with fewer than two vertices, and n below
// 2, leave the path unchanged.
func Subdivide(p *Path, n int) {
	if p.NumVertices() < 2 || n < 2 {
		return
	}
	length := p.Length()
	den := n
	if !p.closed {
		den = n - 1
	}
	verts := make([]Vec3, 0, n)
	for i := 0; i < n; i++ {
		verts = append(verts, p.PointAt(length*float64(i)/float64(den)))
	}
	p.SetVertices(verts)
}

// polylineLength returns the total length of the polyline traced by pts,
// including the wraparound segment when closed.
func polylineLength(pts []Vec3, closed bool) float64 {
	if len(pts) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i+1 < len(pts); i++ {
		total += pts[i].Distance(pts[i+1])
	}
	if closed {
		total += pts[len(pts)-1].Distance(pts[0])
	}
	return total
}
