package polyline

// Similarity is a shape-preserving affine transform: a uniform scale followed
// by a translation.
//
// The composition convention matches matrix application: for similarities a
// and b, a.Then(b) applies a first and b second.
type Similarity struct {
	Scale       float64
	Translation Vec3
}

// IdentitySimilarity is the identity transform.
var IdentitySimilarity = Similarity{Scale: 1}

// TranslateBy returns a similarity representing translation by v.
func TranslateBy(v Vec3) Similarity {
	return Similarity{Scale: 1, Translation: v}
}

// ScaleBy returns a similarity representing uniform scaling about the origin.
func ScaleBy(f float64) Similarity {
	return Similarity{Scale: f}
}

// Apply transforms a point.
func (s Similarity) Apply(pt Vec3) Vec3 {
	return pt.Mul(s.Scale).Add(s.Translation)
}

// Then returns s followed by o.
func (s Similarity) Then(o Similarity) Similarity {
	return Similarity{
		Scale:       s.Scale * o.Scale,
		Translation: s.Translation.Mul(o.Scale).Add(o.Translation),
	}
}

// FitBox returns the similarity that recenters src inside dst: a uniform
// scale from the larger source dimension to the smaller non-degenerate target
// dimension (preserving aspect ratio, so the result cannot overflow dst),
// composed as translate→scale→translate. Degenerate boxes yield a pure
// translation between the box centers.
func FitBox(src, dst Box) Similarity {
	scale := safeDiv(dst.minDim(), src.maxDim())
	if scale == 0 {
		scale = 1
	}
	return TranslateBy(src.Center().Negate()).
		Then(ScaleBy(scale)).
		Then(TranslateBy(dst.Center()))
}

// FitInsideBox transforms the path's vertices so that geometry occupying src
// is recentered inside dst, and returns the similarity it applied so callers
// can map related geometry the same way.
func FitInsideBox(p *Path, src, dst Box) Similarity {
	s := FitBox(src, dst)
	verts := make([]Vec3, len(p.verts))
	for i, v := range p.verts {
		verts[i] = s.Apply(v)
	}
	p.verts = verts
	p.invalidate()
	return s
}
