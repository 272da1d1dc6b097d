package polyline

import "math"

// Box is an axis-aligned bounding box. A box with Max components below the Min
// components is empty; the zero value is the empty box at the origin.
type Box struct {
	Min, Max Vec3
}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring that
// all dimensions are non-negative.
func NewBoxFromPoints(p0, p1 Vec3) Box {
	return Box{
		Min: Vec3{min(p0.X, p1.X), min(p0.Y, p1.Y), min(p0.Z, p1.Z)},
		Max: Vec3{max(p0.X, p1.X), max(p0.Y, p1.Y), max(p0.Z, p1.Z)},
	}
}

// NewBoxFromVertices returns the smallest box enclosing all the given
// vertices. An empty vertex list yields the zero box.
func NewBoxFromVertices(verts []Vec3) Box {
	if len(verts) == 0 {
		return Box{}
	}
	b := NewBoxFromPoints(verts[0], verts[0])
	for _, v := range verts[1:] {
		b = b.UnionPoint(v)
	}
	return b
}

// Size returns the box's extent along each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Vec3{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)},
		Max: Vec3{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)},
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points yields their
// enclosing box.
func (b Box) UnionPoint(pt Vec3) Box {
	return Box{
		Min: Vec3{min(b.Min.X, pt.X), min(b.Min.Y, pt.Y), min(b.Min.Z, pt.Z)},
		Max: Vec3{max(b.Max.X, pt.X), max(b.Max.Y, pt.Y), max(b.Max.Z, pt.Z)},
	}
}

// Contains reports whether pt lies inside the box, with the Min boundary
// inclusive and the Max boundary exclusive.
func (b Box) Contains(pt Vec3) bool {
	return pt.X >= b.Min.X && pt.X < b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y < b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z < b.Max.Z
}

// Translate returns the box moved by v.
func (b Box) Translate(v Vec3) Box {
	return Box{
		Min: b.Min.Add(v),
		Max: b.Max.Add(v),
	}
}

func (b Box) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b Box) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}

// maxDim returns the box's largest extent.
func (b Box) maxDim() float64 {
	s := b.Size()
	return max(s.X, s.Y, s.Z)
}

// minDim returns the box's smallest non-degenerate extent, or 0 if every
// extent is degenerate.
func (b Box) minDim() float64 {
	s := b.Size()
	out := math.Inf(1)
	for _, d := range [...]float64{s.X, s.Y, s.Z} {
		if d > Epsilon && d < out {
			out = d
		}
	}
	if math.IsInf(out, 1) {
		return 0
	}
	return out
}
