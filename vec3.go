package polyline

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector. It doubles as a point; vertices in the XY
// plane with Z = 0 describe 2D geometry.
type Vec3 struct {
	X, Y, Z float64
}

// V returns the vector ⟨x, y, z⟩.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// V2 returns the vector ⟨x, y, 0⟩, a point in the horizontal plane.
func V2(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

// Splat returns the vector's x, y, and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{v.X / f, v.Y / f, v.Z / f}
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// The zero vector (and any vector of magnitude below [Epsilon]) normalizes to
// the zero vector.
func (v Vec3) Normalize() Vec3 {
	h := v.Hypot()
	if h <= Epsilon {
		return Vec3{}
	}
	return v.Mul(1 / h)
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Mul(t))
}

// Slerp spherically interpolates between two vectors: the direction rotates
// at constant angular speed from v's to o's while the magnitude interpolates
// linearly. If either vector has zero magnitude, or the two are (anti)parallel
// so that no rotation plane exists, Slerp falls back to [Vec3.Lerp].
func (v Vec3) Slerp(o Vec3, t float64) Vec3 {
	a := v.Normalize()
	b := o.Normalize()
	axis := a.Cross(b)
	if a.Hypot2() == 0 || b.Hypot2() == 0 || axis.Hypot() <= Epsilon {
		return v.Lerp(o, t)
	}
	th := math.Acos(Clamp(a.Dot(b), -1, 1))
	dir := a.RotateAbout(axis.Normalize(), th*t)
	return dir.Mul(Lerp(v.Hypot(), o.Hypot(), t))
}

// RotateAbout rotates v about the given unit axis by th radians, following the
// right-hand rule.
func (v Vec3) RotateAbout(axis Vec3, th float64) Vec3 {
	// Rodrigues' rotation formula.
	sin, cos := math.Sincos(th)
	return v.Mul(cos).
		Add(axis.Cross(v).Mul(sin)).
		Add(axis.Mul(axis.Dot(v) * (1 - cos)))
}

// PerpXY returns v's horizontal projection rotated −90° in the XY plane. For a
// counter-clockwise 2D boundary this is the outward direction.
func (v Vec3) PerpXY() Vec3 {
	return Vec3{X: v.Y, Y: -v.X}
}

// Horizontal returns v with its Z component dropped.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}

// Heading returns the angle in radians between v's horizontal projection and
// ⟨1, 0, 0⟩. This is atan2(y, x).
func (v Vec3) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Ortho returns an arbitrary vector orthogonal to v, of the same magnitude.
// The zero vector maps to itself.
func (v Vec3) Ortho() Vec3 {
	up := Vec3{Z: 1}
	if math.Abs(v.Normalize().Dot(up)) > 1-Epsilon {
		up = Vec3{X: 1}
	}
	return v.Cross(up).Normalize().Mul(v.Hypot())
}

// Distance returns the euclidean distance between two points.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (v Vec3) DistanceSquared(o Vec3) float64 {
	return v.Sub(o).Hypot2()
}

// IsInf reports whether at least one component is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}
