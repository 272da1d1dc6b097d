package polyline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSmoothKernel(t *testing.T) {
	kernel := smoothKernel(2)
	if len(kernel) != 5 {
		t.Fatalf("got %d kernel entries, want 5", len(kernel))
	}
	// Symmetric and decreasing away from the center.
	if kernel[0] != kernel[4] || kernel[1] != kernel[3] {
		t.Error("kernel isn't symmetric")
	}
	if !(kernel[2] > kernel[1] && kernel[1] > kernel[0]) {
		t.Errorf("kernel isn't decreasing: %v", kernel)
	}
}

func TestSmoothShrinksCorners(t *testing.T) {
	p := square()
	if err := Smooth(p, SmoothOptions{Radius: 1, Iterations: 1}); err != nil {
		t.Fatal(err)
	}
	if got := p.NumVertices(); got != 4 {
		t.Fatalf("NumVertices = %d, want 4", got)
	}
	if got := p.Length(); got >= 40 {
		t.Errorf("Length = %g, want < 40", got)
	}

	// Symmetry keeps the centroid in place.
	var sum Vec3
	for _, v := range p.Vertices() {
		sum = sum.Add(v)
	}
	diff(t, V2(5, 5), sum.Div(4), cmpopts.EquateApprox(0, 1e-12))
}

func TestSmoothOpenEnds(t *testing.T) {
	zig := NewPath([]Vec3{V2(0, 0), V2(2, 2), V2(4, 0), V2(6, 2), V2(8, 0)}, false)
	before := zig.Length()
	if err := Smooth(zig, SmoothOptions{Radius: 1, Iterations: 2}); err != nil {
		t.Fatal(err)
	}
	if got := zig.Length(); got >= before {
		t.Errorf("Length = %g, want < %g", got, before)
	}
	if got := zig.NumVertices(); got != 5 {
		t.Errorf("NumVertices = %d, want 5", got)
	}
}

func TestSmoothWeights(t *testing.T) {
	p := square()
	// A dominant weight pins the first vertex's influence.
	err := Smooth(p, SmoothOptions{Radius: 1, Iterations: 1, Weights: []float64{1e9, 1, 1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Vertex(0).Distance(V2(0, 0)); got > 1e-6 {
		t.Errorf("heavily weighted vertex moved by %g", got)
	}
}

func TestSmoothWeightsMismatch(t *testing.T) {
	p := square()
	if err := Smooth(p, SmoothOptions{Radius: 1, Iterations: 1, Weights: []float64{1, 2}}); err == nil {
		t.Error("mismatched weights didn't fail")
	}
}

func TestSmoothNoop(t *testing.T) {
	p := square()
	if err := Smooth(p, SmoothOptions{Radius: 0, Iterations: 5}); err != nil {
		t.Fatal(err)
	}
	diff(t, square().Vertices(), p.Vertices())

	if err := Smooth(p, SmoothOptions{Radius: 2, Iterations: 0}); err != nil {
		t.Fatal(err)
	}
	diff(t, square().Vertices(), p.Vertices())
}

func TestSmoothZeroWeights(t *testing.T) {
	// An all-zero window leaves the vertex untouched instead of dividing by
	// zero.
	p := NewPath([]Vec3{V2(0, 0), V2(5, 1), V2(10, 0)}, false)
	err := Smooth(p, SmoothOptions{Radius: 1, Iterations: 1, Weights: []float64{0, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Vec3{V2(0, 0), V2(5, 1), V2(10, 0)}, p.Vertices())
	if math.IsNaN(p.Length()) {
		t.Error("Length is NaN")
	}
}
