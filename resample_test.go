package polyline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSubdivideClosed(t *testing.T) {
	p := square()
	Subdivide(p, 8)
	want := []Vec3{
		V2(0, 0), V2(5, 0), V2(10, 0), V2(10, 5),
		V2(10, 10), V2(5, 10), V2(0, 10), V2(0, 5),
	}
	diff(t, want, p.Vertices(), cmpopts.EquateApprox(0, 1e-12))
	if got := p.Length(); math.Abs(got-40) > 1e-12 {
		t.Errorf("Length = %g, want 40", got)
	}
}

func TestSubdivideOpen(t *testing.T) {
	p := NewPath([]Vec3{V2(0, 0), V2(10, 0)}, false)
	Subdivide(p, 5)
	want := []Vec3{V2(0, 0), V2(2.5, 0), V2(5, 0), V2(7.5, 0), V2(10, 0)}
	diff(t, want, p.Vertices(), cmpopts.EquateApprox(0, 1e-12))
}

func TestSubdivideEndpointsPreserved(t *testing.T) {
	p := NewPath([]Vec3{V2(0, 0), V2(4, 3), V2(9, 3), V2(12, -1)}, false)
	Subdivide(p, 7)
	if got := p.NumVertices(); got != 7 {
		t.Fatalf("NumVertices = %d, want 7", got)
	}
	diff(t, V2(0, 0), p.Vertex(0), cmpopts.EquateApprox(0, 1e-12))
	diff(t, V2(12, -1), p.Vertex(6), cmpopts.EquateApprox(0, 1e-12))
}

func TestSubdivideNoop(t *testing.T) {
	p := NewPath([]Vec3{V2(0, 0), V2(10, 0)}, false)
	Subdivide(p, 1)
	diff(t, []Vec3{V2(0, 0), V2(10, 0)}, p.Vertices())

	single := NewPath([]Vec3{V2(1, 2)}, false)
	Subdivide(single, 10)
	diff(t, []Vec3{V2(1, 2)}, single.Vertices())
}
