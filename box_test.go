package polyline

import (
	"math"
	"testing"
)

func TestNewBoxFromPoints(t *testing.T) {
	b := NewBoxFromPoints(V(4, -2, 1), V(-1, 3, 0))
	diff(t, Box{Min: V(-1, -2, 0), Max: V(4, 3, 1)}, b)
	diff(t, V(5, 5, 1), b.Size())
	diff(t, V(1.5, 0.5, 0.5), b.Center())
}

func TestBoxUnion(t *testing.T) {
	a := NewBoxFromPoints(V2(0, 0), V2(2, 2))
	b := NewBoxFromPoints(V2(1, -1), V2(5, 1))
	diff(t, Box{Min: V2(0, -1), Max: V2(5, 2)}, a.Union(b))
	diff(t, Box{Min: V2(0, 0), Max: V2(7, 2)}, a.UnionPoint(V2(7, 1)))
}

func TestBoxContains(t *testing.T) {
	b := NewBoxFromPoints(V(0, 0, 0), V(10, 10, 10))
	if !b.Contains(V(0, 0, 0)) {
		t.Error("Min boundary isn't inclusive")
	}
	if b.Contains(V(10, 5, 5)) {
		t.Error("Max boundary isn't exclusive")
	}
	if b.Contains(V(5, -1, 5)) {
		t.Error("outside point reported as contained")
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBoxFromPoints(V2(0, 0), V2(2, 2)).Translate(V2(3, -1))
	diff(t, Box{Min: V2(3, -1), Max: V2(5, 1)}, b)
}

func TestBoxDims(t *testing.T) {
	b := NewBoxFromPoints(V(0, 0, 0), V(10, 4, 0))
	if got := b.maxDim(); got != 10 {
		t.Errorf("maxDim = %g, want 10", got)
	}
	// The degenerate Z extent is skipped.
	if got := b.minDim(); got != 4 {
		t.Errorf("minDim = %g, want 4", got)
	}
	if got := (Box{}).minDim(); got != 0 {
		t.Errorf("empty minDim = %g, want 0", got)
	}
}

func TestBoxSpecials(t *testing.T) {
	if !NewBoxFromPoints(V(0, 0, 0), V(math.Inf(1), 0, 0)).IsInf() {
		t.Error("infinite box not reported as infinite")
	}
	if !NewBoxFromPoints(V(math.NaN(), 0, 0), V(1, 1, 1)).IsNaN() {
		t.Error("NaN box not reported as NaN")
	}
}
