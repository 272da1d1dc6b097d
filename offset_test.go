package polyline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestOffsetConvexAmount(t *testing.T) {
	s := math.Sqrt2 / 2
	in := []Vec3{V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10)}
	got, err := OffsetConvex(in, OffsetOptions{Closed: true, Amount: 1})
	if err != nil {
		t.Fatal(err)
	}
	// Each corner moves diagonally outward along the blend of its two edge
	// normals.
	want := []Vec3{
		V2(-s, -s), V2(10+s, -s), V2(10+s, 10+s), V2(-s, 10+s),
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestOffsetConvexTargetLength(t *testing.T) {
	in := []Vec3{V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10)}
	got, err := OffsetConvex(in, OffsetOptions{Closed: true, TargetLength: 60})
	if err != nil {
		t.Fatal(err)
	}
	// The displacement magnitude comes from one trial step, not an exact
	// solve: a unit offset grows the perimeter to 40+4√2, and the applied
	// amount is TargetLength² over that trial length squared.
	trial := 40 + 4*math.Sqrt2
	amount := 60 * 60 / (trial * trial)
	want := 40 + 4*math.Sqrt2*amount
	if gotLen := polylineLength(got, true); math.Abs(gotLen-want) > 1e-9 {
		t.Errorf("perimeter = %g, want %g", gotLen, want)
	}
}

func TestOffsetConvexMargin(t *testing.T) {
	in := []Vec3{V2(0, 0), V2(5, 0), V2(10, 0)}
	got, err := OffsetConvex(in, OffsetOptions{Amount: 1, Margin: 5})
	if err != nil {
		t.Fatal(err)
	}
	// The endpoints sit at the margin boundary and don't move; the midpoint
	// gets the full displacement along the right-hand normal.
	want := []Vec3{V2(0, 0), V2(5, -1), V2(10, 0)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestOffsetConvexTargetDirection(t *testing.T) {
	in := []Vec3{V2(0, 0), V2(10, 0)}
	got, err := OffsetConvex(in, OffsetOptions{
		Amount:                1,
		TargetDirection:       V(0, 0, 1),
		TargetDirectionFactor: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	// A factor of 1 replaces the edge normal entirely.
	want := []Vec3{V(0, 0, 1), V(10, 0, 1)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestOffsetConvexExclusiveOptions(t *testing.T) {
	in := []Vec3{V2(0, 0), V2(10, 0)}
	if _, err := OffsetConvex(in, OffsetOptions{Amount: 1, TargetLength: 50}); err == nil {
		t.Error("Amount together with TargetLength didn't fail")
	}
}

func TestOffsetConvexDegenerate(t *testing.T) {
	got, err := OffsetConvex([]Vec3{V2(3, 4), V2(3, 4)}, OffsetOptions{Amount: 1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Vec3{V2(3, 4)}, got)

	got, err = OffsetConvex(nil, OffsetOptions{Amount: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no points", got)
	}
}

func TestSubsample(t *testing.T) {
	got := subsample([]Vec3{V2(0, 0), V2(10, 0)}, false, 5)
	diff(t, []Vec3{V2(0, 0), V2(5, 0), V2(10, 0)}, got, cmpopts.EquateApprox(0, 1e-12))

	// Closed loops subsample the wraparound segment as well.
	got = subsample([]Vec3{V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10)}, true, 6)
	if len(got) != 8 {
		t.Fatalf("got %d points, want 8", len(got))
	}
	diff(t, V2(0, 5), got[7], cmpopts.EquateApprox(0, 1e-12))

	// Short segments pass through unchanged.
	in := []Vec3{V2(0, 0), V2(1, 0), V2(2, 0)}
	diff(t, in, subsample(in, false, 5))
}

func TestOffsetConvexHullCleanup(t *testing.T) {
	// The closing hull walk drops samples that fall inside the boundary.
	in := []Vec3{V2(0, 0), V2(10, 0), V2(5, 5), V2(10, 10), V2(0, 10)}
	got, err := OffsetConvex(in, OffsetOptions{Closed: true, Amount: 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []Vec3{V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10)}
	diff(t, want, got)
}
