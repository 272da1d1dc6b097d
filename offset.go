package polyline

import (
	"fmt"
	"math"
	"slices"
)

// OffsetOptions configures [OffsetConvex].
type OffsetOptions struct {
	// Closed treats the samples as a closed loop.
	Closed bool

	// TargetDirection optionally biases every displacement toward a preferred
	// outward direction, blended in by TargetDirectionFactor ∈ [0, 1].
	TargetDirection       Vec3
	TargetDirectionFactor float64

	// Margin is the arclength distance from an open path's endpoints over
	// which the displacement attenuates to zero.
	Margin float64

	// MinSpacing is the maximum permitted segment length; longer segments are
	// subsampled before offsetting. Zero disables subsampling.
	MinSpacing float64

	// Amount is the fixed outward displacement magnitude. It is mutually
	// exclusive with TargetLength.
	Amount float64

	// TargetLength, when non-zero, requests the displacement magnitude that
	// would grow the samples to the given arclength. It is solved by a
	// single-step approximation: a trial offset of magnitude 1 is applied,
	// and the displacement is taken as TargetLength²/trialLength². The result
	// is therefore approximate, not an exact solve.
	TargetLength float64
}

// OffsetConvex displaces the samples of a convex boundary outward and returns
// the hull of the displaced samples. The outward "momentum" of each sample is
// the spherical interpolation of its two adjacent edge normals, optionally
// blended toward a target direction and attenuated near the ends of open
// sample runs. The closing hull walk eliminates self-intersections introduced
// by the displacement.
//
// Sample sets with fewer than two distinct points are returned as-is.
func OffsetConvex(samples []Vec3, opts OffsetOptions) ([]Vec3, error) {
	if opts.Amount != 0 && opts.TargetLength != 0 {
		return nil, fmt.Errorf("polyline: Amount and TargetLength are mutually exclusive")
	}
	pts := dedupeVertices(samples, opts.Closed)
	if len(pts) < 2 {
		return pts, nil
	}
	if opts.MinSpacing > 0 {
		pts = subsample(pts, opts.Closed, opts.MinSpacing)
	}
	momenta := offsetMomenta(pts, opts)

	amount := opts.Amount
	if opts.TargetLength != 0 {
		trial := displace(pts, momenta, 1)
		trialLen := polylineLength(trial, opts.Closed)
		amount = safeDiv(opts.TargetLength*opts.TargetLength, trialLen*trialLen)
	}
	return ConvexHullWalk(displace(pts, momenta, amount)), nil
}

// subsample splits every segment longer than minSpacing into equal parts no
// longer than minSpacing.
func subsample(pts []Vec3, closed bool, minSpacing float64) []Vec3 {
	nseg := len(pts) - 1
	if closed {
		nseg = len(pts)
	}
	out := make([]Vec3, 0, len(pts))
	for i := 0; i < nseg; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		out = append(out, a)
		parts := int(math.Ceil(a.Distance(b) / minSpacing))
		for k := 1; k < parts; k++ {
			out = append(out, a.Lerp(b, float64(k)/float64(parts)))
		}
	}
	if !closed {
		out = append(out, pts[len(pts)-1])
	}
	return out
}

// offsetMomenta computes each sample's outward displacement direction: the
// slerp of its two adjacent edge normals, blended toward the target direction
// and attenuated over the margin near the ends of open sample runs.
func offsetMomenta(pts []Vec3, opts OffsetOptions) []Vec3 {
	n := len(pts)
	nseg := n - 1
	if opts.Closed {
		nseg = n
	}
	normals := make([]Vec3, nseg)
	for i := range normals {
		normals[i] = pts[(i+1)%n].Sub(pts[i]).Normalize().PerpXY()
	}

	var target Vec3
	blend := Clamp(opts.TargetDirectionFactor, 0, 1)
	if blend > 0 {
		target = opts.TargetDirection.Normalize()
	}

	var offsets []float64
	total := 0.0
	if !opts.Closed && opts.Margin > 0 {
		offsets = make([]float64, n)
		for i := 1; i < n; i++ {
			total += pts[i-1].Distance(pts[i])
			offsets[i] = total
		}
	}

	momenta := make([]Vec3, n)
	for i := range momenta {
		var m Vec3
		switch {
		case opts.Closed:
			m = normals[(i-1+nseg)%nseg].Slerp(normals[i%nseg], 0.5)
		case i == 0:
			m = normals[0]
		case i == n-1:
			m = normals[nseg-1]
		default:
			m = normals[i-1].Slerp(normals[i], 0.5)
		}
		m = m.Normalize()
		if blend > 0 && target.Hypot() > 0 {
			m = m.Slerp(target, blend).Normalize()
		}
		if offsets != nil {
			edge := min(offsets[i], total-offsets[i])
			m = m.Mul(MapValue(edge, 0, opts.Margin, 0, 1))
		}
		momenta[i] = m
	}
	return momenta
}

func displace(pts, momenta []Vec3, amount float64) []Vec3 {
	if amount == 0 {
		return slices.Clone(pts)
	}
	out := make([]Vec3, len(pts))
	for i, pt := range pts {
		out[i] = pt.Add(momenta[i].Mul(amount))
	}
	return out
}
