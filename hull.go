package polyline

import "math"

// ConvexHullWalk extracts an ordered hull from samples that already trace a
// rough counter-clockwise boundary in the horizontal plane.
//
// The walk seeds the hull with the first sample and then repeatedly picks,
// among the remaining samples, the one whose heading from the last hull point
// deviates most from the circular mean of all remaining headings, measuring
// deviation clockwise. Ties are broken by greater distance from the last hull
// point. Every sample preceding the pick in the working list is consumed and
// never revisited; the final remaining sample is always appended.
//
// The result may therefore omit input points and is sensitive to input
// ordering. This is deliberate: it cleans up boundary loops whose samples
// have been displaced (see [OffsetConvex]), it does not compute a textbook
// convex hull of an unordered point cloud. Samples already forming a convex
// counter-clockwise polygon come back unchanged.
func ConvexHullWalk(samples []Vec3) []Vec3 {
	if len(samples) <= 1 {
		out := make([]Vec3, len(samples))
		copy(out, samples)
		return out
	}
	hull := make([]Vec3, 0, len(samples))
	hull = append(hull, samples[0])
	rest := samples[1:]
	for len(rest) > 1 {
		last := hull[len(hull)-1]
		mean := meanHeading(last, rest)

		bestIdx := 0
		bestDev := -1.0
		bestDist := 0.0
		for i, pt := range rest {
			// Headings clockwise of the mean wrap to values near 2π, so the
			// outermost point of a counter-clockwise boundary scores highest.
			dev := Wrap(pt.Sub(last).Heading()-mean, 0, 2*math.Pi)
			dist := pt.Distance(last)
			if dev > bestDev+Epsilon || (math.Abs(dev-bestDev) <= Epsilon && dist > bestDist) {
				bestIdx = i
				bestDev = dev
				bestDist = dist
			}
		}
		hull = append(hull, rest[bestIdx])
		rest = rest[bestIdx+1:]
	}
	if len(rest) == 1 {
		hull = append(hull, rest[0])
	}
	return hull
}

// meanHeading returns the circular mean of the headings from origin to each
// point.
func meanHeading(origin Vec3, pts []Vec3) float64 {
	var sin, cos float64
	for _, pt := range pts {
		s, c := math.Sincos(pt.Sub(origin).Heading())
		sin += s
		cos += c
	}
	return math.Atan2(sin, cos)
}
