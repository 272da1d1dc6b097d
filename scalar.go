package polyline

import "math"

// Epsilon is the tolerance below which scalar values are considered equal and
// below which vector magnitudes are considered zero. It is used by the
// geometric predicates in this package.
const Epsilon = 1e-9

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// Wrap wraps v into the half-open range [lo, hi).
func Wrap(v, lo, hi float64) float64 {
	d := hi - lo
	if d == 0 {
		return lo
	}
	w := math.Mod(v-lo, d)
	if w < 0 {
		w += d
	}
	return w + lo
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapValue maps v from the range [inLo, inHi] to the range [outLo, outHi],
// clamping the result to the output range.
func MapValue(v, inLo, inHi, outLo, outHi float64) float64 {
	t := safeDiv(v-inLo, inHi-inLo)
	return Clamp(Lerp(outLo, outHi, t), min(outLo, outHi), max(outLo, outHi))
}

// safeDiv returns a/b, or 0 if b is within Epsilon of zero.
func safeDiv(a, b float64) float64 {
	if math.Abs(b) <= Epsilon {
		return 0
	}
	return a / b
}
