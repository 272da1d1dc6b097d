package polyline

import (
	"fmt"
	"math"
)

// SmoothOptions configures [Smooth].
type SmoothOptions struct {
	// Radius is the smoothing half-window: how many neighbors on each side of
	// a vertex contribute to its average.
	Radius int
	// Iterations is the number of smoothing passes.
	Iterations int
	// Weights optionally scales each vertex's contribution to the averages.
	// When non-nil it must have one entry per path vertex.
	Weights []float64
}

// smoothKernelSteepness shapes the logistic falloff of the smoothing kernel.
const smoothKernelSteepness = 6.0

// smoothKernel returns the weights for offsets -radius..radius, following a
// logistic falloff of the normalized distance from the window center.
func smoothKernel(radius int) []float64 {
	kernel := make([]float64, 2*radius+1)
	for k := -radius; k <= radius; k++ {
		x := safeDiv(math.Abs(float64(k)), float64(radius))
		kernel[k+radius] = 1 / (1 + math.Exp(smoothKernelSteepness*(x-0.5)))
	}
	return kernel
}

// Smooth replaces every vertex with the weighted average of itself and its
// Radius neighbors on each side, repeated Iterations times. Closed paths wrap
// around; open paths shrink the window near the ends. A radius or iteration
// count below 1 leaves the path unchanged.
func Smooth(p *Path, opts SmoothOptions) error {
	if opts.Weights != nil && len(opts.Weights) != p.NumVertices() {
		return fmt.Errorf("polyline: got %d weights for %d vertices", len(opts.Weights), p.NumVertices())
	}
	if opts.Radius < 1 || opts.Iterations < 1 || p.NumVertices() < 2 {
		return nil
	}
	kernel := smoothKernel(opts.Radius)
	n := len(p.verts)
	cur := make([]Vec3, n)
	copy(cur, p.verts)
	next := make([]Vec3, n)
	for it := 0; it < opts.Iterations; it++ {
		for i := range cur {
			var sum Vec3
			den := 0.0
			for k := -opts.Radius; k <= opts.Radius; k++ {
				j := i + k
				if p.closed {
					j = ((j % n) + n) % n
				} else if j < 0 || j >= n {
					continue
				}
				w := kernel[k+opts.Radius]
				if opts.Weights != nil {
					w *= opts.Weights[j]
				}
				sum = sum.Add(cur[j].Mul(w))
				den += w
			}
			if math.Abs(den) <= Epsilon {
				next[i] = cur[i]
			} else {
				next[i] = sum.Div(den)
			}
		}
		cur, next = next, cur
	}
	p.verts = cur
	p.invalidate()
	return nil
}
