// Package polyline provides primitives and routines for 2D and 3D paths made
// of straight segments. It was designed to serve the needs of generative and
// plotter-style graphics applications, but it is intended to be general enough
// to be useful for other applications.
//
// # Paths
//
// The central type is [Path]: an ordered sequence of vertices, optionally
// closed, supporting arclength-based queries. A path can report its total
// length, evaluate a point, tangent, or normal at any arclength offset,
// project arbitrary points onto itself (see [Path.NearestLocation]), and
// compute signed distances. Derived quantities (total length, per-segment
// lengths, cumulative offsets) are computed lazily and cached; any mutation of
// the vertex set, the closed flag, or the length metric invalidates the
// caches.
//
// Paths may restrict length computation to a subset of coordinate axes via
// [Axes], for example to measure distance in the horizontal plane only. The
// package uses a Z-up convention: the horizontal plane is XY, and 2D paths
// live in the XY plane with Z = 0.
//
// # Features
//
// We provide the following notable features:
//
//   - Arclength evaluation and projection (see [Path.PointAt], [Path.NearestLocation])
//   - Pairwise segment-intersection detection (see [PathIntersections])
//   - Directional greedy hull extraction (see [ConvexHullWalk])
//   - Arclength resampling (see [Subdivide])
//   - Kernel smoothing (see [Smooth])
//   - Aspect-preserving box fitting (see [FitInsideBox])
//   - Directional convex offsetting (see [OffsetConvex])
//   - SVG import and export (see [FromSVG], [WriteSVG])
//
// # Hull extraction
//
// [ConvexHullWalk] is not a textbook convex-hull algorithm. It is a greedy
// directional walk over samples that are assumed to already trace a rough
// cyclic boundary, and it consumes points it passes over. Callers that need a
// true convex hull of an unordered point cloud should look elsewhere; callers
// that want to clean up a displaced boundary loop want exactly this.
//
// # Concurrency
//
// All free functions are pure over their inputs. A [Path] holds mutable cached
// state and must not be mutated and queried concurrently; callers that share a
// path across goroutines must provide their own mutual exclusion.
package polyline
