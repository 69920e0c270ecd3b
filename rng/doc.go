// Package rng builds the relative neighborhood graph (RNG) of an ordered set
// of 3D points.
//
// 🚀 What is an RNG?
//
//	Two points p and q are relative neighbours iff no third point r is
//	strictly closer to both of them than they are to each other:
//
//	  p ~ q  ⇔  ∄ r ∉ {p,q} : d(r,p) < d(p,q) ∧ d(r,q) < d(p,q)
//
//	The RNG sits between the Euclidean minimum spanning tree and the
//	Delaunay triangulation, which makes it a common backbone for mesh
//	generation, spatial clustering and shape reconstruction.
//
// ✨ Key features:
//   - exact brute-force semantics: every pair, every candidate third point
//   - strict comparison: a tied third point never blocks a pair
//   - per-index output for every input index, including isolated points
//   - symmetric edges stored twice, once per direction
//   - optional row-parallel scan with output identical to the sequential one
//
// ⚙️ Usage:
//
//	g, err := rng.Build(points, rng.WithWorkers(4))
//	if err != nil {
//	  // errors.Is(err, rng.ErrNonFinite) / rng.ErrTooManyPoints
//	}
//	edges := g.Edges()     // edges[i]   = segments points[i] → neighbour
//	indices := g.Indices() // indices[i] = neighbour indices, aligned with edges[i]
//
// Ordering:
//
//	Pairs are scanned with i ascending, then j ascending (i < j). A linkable
//	pair appends j to entry i and i to entry j at the moment it is decided,
//	so each entry is in pair-scan insertion order. The parallel scan decides
//	rows independently and merges them in ascending i, which reproduces the
//	same order.
//
// Performance:
//
//   - Time:   O(n³) dominance checks in the worst case (short-circuit on the
//     first blocking point), O(n²) distance evaluations.
//   - Memory: O(n²) for the pairwise distance cache, O(n + E) for the output.
//
// Errors:
//   - ErrNonFinite      : a coordinate is NaN or ±Inf.
//   - ErrTooManyPoints  : n exceeds the limit set with WithMaxPoints.
//   - ErrIndexOutOfRange: an index argument lies outside [0, n).
//   - ErrSelfPair       : a pair query was made with i == j.
package rng
