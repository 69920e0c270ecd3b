// Package geom provides the 3D primitives shared by the rngraph packages:
// an immutable Point, a directed Segment between two points, and the
// finiteness checks applied to caller input before any distance is compared.
//
// What:
//
//   - Point is a value type {X, Y, Z}; Distance is the Euclidean norm of
//     the difference, computed through gonum's spatial/r3 package.
//   - Segment is one directed half of an undirected adjacency (From → To).
//   - Validate rejects NaN and ±Inf coordinates with ErrNonFinite.
//
// Why:
//
//   - Distance comparisons involving NaN are neither true nor false in a
//     useful sense; rejecting them at the boundary keeps the relative
//     neighborhood decision well defined.
//
// Determinism:
//
//   - p.Distance(q) == q.Distance(p) bit for bit, so a distance computed
//     once for the unordered pair {p, q} can be reused in either direction.
//
// Complexity:
//
//   - Distance: O(1).
//   - Validate: O(n).
package geom
