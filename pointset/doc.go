// Package pointset provides deterministic 3D point-cloud fixtures in the
// same "functional options + composable constructors" style used across
// rngraph. Fixtures feed tests, benchmarks, examples and the rngraph CLI.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – Build(opts, cons...): resolves options once, runs constructors in
//     order and concatenates their points.
//   - Constructors:
//     – Line(n):            n collinear points spaced by Scale along +X.
//     – Lattice(nx,ny,nz):  a rectangular lattice with spacing Scale.
//     – Uniform(n):         n points uniform in the cube [0,Scale)³ (needs RNG).
//     – Sphere(n):          n points uniform on a sphere of radius Scale (needs RNG).
//   - Options:
//     – WithSeed / WithRand: RNG for stochastic constructors and jitter.
//     – WithScale:          spacing / edge length / radius (default 1).
//     – WithOrigin:         translation applied to every point.
//     – WithJitter:         Gaussian noise σ added per coordinate (needs RNG).
//
// Guarantees:
//
//   - Determinism: same options, same seed, same constructor order ⇒
//     identical points, bit for bit.
//   - Option constructors panic on meaningless values; constructors return
//     wrapped sentinel errors and never panic.
//
// Known RNG shapes (handy as oracles):
//
//   - Line(n)             → a path 0–1–…–(n-1).
//   - Lattice(nx,ny,nz)   → the axis-aligned grid graph; every diagonal pair
//     is blocked by a lattice point at distance Scale from one end.
package pointset
