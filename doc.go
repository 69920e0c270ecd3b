// Package rngraph computes relative neighborhood graphs of 3D point sets.
//
// 🚀 What is a relative neighborhood graph?
//
//	Two points p and q are adjacent unless some third point r is strictly
//	closer to both of them than they are to each other:
//
//		max(d(r,p), d(r,q)) < d(p,q)  ⇒  no edge p–q
//
//	The result is a sparse, connected proximity graph that contains the
//	Euclidean minimum spanning tree and is contained in the Delaunay graph.
//
// ✨ What is in the box?
//
//   - Exact semantics – strict comparisons, ties never block an edge
//   - Deterministic – sequential and parallel builds give identical output
//   - Dense results – every input index gets an entry, isolated or not
//   - gonum interop – export to a weighted undirected gonum graph
//
// Under the hood, everything is organized under these subpackages:
//
//	geom/     — Point, Segment, Euclidean distance, finiteness checks
//	rng/      — the builder, adjacency materializer and Graph result
//	pointset/ — deterministic point clouds (line, lattice, uniform, sphere)
//	pointio/  — CSV / JSON / YAML readers and writers
//	metrics/  — Prometheus collector for builds
//	cmd/rngraph — command-line tool
//
// Quick ASCII example (collinear points):
//
//	A───B───C      A–C is blocked by B
//
// Quick start:
//
//	pts := []geom.Point{geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(2, 0, 0)}
//	g, err := rng.Build(pts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(g.Indices()) // [[1] [0 2] [1]]
package rngraph
