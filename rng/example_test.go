package rng_test

import (
	"fmt"

	"github.com/katalvlaran/rngraph/geom"
	"github.com/katalvlaran/rngraph/rng"
)

// ExampleBuild shows the collinear case: the middle point blocks the outer pair.
func ExampleBuild() {
	pts := []geom.Point{
		geom.Pt(0, 0, 0), // A
		geom.Pt(1, 0, 0), // B
		geom.Pt(2, 0, 0), // C
	}
	g, err := rng.Build(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, nbs := range g.Indices() {
		fmt.Printf("%d: %v\n", i, nbs)
	}
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// 0: [1]
	// 1: [0 2]
	// 2: [1]
	// edges: 2
}

// ExampleCompute prints the directed segments of an equilateral triangle.
func ExampleCompute() {
	pts := []geom.Point{geom.Pt(1, 0, 0), geom.Pt(0, 1, 0), geom.Pt(0, 0, 1)}
	edges, indices, _ := rng.Compute(pts)
	for i := range edges {
		for k, s := range edges[i] {
			fmt.Printf("%d→%d %v\n", i, indices[i][k], s)
		}
	}

	// Output:
	// 0→1 (1, 0, 0)->(0, 1, 0)
	// 0→2 (1, 0, 0)->(0, 0, 1)
	// 1→0 (0, 1, 0)->(1, 0, 0)
	// 1→2 (0, 1, 0)->(0, 0, 1)
	// 2→0 (0, 0, 1)->(1, 0, 0)
	// 2→1 (0, 0, 1)->(0, 1, 0)
}

// ExampleBlocker finds the point that breaks a candidate pair.
func ExampleBlocker() {
	pts := []geom.Point{geom.Pt(0, 0, 0), geom.Pt(4, 0, 0), geom.Pt(2, 1, 0)}
	k, ok, _ := rng.Blocker(pts, 0, 1)
	fmt.Println(k, ok)

	// Output:
	// 2 true
}
