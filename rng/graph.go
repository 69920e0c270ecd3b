package rng

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/rngraph/geom"
)

// Len returns the number of input points (and entries).
func (g *Graph) Len() int {
	return len(g.entries)
}

// EdgeCount returns the number of undirected edges. Each one appears twice
// in Edges/Indices, once per direction.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Points returns a copy of the input points.
func (g *Graph) Points() []geom.Point {
	out := make([]geom.Point, len(g.points))
	copy(out, g.points)

	return out
}

// Entry returns a copy of the adjacency entry of index i.
// Errors: ErrIndexOutOfRange.
func (g *Graph) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(g.entries) {
		return nil, fmt.Errorf("%s: index %d with n=%d: %w", methodEntry, i, len(g.entries), ErrIndexOutOfRange)
	}
	out := make(Entry, len(g.entries[i]))
	copy(out, g.entries[i])

	return out, nil
}

// Neighbors returns the neighbour indices of i in insertion order, or nil
// if i is out of range.
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= len(g.entries) {
		return nil
	}
	out := make([]int, len(g.entries[i]))
	for k, nb := range g.entries[i] {
		out[k] = nb.Index
	}

	return out
}

// Degree returns the number of neighbours of i, or 0 if i is out of range.
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= len(g.entries) {
		return 0
	}

	return len(g.entries[i])
}

// Adjacent reports whether i and j are relative neighbours.
// Complexity: O(deg(i)).
func (g *Graph) Adjacent(i, j int) bool {
	if i < 0 || i >= len(g.entries) {
		return false
	}
	for _, nb := range g.entries[i] {
		if nb.Index == j {
			return true
		}
	}

	return false
}

// Edges returns, for every index i, the directed segments from points[i] to
// each neighbour, aligned with Indices()[i]. Empty entries are non-nil.
// Complexity: O(n + E).
func (g *Graph) Edges() [][]geom.Segment {
	out := make([][]geom.Segment, len(g.entries))
	for i, e := range g.entries {
		segs := make([]geom.Segment, len(e))
		for k, nb := range e {
			segs[k] = nb.Edge
		}
		out[i] = segs
	}

	return out
}

// Indices returns, for every index i, the neighbour indices aligned with
// Edges()[i]. Empty entries are non-nil.
// Complexity: O(n + E).
func (g *Graph) Indices() [][]int {
	out := make([][]int, len(g.entries))
	for i := range g.entries {
		out[i] = g.Neighbors(i)
	}

	return out
}

// ToWeighted exports g as a gonum weighted undirected graph. Node IDs are
// point indices (every index becomes a node, isolated or not) and edge
// weights are Euclidean distances.
// Complexity: O(n + E).
func (g *Graph) ToWeighted() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range g.entries {
		wg.AddNode(simple.Node(i))
	}
	for i, e := range g.entries {
		for _, nb := range e {
			if nb.Index < i {
				continue // added from the lower index already
			}
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(i), simple.Node(nb.Index), nb.Edge.Length()))
		}
	}

	return wg
}
