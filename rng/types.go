package rng

import (
	"time"

	"github.com/katalvlaran/rngraph/geom"
)

// Neighbor is one (neighbour index, edge) pair of an adjacency entry.
// Edge always starts at the entry's own point and ends at the neighbour.
type Neighbor struct {
	Index int
	Edge  geom.Segment
}

// Entry is the ordered adjacency of one source index, in pair-scan
// insertion order. An isolated point has an empty, non-nil Entry.
type Entry []Neighbor

// Graph is the relative neighborhood graph of one point sequence.
// It holds an entry for every index in [0, n) and is immutable once built;
// concurrent readers are safe.
type Graph struct {
	points  []geom.Point // private copy of the input
	entries []Entry      // entries[i] for every i in [0, n)
	edges   int          // undirected edge count
}

// BuildStats summarises one successful Build.
type BuildStats struct {
	Points          int           // n
	Pairs           int           // n(n-1)/2 candidate pairs
	Linked          int           // undirected edges in the result
	DominanceChecks int           // third-point comparisons performed
	Workers         int           // goroutines used for the scan
	Duration        time.Duration // wall time of the build
}

// Observer receives statistics after each successful Build.
type Observer interface {
	ObserveBuild(BuildStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(BuildStats)

// ObserveBuild calls f(s).
func (f ObserverFunc) ObserveBuild(s BuildStats) { f(s) }
