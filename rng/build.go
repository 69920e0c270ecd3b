// SPDX-License-Identifier: MIT
// Package: rngraph/rng
//
// build.go — the RNG builder: pair scan, dominance test, adjacency assembly.
//
// Contract:
//   • For every pair 0 ≤ i < j < n, (i,j) is linked unless some k ∉ {i,j}
//     satisfies d(k,i) < d(i,j) ∧ d(k,j) < d(i,j). Ties never block.
//   • A linked pair appends (j, i→j) to entry i and (i, j→i) to entry j in
//     pair-scan order (i asc, then j asc).
//   • The scan yields a partial mapping with keys only for indices that got
//     at least one neighbour; complete() then fills every other index.
//   • Sequential and parallel scans produce identical graphs.
//
// Complexity:
//   • Time: O(n³) worst case, O(n²) distance evaluations when cached.
//   • Space: O(n²) distance cache + O(n + E) output.

package rng

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rngraph/geom"
)

// Build computes the relative neighborhood graph of points.
// The input slice is copied; the caller may reuse it afterwards.
//
// Errors:
//   - ErrNonFinite if any coordinate is NaN or ±Inf.
//   - ErrTooManyPoints if WithMaxPoints is set and len(points) exceeds it.
//
// Complexity: see package documentation.
func Build(points []geom.Point, opts ...Option) (*Graph, error) {
	cfg := newBuildConfig(opts...)
	start := time.Now()

	n := len(points)
	if cfg.maxPoints > 0 && n > cfg.maxPoints {
		return nil, fmt.Errorf("%s: n=%d exceeds limit %d: %w", methodBuild, n, cfg.maxPoints, ErrTooManyPoints)
	}
	if err := geom.Validate(points); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	// Copy so the result never aliases caller storage.
	pts := make([]geom.Point, n)
	copy(pts, points)

	dist := newDistFunc(pts, !cfg.noCache)

	var (
		partial map[int]Entry
		edges   int
		checks  int
	)
	if cfg.workers == 1 || n < 3 {
		partial, edges, checks = scanSequential(pts, dist)
	} else {
		partial, edges, checks = scanParallel(pts, dist, cfg.workers)
	}

	g := &Graph{
		points:  pts,
		entries: complete(n, partial, cfg.workers),
		edges:   edges,
	}

	if cfg.observer != nil {
		cfg.observer.ObserveBuild(BuildStats{
			Points:          n,
			Pairs:           n * (n - 1) / 2,
			Linked:          edges,
			DominanceChecks: checks,
			Workers:         cfg.workers,
			Duration:        time.Since(start),
		})
	}

	return g, nil
}

// scanSequential is the literal nested scan over all pairs.
// It returns the partial entries, the undirected edge count and the number
// of dominance checks performed.
func scanSequential(pts []geom.Point, dist distFunc) (map[int]Entry, int, int) {
	n := len(pts)
	partial := make(map[int]Entry)
	edges, checks := 0, 0

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, blocked, c := blocker(dist, n, i, j)
			checks += c
			if blocked {
				continue
			}
			link(partial, pts, i, j)
			edges++
		}
	}

	return partial, edges, checks
}

// scanParallel decides each row i (all pairs (i, j>i)) on its own goroutine.
// Rows only read pts and the distance table and only write their own slot
// of rows/rowChecks. The merge runs in ascending i, so insertion order
// matches scanSequential exactly.
func scanParallel(pts []geom.Point, dist distFunc, workers int) (map[int]Entry, int, int) {
	n := len(pts)
	rows := make([][]int, n)
	rowChecks := make([]int, n)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < n-1; i++ {
		eg.Go(func() error {
			var linked []int
			for j := i + 1; j < n; j++ {
				_, blocked, c := blocker(dist, n, i, j)
				rowChecks[i] += c
				if !blocked {
					linked = append(linked, j)
				}
			}
			rows[i] = linked
			return nil
		})
	}
	_ = eg.Wait() // rows never fail

	partial := make(map[int]Entry)
	edges, checks := 0, 0
	for i := 0; i < n; i++ {
		checks += rowChecks[i]
		for _, j := range rows[i] {
			link(partial, pts, i, j)
			edges++
		}
	}

	return partial, edges, checks
}

// link records the symmetric adjacency i ~ j as two directed halves.
func link(partial map[int]Entry, pts []geom.Point, i, j int) {
	partial[i] = append(partial[i], Neighbor{Index: j, Edge: geom.Seg(pts[i], pts[j])})
	partial[j] = append(partial[j], Neighbor{Index: i, Edge: geom.Seg(pts[j], pts[i])})
}
