package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rngraph/geom"
	"github.com/katalvlaran/rngraph/pointset"
	"github.com/katalvlaran/rngraph/rng"
)

// naiveIndices is an independent transcription of the pair scan used as
// the reference: on-demand distances, no cache, no goroutines.
func naiveIndices(pts []geom.Point) [][]int {
	n := len(pts)
	out := make([][]int, n)
	for i := range out {
		out[i] = []int{}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := pts[i].Distance(pts[j])
			linkable := true
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if pts[k].Distance(pts[i]) < d && pts[k].Distance(pts[j]) < d {
					linkable = false
					break
				}
			}
			if linkable {
				out[i] = append(out[i], j)
				out[j] = append(out[j], i)
			}
		}
	}

	return out
}

// mustBuild builds g or fails the test.
func mustBuild(t testing.TB, pts []geom.Point, opts ...rng.Option) *rng.Graph {
	t.Helper()
	g, err := rng.Build(pts, opts...)
	require.NoError(t, err)

	return g
}

// cloud returns a seeded uniform cloud of n points.
func cloud(t testing.TB, n int, seed int64) []geom.Point {
	t.Helper()
	pts, err := pointset.Build([]pointset.Option{pointset.WithSeed(seed), pointset.WithScale(10)}, pointset.Uniform(n))
	require.NoError(t, err)

	return pts
}

// requireWellFormed asserts completeness, symmetry with reversed edges,
// no self adjacency and Edges/Indices alignment.
func requireWellFormed(t *testing.T, g *rng.Graph) {
	t.Helper()
	pts := g.Points()
	edges, indices := g.Edges(), g.Indices()
	require.Len(t, edges, len(pts))
	require.Len(t, indices, len(pts))

	directed := 0
	for i := range pts {
		require.NotNil(t, edges[i], "edges[%d]", i)
		require.NotNil(t, indices[i], "indices[%d]", i)
		require.Len(t, edges[i], len(indices[i]), "alignment at %d", i)
		for k, j := range indices[i] {
			directed++
			require.NotEqual(t, i, j, "self adjacency at %d", i)
			require.Equal(t, geom.Seg(pts[i], pts[j]), edges[i][k])
			require.True(t, g.Adjacent(j, i), "asymmetric %d~%d", i, j)

			back, err := g.Entry(j)
			require.NoError(t, err)
			found := false
			for _, nb := range back {
				if nb.Index == i {
					require.Equal(t, edges[i][k].Reverse(), nb.Edge)
					found = true
				}
			}
			require.True(t, found)
		}
	}
	require.Equal(t, 2*g.EdgeCount(), directed)
}
