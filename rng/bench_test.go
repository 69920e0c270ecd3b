package rng_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rngraph/rng"
)

// BenchmarkBuild measures sequential vs parallel scans on uniform clouds.
// Complexity: O(n³) worst case per iteration.
func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{100, 300} {
		pts := cloud(b, n, 42)
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := rng.Build(pts, rng.WithWorkers(workers)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkBuild_NoCache measures on-demand distances.
func BenchmarkBuild_NoCache(b *testing.B) {
	pts := cloud(b, 200, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rng.Build(pts, rng.WithWorkers(1), rng.WithoutDistanceCache())
	}
}
