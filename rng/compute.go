package rng

import "github.com/katalvlaran/rngraph/geom"

// Compute is the one-call form of Build for callers that only want the two
// index-aligned outputs: edges[i] and indices[i] describe the neighbours of
// points[i]. Both have exactly len(points) entries.
func Compute(points []geom.Point, opts ...Option) (edges [][]geom.Segment, indices [][]int, err error) {
	g, err := Build(points, opts...)
	if err != nil {
		return nil, nil, err
	}

	return g.Edges(), g.Indices(), nil
}
