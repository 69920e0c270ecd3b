package geom

import "errors"

// ErrNonFinite indicates a coordinate that is NaN or ±Inf.
var ErrNonFinite = errors.New("geom: non-finite coordinate")

// Point is an immutable 3D coordinate.
type Point struct {
	X, Y, Z float64
}

// Segment is a directed line segment From → To.
// Two segments, one per direction, represent one undirected adjacency.
type Segment struct {
	From Point
	To   Point
}
