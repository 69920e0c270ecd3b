// Package pointio reads point sequences and writes relative neighborhood
// graphs in CSV, JSON and YAML.
//
// Input shapes (JSON and YAML accept all of them):
//
//	[[x, y, z], ...]
//	[{"x": .., "y": .., "z": ..}, ...]
//	{"points": <either list above>}
//
// CSV input is one "x,y,z" record per point; a leading non-numeric header
// row is skipped and lines starting with '#' are comments.
//
// Graph output keeps one entry per input index, in index order, with empty
// neighbour lists written as [] (never null). CSV graph output is one row
// per directed edge "source,target,x1,y1,z1,x2,y2,z2"; an index with no
// neighbours is written as a row with only its source column filled.
//
// Readers do not check finiteness: CSV ("NaN", "Inf") and YAML (.nan,
// .inf) can carry non-finite values, and rejecting them is left to
// geom.Validate / rng.Build at the boundary.
package pointio
