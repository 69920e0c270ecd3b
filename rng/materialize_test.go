package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rngraph/geom"
	"github.com/katalvlaran/rngraph/rng"
)

// TestComplete_FillsMissing checks that every index in [0,n) is present,
// existing entries are kept as-is and missing ones become empty, non-nil.
func TestComplete_FillsMissing(t *testing.T) {
	seg := geom.Seg(geom.Pt(0, 0, 0), geom.Pt(1, 0, 0))
	partial := map[int]rng.Entry{
		1: {{Index: 3, Edge: seg}},
		3: {{Index: 1, Edge: seg.Reverse()}},
	}
	for _, workers := range []int{1, 2, 3, 16} {
		out := rng.Complete(5, partial, workers)
		require.Len(t, out, 5, "workers=%d", workers)
		for i, e := range out {
			require.NotNil(t, e, "index %d must not be nil", i)
		}
		assert.Equal(t, partial[1], out[1])
		assert.Equal(t, partial[3], out[3])
		assert.Empty(t, out[0])
		assert.Empty(t, out[2])
		assert.Empty(t, out[4])
	}
}

// TestComplete_Empty covers n = 0 and a zero worker count.
func TestComplete_Empty(t *testing.T) {
	out := rng.Complete(0, nil, 4)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out = rng.Complete(2, map[int]rng.Entry{}, 0)
	require.Len(t, out, 2)
	assert.NotNil(t, out[0])
	assert.NotNil(t, out[1])
}

// TestComplete_DoesNotMutatePartial verifies the partial map is only read.
func TestComplete_DoesNotMutatePartial(t *testing.T) {
	partial := map[int]rng.Entry{0: {}}
	_ = rng.Complete(10, partial, 3)
	assert.Len(t, partial, 1)
}
