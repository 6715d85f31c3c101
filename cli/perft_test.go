package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-reversi/engine/position"
)

func TestPerftFromStartPositionMatchesKnownLeafCounts(t *testing.T) {
	known := []int64{4, 12, 56, 244, 1396}
	for depth, want := range known {
		p := position.New()
		assert.Equal(t, want, perft(&p, depth+1), "depth %d", depth+1)
	}
}

func TestPerftDepthZeroIsOneLeaf(t *testing.T) {
	p := position.New()
	assert.Equal(t, int64(1), perft(&p, 0))
}
