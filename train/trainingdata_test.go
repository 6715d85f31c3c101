package train

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

func TestGeneratePositionsCollectsRequestedCountAtRequestedEmptyCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	positions := GeneratePositions(58, 5, 0, nil, rng)

	require.Len(t, positions, 5)
	for _, tp := range positions {
		p := position.FromDisks(Bitboard(tp.BlackDisks), Bitboard(tp.WhiteDisks), tp.BlackMove)
		assert.Equal(t, 58, p.EmptyCount())
		assert.Nil(t, tp.Score, "depth 0 requests must leave Score unset")
	}
}

func TestGeneratePositionsScoresWhenDepthIsPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	positions := GeneratePositions(60, 2, 2, cornerPattern(), rng)

	require.Len(t, positions, 2)
	for _, tp := range positions {
		require.NotNil(t, tp.Score)
	}
}

func TestSaveAndLoadTrainingDataRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	positions := GeneratePositions(59, 3, 0, nil, rng)

	path := filepath.Join(t.TempDir(), "training.json")
	require.NoError(t, SaveTrainingData(path, positions))
	defer os.Remove(path)

	loaded, err := LoadTrainingData(path)
	require.NoError(t, err)
	assert.Equal(t, positions, loaded)
}
