package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-reversi/engine/config"
	"github.com/go-reversi/engine/evaluator"
	. "github.com/go-reversi/engine/types"
)

func TestRunSelfPlayRejectsMissingInput(t *testing.T) {
	err := RunSelfPlay(1, 0.01, 0.1, "", filepath.Join(t.TempDir(), "out.json"))
	assert.Error(t, err)
}

func TestRunSelfPlayTrainsAndSavesAFreshPatternFile(t *testing.T) {
	original := config.Settings.Train.PliesPerRound
	config.Settings.Train.PliesPerRound = 4
	defer func() { config.Settings.Train.PliesPerRound = original }()

	mask := uint64(SqA1.Bitboard() | SqA8.Bitboard() | SqH1.Bitboard() | SqH8.Bitboard())
	weights := [][]float32{make([]float32, 81)}
	inputPath := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, evaluator.SavePattern(inputPath, []uint64{mask}, weights, 0, 0))

	outputPath := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, RunSelfPlay(1, 0.1, 1.0, inputPath, outputPath))

	trained, err := evaluator.LoadPattern(outputPath)
	require.NoError(t, err)
	assert.NotNil(t, trained)
}
