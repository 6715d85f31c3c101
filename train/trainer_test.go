package train

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-reversi/engine/config"
)

func TestNewTrainerSeedsHyperparametersFromSettings(t *testing.T) {
	eval := cornerPattern()
	tr := NewTrainer(eval, nil)

	assert.Equal(t, config.Settings.Train.LearningRate, tr.lr)
	assert.Equal(t, config.Settings.Train.Epsilon, tr.epsilon)
	assert.Equal(t, config.Settings.Train.Lambda, tr.lambda)
	assert.Same(t, eval, tr.Evaluator())
}

func TestUpdateLossEMASeedsFromFirstObservation(t *testing.T) {
	tr := NewTrainer(cornerPattern(), nil)
	tr.round = 1

	tr.updateLossEMA(2.5)
	assert.Equal(t, 2.5, tr.LossEMA())
}

func TestUpdateLossEMABlendsSubsequentObservations(t *testing.T) {
	tr := NewTrainer(cornerPattern(), nil)
	tr.round = 1
	tr.updateLossEMA(1.0)

	tr.round = 2
	tr.updateLossEMA(0.0)

	expected := (1-lossEmaAlpha)*1.0 + lossEmaAlpha*0.0
	assert.InDelta(t, expected, tr.LossEMA(), 1e-12)
}

func TestRunRoundVisitsAtLeastPliesPerRoundAndTracksLoss(t *testing.T) {
	original := config.Settings.Train.PliesPerRound
	config.Settings.Train.PliesPerRound = 4
	defer func() { config.Settings.Train.PliesPerRound = original }()

	tr := NewTrainer(cornerPattern(), nil)
	tr.epsilon = 1.0 // force fully-random self-play so every game terminates quickly
	tr.round = 1

	require.NotPanics(t, tr.runRound)
	assert.GreaterOrEqual(t, tr.LossEMA(), 0.0)
}

func TestSaveCheckpointClonesTheEvaluatorIndependently(t *testing.T) {
	eval := cornerPattern()
	tr := NewTrainer(eval, nil)

	tr.saveCheckpoint(1.0)
	require.True(t, tr.hasCheckpoint)
	assert.Equal(t, 1.0, tr.checkpointScore)
	assert.NotSame(t, eval, tr.checkpoint)
}

func TestBenchmarkAndCheckpointSavesFirstCheckpointUnconditionally(t *testing.T) {
	original := config.Settings.Train.BenchmarkGames
	config.Settings.Train.BenchmarkGames = 2
	defer func() { config.Settings.Train.BenchmarkGames = original }()

	tr := NewTrainer(cornerPattern(), nil)
	require.False(t, tr.hasCheckpoint)

	tr.benchmarkAndCheckpoint()
	assert.True(t, tr.hasCheckpoint)
}
