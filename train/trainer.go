/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package train

import (
	"math/rand"
	"time"

	"github.com/go-reversi/engine/config"
	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/logging"
	"github.com/go-reversi/engine/position"
)

var log = logging.GetLog("train")

// lossEmaAlpha is the exponential moving average weight used to track
// the trainer's recent squared-error loss.
const lossEmaAlpha = 0.0001

// Trainer runs the TD(lambda) self-play loop of spec §4.L: generate a
// self-played game, train the evaluator on the line it actually played,
// periodically benchmark against fixed reference opponents, and keep a
// checkpoint to roll back to if the evaluator regresses.
type Trainer struct {
	eval            TrainableEvaluator
	checkpoint      TrainableEvaluator
	checkpointScore float64
	hasCheckpoint   bool

	patternBaseline evaluator.Evaluator // optional loaded reference, may be nil

	lr      float64
	epsilon float64
	lambda  float64
	lossEMA float64

	round int
}

// NewTrainer builds a Trainer around eval, using config.Settings.Train
// for its hyperparameters. patternBaseline is an optional pre-trained
// Pattern/Staged evaluator loaded from disk to benchmark against
// alongside the always-available PieceSquare reference; pass nil to skip
// it. RandomPlayer is not among the benchmark opponents.
func NewTrainer(eval TrainableEvaluator, patternBaseline evaluator.Evaluator) *Trainer {
	return &Trainer{
		eval:            eval,
		patternBaseline: patternBaseline,
		lr:              config.Settings.Train.LearningRate,
		epsilon:         config.Settings.Train.Epsilon,
		lambda:          config.Settings.Train.Lambda,
	}
}

// OverrideHyperparameters replaces the learning rate and epsilon NewTrainer
// seeded from config.Settings.Train - for callers (the self-play CLI
// command) that take these as explicit arguments rather than config.
func (t *Trainer) OverrideHyperparameters(lr, epsilon float64) {
	t.lr = lr
	t.epsilon = epsilon
}

// Evaluator returns the trainer's current evaluator - the live one
// being trained, or the checkpoint if the last benchmark rolled back to
// it.
func (t *Trainer) Evaluator() TrainableEvaluator {
	return t.eval
}

// LossEMA returns the trainer's exponentially-averaged squared-error
// training loss.
func (t *Trainer) LossEMA() float64 {
	return t.lossEMA
}

// Run executes rounds rounds of self-play, benchmarking and decaying
// the learning rate on the schedule config.Settings.Train describes.
func (t *Trainer) Run(rounds int) {
	for r := 0; r < rounds; r++ {
		t.round++
		t.runRound()

		if decayEvery := config.Settings.Train.LearningRateDecayEvery; decayEvery > 0 && t.round%decayEvery == 0 {
			t.lr *= config.Settings.Train.LearningRateDecay
		}

		if benchEvery := config.Settings.Train.BenchmarkEvery; benchEvery > 0 && t.round%benchEvery == 0 {
			t.benchmarkAndCheckpoint()
		}
	}
}

// runRound plays self-play games from the opening position, each
// contributing its plies to the round, until PliesPerRound plies have
// been visited, folding each game's mean per-ply loss into the
// trainer's loss EMA.
func (t *Trainer) runRound() {
	target := config.Settings.Train.PliesPerRound
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	visited := 0
	for visited < target {
		p := position.New()
		_, plies, lossSum := playPly(t.eval, &p, t.epsilon, t.lr, t.lambda, rng)
		visited += plies
		if plies > 0 {
			t.updateLossEMA(lossSum / float64(plies))
		}
	}
}

// updateLossEMA folds loss into the trainer's exponentially-averaged
// training loss, seeding it with the first observation rather than
// biasing it towards zero.
func (t *Trainer) updateLossEMA(loss float64) {
	if t.round == 1 && t.lossEMA == 0 {
		t.lossEMA = loss
		return
	}
	t.lossEMA = (1-lossEmaAlpha)*t.lossEMA + lossEmaAlpha*loss
}

// benchmarkAndCheckpoint plays reference games against the always-on
// PieceSquare baseline and, if configured, a loaded pattern baseline,
// aggregates a composite score, and either rolls back to the last
// checkpoint (if the score is below the checkpoint score times the reset
// ratio) or saves a new one (if it is above the checkpoint score times
// the save ratio).
func (t *Trainer) benchmarkAndCheckpoint() {
	games := config.Settings.Train.BenchmarkGames
	noise := config.Settings.Train.BenchmarkEpsilon
	parallelism := config.Settings.Train.Parallelism

	psResult := runBenchmark(t.eval, evaluatorPlayer{eval: evaluator.NewPieceSquare()}, games, noise, parallelism)
	psTotal := psResult.blackWinRate + psResult.whiteWinRate

	// A loaded pattern baseline may not be configured; when absent, the
	// composite score folds back to the PieceSquare component squared
	// rather than dropping the second factor entirely.
	patTotal := psTotal
	if t.patternBaseline != nil {
		patResult := runBenchmark(t.eval, evaluatorPlayer{eval: t.patternBaseline}, games, noise, parallelism)
		patTotal = patResult.blackWinRate + patResult.whiteWinRate
	}

	score := psTotal * patTotal
	log.Infof("round %d: loss_ema=%.5f vs-piecesquare=%.3f vs-pattern=%.3f composite=%.3f",
		t.round, t.lossEMA, psTotal, patTotal, score)

	if !t.hasCheckpoint {
		t.saveCheckpoint(score)
		return
	}

	switch {
	case score < t.checkpointScore*config.Settings.Train.CheckpointResetRatio:
		log.Info("resetting evaluator to checkpoint")
		t.eval = t.checkpoint
	case score > t.checkpointScore*config.Settings.Train.CheckpointSaveRatio:
		t.saveCheckpoint(score)
	}
}

func (t *Trainer) saveCheckpoint(score float64) {
	log.Infof("saving new checkpoint at composite score %.3f", score)
	t.checkpoint = t.eval.Clone().(TrainableEvaluator)
	t.checkpointScore = score
	t.hasCheckpoint = true
}
