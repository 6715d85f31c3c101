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

package config

type trainConfiguration struct {
	// LearningRate and Lambda are the TD(lambda) self-play hyperparameters.
	LearningRate float64
	Lambda       float64

	// LearningRateDecay multiplies LearningRate every LearningRateDecayEvery
	// rounds.
	LearningRateDecay      float64
	LearningRateDecayEvery int

	// Episodes is decoded from the config file but not read; the
	// self-play command takes its round count as its <games> argument.
	Episodes int

	// PliesPerRound is the approximate number of plies visited per round,
	// spread across as many self-played games as it takes to reach it.
	PliesPerRound int

	// Epsilon is the probability a self-play ply picks a uniformly random
	// legal move instead of the depth-1 PVS best move.
	Epsilon float64

	// BenchmarkEvery runs a benchmarking pass against the reference
	// evaluators every BenchmarkEvery rounds.
	BenchmarkEvery int

	// BenchmarkGames is the number of games played per reference
	// evaluator per color during benchmarking.
	BenchmarkGames int

	// BenchmarkEpsilon is the probability a benchmark opponent move is
	// replaced by a uniformly random legal move, for game diversity.
	BenchmarkEpsilon float64

	// CheckpointResetRatio and CheckpointSaveRatio gate the
	// checkpoint/rollback logic: a composite benchmark score below
	// checkpoint_score * CheckpointResetRatio rolls back to the
	// checkpoint; a score above checkpoint_score * CheckpointSaveRatio
	// saves a new one.
	CheckpointResetRatio float64
	CheckpointSaveRatio  float64

	CheckpointDir string

	// Parallelism bounds the number of concurrent self-play games run by
	// the benchmarking driver (errgroup-based).
	Parallelism int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Train.LearningRate = 0.001
	Settings.Train.Lambda = 0.25
	Settings.Train.LearningRateDecay = 0.99
	Settings.Train.LearningRateDecayEvery = 10
	Settings.Train.Episodes = 1000
	Settings.Train.PliesPerRound = 2000
	Settings.Train.Epsilon = 0.1
	Settings.Train.BenchmarkEvery = 10
	Settings.Train.BenchmarkGames = 20
	Settings.Train.BenchmarkEpsilon = 0.05
	Settings.Train.CheckpointResetRatio = 1.2
	Settings.Train.CheckpointSaveRatio = 1.0
	Settings.Train.CheckpointDir = "checkpoints"
	Settings.Train.Parallelism = 4
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupTrain() {
}
