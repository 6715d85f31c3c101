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
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// playBenchmarkGame plays one game between candidate and opponent, the
// candidate playing Black when blackIsCandidate is true and White
// otherwise, with a small chance
// each opponent ply is replaced by a uniformly random move for
// diversity, and reports whether candidate won.
func playBenchmarkGame(candidate, opponent MoveChooser, blackIsCandidate bool, noise float64, rng *rand.Rand) bool {
	p := position.New()
	for !p.IsGameOver() {
		blackToMoveIsCandidate := p.BlackToMove == blackIsCandidate
		var m Move
		switch {
		case blackToMoveIsCandidate:
			m = candidate.ChooseMove(&p, rng)
		case rng.Float64() > noise:
			m = opponent.ChooseMove(&p, rng)
		default:
			moves := p.GetMoves()
			m = moves.At(rng.Intn(moves.Len()))
		}
		p.Apply(m)
	}

	blackDiff := float64(p.Black.PopCount()) - float64(p.White.PopCount())
	if blackIsCandidate {
		return blackDiff > 0
	}
	return blackDiff < 0
}

// benchmarkResult is one reference opponent's outcome: win rate playing
// candidate as black, and as white, over numGames each.
type benchmarkResult struct {
	blackWinRate float64
	whiteWinRate float64
}

// runBenchmark plays numGames as black and numGames as white against
// opponent, in parallel via errgroup bounded by a buffered-channel
// semaphore (the pinned x/sync version predates errgroup.Group.SetLimit),
// and reports the win rates.
func runBenchmark(candidate evaluator.Evaluator, opponent MoveChooser, numGames int, noise float64, parallelism int) benchmarkResult {
	candidatePlayer := evaluatorPlayer{eval: candidate}
	sem := make(chan struct{}, parallelism)

	var blackWins, whiteWins int64
	var g errgroup.Group

	play := func(blackIsCandidate bool, won *int64) {
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			rng := rand.New(rand.NewSource(rand.Int63()))
			if playBenchmarkGame(candidatePlayer, opponent, blackIsCandidate, noise, rng) {
				atomic.AddInt64(won, 1)
			}
			return nil
		})
	}

	for i := 0; i < numGames; i++ {
		play(true, &blackWins)
		play(false, &whiteWins)
	}
	_ = g.Wait()

	return benchmarkResult{
		blackWinRate: float64(blackWins) / float64(numGames),
		whiteWinRate: float64(whiteWins) / float64(numGames),
	}
}
