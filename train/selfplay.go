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

	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// TrainableEvaluator is an Evaluator whose weights can be trained and
// whose state can be cloned for a checkpoint - both the Pattern and
// Staged evaluators satisfy it.
type TrainableEvaluator interface {
	evaluator.Evaluator
	evaluator.Trainable
	Clone() evaluator.Evaluator
}

// terminalScore is the mover-relative disk differential at a game-over
// position, matching the sign convention get_float_score/Score use
// everywhere else: positive favors whoever is to move.
func terminalScore(p *position.Position) float64 {
	diff := float64(p.Black.PopCount()) - float64(p.White.PopCount())
	if !p.BlackToMove {
		diff = -diff
	}
	return diff
}

// playPly plays one ply of self-play: eps-greedy between the depth-1
// best move and a uniformly random one, recurses to the end of the
// game, then trains eval at p towards a TD(lambda) target built from
// the line that was actually played. It returns the blended TD score
// propagated up to the caller (mover-relative to p), the number of
// plies visited from p to the end of the game, and the sum of the
// squared training errors incurred along the way, so the caller can
// track how many plies a round has covered and fold a mean loss into
// its running EMA.
func playPly(eval TrainableEvaluator, p *position.Position, epsilon, lr, lambda float64, rng *rand.Rand) (score float64, plies int, lossSum float64) {
	if p.IsGameOver() {
		return terminalScore(p), 0, 0
	}

	var m Move
	if rng.Float64() > epsilon {
		m = bestMoveDepth1(eval, p)
	} else {
		moves := p.GetMoves()
		m = moves.At(rng.Intn(moves.Len()))
	}

	token := p.Apply(m)
	childScore, childPlies, childLoss := playPly(eval, p, epsilon, lr, lambda, rng)
	p.Undo(token, m)

	loss := eval.Update(p, -childScore, lr)
	tdScore := (1-lambda)*eval.FloatScore(p) - lambda*childScore

	return tdScore, childPlies + 1, childLoss + loss
}
