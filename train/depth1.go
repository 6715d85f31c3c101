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

// Package train implements the TD(lambda) self-play trainer (spec §4.L):
// a lightweight depth-1 move chooser used both to steer self-play games
// and to drive reference-evaluator benchmarking, the self-play weight
// update itself, and the checkpoint/rollback loop around it.
package train

import (
	"math/rand"

	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// MoveChooser picks a move for the side to move. Self-play and
// benchmarking are both expressed in terms of it so a uniformly random
// player and an evaluator-driven one plug into the same game loop.
type MoveChooser interface {
	ChooseMove(p *position.Position, rng *rand.Rand) Move
}

// bestMoveDepth1 statically evaluates every legal move one ply deep and
// returns the one leaving the opponent worst off - the "depth-1 negamax"
// move choice self-play uses the bulk of the time. p must not be a
// game-over position (callers check that first).
func bestMoveDepth1(eval evaluator.Evaluator, p *position.Position) Move {
	moves := p.GetMoves()
	best := moves.At(0)
	bestScore := -ValueInfinite
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		token := p.Apply(m)
		score := Value(-eval.Score(p))
		p.Undo(token, m)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}

// evaluatorPlayer adapts an Evaluator into a MoveChooser via
// bestMoveDepth1, ignoring rng - its move choice is deterministic given
// the position.
type evaluatorPlayer struct {
	eval evaluator.Evaluator
}

func (ep evaluatorPlayer) ChooseMove(p *position.Position, _ *rand.Rand) Move {
	return bestMoveDepth1(ep.eval, p)
}

// RandomPlayer is a reference opponent that always plays a uniformly
// random legal move, ignoring position strength entirely. p must not be
// a game-over position.
type RandomPlayer struct{}

func (RandomPlayer) ChooseMove(p *position.Position, rng *rand.Rand) Move {
	moves := p.GetMoves()
	return moves.At(rng.Intn(moves.Len()))
}
