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

package search

import (
	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// rootSearch runs one iterative-deepening iteration at depth and returns
// the best move found and its score, searching the candidates in the
// order orderRootMoves gives them.
func (s *Search) rootSearch(p *position.Position, depth int8) (Move, Value) {
	moves := p.GetMoves()
	if moves.IsEmpty() {
		moves.Push(MovePass)
	}
	s.orderRootMoves(p, &moves, depth)

	alpha, beta := -ValueInfinite, ValueInfinite
	bestMove := moves.At(0)
	bestScore := -ValueInfinite

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		token := p.Apply(m)

		var score Value
		if i == 0 {
			score = -s.pvs(p, -beta, -alpha, depth-1)
		} else {
			score = -s.pvs(p, -alpha-1, -alpha, depth-1)
			if score > alpha && score < beta {
				score = -s.pvs(p, -beta, -score, depth-1)
			}
		}
		p.Undo(token, m)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if s.tt != nil {
		s.tt.Save(p.Key(), bestScore, depth, TypeExact)
	}
	return bestMove, bestScore
}

// orderRootMoves sorts root candidates by the previous iteration's TT
// score where available, falling back to the evaluator's static
// move-ordering score for moves the TT hasn't seen yet.
func (s *Search) orderRootMoves(p *position.Position, moves *MoveList, depth int8) {
	moves.SortByKey(func(m Move) int {
		token := p.Apply(m)
		key := p.Key()
		p.Undo(token, m)
		if v, ok := s.tt.Peek(key); ok {
			return int(-v)
		}
		return evaluator.MoveOrderScore(s.eval, p, m)
	})
}

// bestNodeSearch is the Best-Node Search root strategy: rather than a
// full-window PVS per candidate, it bisects a shallow-seeded window with
// zero-window probes, discarding candidates that fail to reach the
// current guess until one move remains (or the window closes).
func (s *Search) bestNodeSearch(p *position.Position, depth int8) (Move, Value) {
	moves := p.GetMoves()
	if moves.IsEmpty() {
		moves.Push(MovePass)
	}

	seed := Value(s.eval.Score(p))
	alpha, beta := seed-BnsInitialWindow, seed+BnsInitialWindow

	candidates := make([]Move, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		candidates[i] = moves.At(i)
	}

	for len(candidates) > 1 && beta-alpha >= 2 {
		n := Value(len(candidates))
		guess := alpha + (beta-alpha)*(n-1)/n

		var passed []Move
		for _, m := range candidates {
			token := p.Apply(m)
			score := -s.pvs(p, -guess, -(guess - 1), depth-1)
			p.Undo(token, m)
			if score >= guess {
				passed = append(passed, m)
			}
		}

		if len(passed) > 0 {
			alpha = guess
			candidates = passed
		} else {
			beta = guess
		}
	}

	best := candidates[0]
	token := p.Apply(best)
	score := -s.pvs(p, -ValueInfinite, ValueInfinite, depth-1)
	p.Undo(token, best)

	if s.tt != nil {
		s.tt.Save(p.Key(), score, depth, TypeExact)
	}
	return best, score
}
