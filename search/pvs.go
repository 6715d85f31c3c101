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

// pvs is the recursive Negamax/PVS core. It returns the score from the
// perspective of the side to move in p. Every node visited, including
// ones used only for move ordering, is tallied in s.stats.NodesVisited.
func (s *Search) pvs(p *position.Position, alpha, beta Value, depth int8) Value {
	s.stats.NodesVisited++

	if depth == 0 || p.IsGameOver() {
		return s.terminalValue(p)
	}

	alphaOriginal := alpha
	var ttKey position.Key
	probeTT := depth > TtProbeMinDepth
	if probeTT {
		ttKey = p.Key()
		if v, ok := s.tt.Probe(ttKey, depth, alpha, beta); ok {
			return v
		}
	}

	moves := p.GetMoves()
	if moves.IsEmpty() {
		moves.Push(MovePass)
	}
	s.orderMoves(p, &moves, depth)

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
				s.stats.PvsResearches++
				score = -s.pvs(p, -beta, -score, depth-1)
			}
		}
		p.Undo(token, m)

		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.stats.cutoff(i)
			break
		}
	}

	if probeTT {
		tag := TypeExact
		switch {
		case bestScore < alphaOriginal:
			tag = TypeUpper
		case bestScore >= beta:
			tag = TypeLower
		}
		s.tt.Save(ttKey, bestScore, depth, tag)
	}

	return bestScore
}

// terminalValue scores a position at depth 0 or game end. A side with no
// disks left has lost outright, independent of the static evaluator.
func (s *Search) terminalValue(p *position.Position) Value {
	if p.Black == 0 {
		if p.BlackToMove {
			return -ValueInfinite
		}
		return ValueInfinite
	}
	if p.White == 0 {
		if p.BlackToMove {
			return ValueInfinite
		}
		return -ValueInfinite
	}
	return Value(s.eval.Score(p))
}

// orderMoves sorts moves in place: a shallow PVS re-search at depth>4,
// the evaluator's static move-ordering score otherwise.
func (s *Search) orderMoves(p *position.Position, moves *MoveList, depth int8) {
	if depth > DeepOrderingMinDepth {
		shallow := shallowOrderingDepth(depth)
		moves.SortByKey(func(m Move) int {
			token := p.Apply(m)
			score := -s.pvs(p, -ValueInfinite, ValueInfinite, shallow-1)
			p.Undo(token, m)
			return int(score)
		})
		return
	}
	moves.SortByKey(func(m Move) int {
		return evaluator.MoveOrderScore(s.eval, p, m)
	})
}
