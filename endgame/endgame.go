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

// Package endgame implements exhaustive negamax solvers for positions
// with few empty squares left, where the outcome can be computed to the
// end of the game rather than estimated by a static evaluator. Two
// variants are provided: a WLD (win/loss/draw) solver that only cares
// about the sign of the final disk differential, and an exact solver
// that returns the differential itself. WLD is cheaper because most
// subtrees can be cut off as soon as a win or loss is established,
// without needing to know it by how much.
package endgame

import (
	. "github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// WldThreshold and ExactThreshold are empty-square counts at or below
// which the respective solver runs in place of the midgame searcher.
const (
	WldThreshold   = 24
	ExactThreshold = 20
)

// fastestFirstMinEmpty gates the fastest-first move ordering pass:
// close to the end of the game the ordering cost exceeds its benefit,
// so it is skipped once the remaining empties drop to or below this
// (and, for the exact variant, only when few candidates remain too).
const fastestFirstMinEmpty = 3

// Result is the outcome of an endgame solve: the move played to reach
// it and the score from the mover's perspective.
type Result struct {
	Move  Move
	Score Value
	Nodes int64
}

// SolveWLD exhaustively solves p for win/loss/draw: the returned score
// is the sign of the final disk differential (+1 mover wins, 0 draw,
// -1 mover loses), scaled to ValueInfinite so it compares against
// midgame scores as an immediate cutoff.
func SolveWLD(p *Position) Result {
	s := &solver{full: false}
	score, move := s.search(p, -ValueInfinite, ValueInfinite, true)
	return Result{Move: move, Score: score, Nodes: s.nodes}
}

// SolveExact exhaustively solves p for the exact final disk
// differential (mover disks minus opponent disks at the end of play).
func SolveExact(p *Position) Result {
	s := &solver{full: true}
	score, move := s.search(p, -ValueInfinite, ValueInfinite, true)
	return Result{Move: move, Score: score, Nodes: s.nodes}
}

// solver holds the state of one endgame solve: whether it computes the
// exact differential (full) or just its sign (WLD), and a node counter.
type solver struct {
	full  bool
	nodes int64
}

// search is the recursive negamax core shared by both variants. root
// additionally tracks and returns the best move at the top of the tree;
// the returned move is meaningless at internal nodes, where only the
// score is used.
func (s *solver) search(p *Position, alpha, beta Value, root bool) (Value, Move) {
	s.nodes++

	if p.IsGameOver() {
		return s.terminalValue(p), MovePass
	}

	moves := p.GetMoves()
	if moves.IsEmpty() {
		moves.Push(MovePass)
	}
	s.orderMoves(p, &moves)

	bestScore := -ValueInfinite
	bestMove := moves.At(0)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		token := p.Apply(m)
		score, _ := s.search(p, -beta, -alpha, false)
		score = -score
		p.Undo(token, m)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	if root {
		return bestScore, bestMove
	}
	return bestScore, MovePass
}

// terminalValue scores a finished game from the mover's perspective:
// the raw disk differential for the exact variant, its sign scaled to
// ValueInfinite for WLD.
func (s *solver) terminalValue(p *Position) Value {
	material := Value(p.Black.PopCount()) - Value(p.White.PopCount())
	if !p.BlackToMove {
		material = -material
	}
	if s.full {
		return material
	}
	switch {
	case material > 0:
		return ValueInfinite
	case material < 0:
		return -ValueInfinite
	default:
		return 0
	}
}

// orderMoves sorts moves fastest-first: ascending by the opponent's
// legal move count after each candidate, since a reply with fewer
// options prunes the subtree faster. The sort is skipped once it is no
// longer worth its own cost: for WLD, once only a handful of empties
// remain; for the exact variant, also once few enough candidates remain
// that the search order can no longer matter much.
func (s *solver) orderMoves(p *Position, moves *MoveList) {
	if moves.Len() <= 1 {
		return
	}
	empties := p.EmptyCount()
	if s.full {
		if moves.Len() <= 4 && empties <= fastestFirstMinEmpty {
			return
		}
	} else if empties <= fastestFirstMinEmpty {
		return
	}
	moves.SortByKey(func(m Move) int {
		return -p.MoveCountAfter(m)
	})
}
