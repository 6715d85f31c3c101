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

// Package evaluator scores a Position from the perspective of the side
// to move: positive is good for the mover. It provides three
// implementations (PieceSquare, Pattern, Staged) behind one interface so
// the search package can treat them interchangeably.
package evaluator

import (
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// Evaluator is a stateless callable scoring a Position. By convention
// the score is positive when the position favors the side to move.
type Evaluator interface {
	Score(p *position.Position) int
}

// MoveOrderScorer is implemented by evaluators that can score a
// candidate move more cheaply than DefaultMoveOrderScore's
// apply/negate/undo. The search package checks for this interface
// before falling back to DefaultMoveOrderScore.
type MoveOrderScorer interface {
	MoveOrderScore(p *position.Position, m Move) int
}

// DefaultMoveOrderScore implements the spec's fallback move ordering
// score for an Evaluator with no MoveOrderScorer of its own: apply m,
// negate e's static score of the resulting position (good for us means
// bad for whoever is now to move), then undo.
func DefaultMoveOrderScore(e Evaluator, p *position.Position, m Move) int {
	token := p.Apply(m)
	s := -e.Score(p)
	p.Undo(token, m)
	return s
}

// MoveOrderScore scores m for move ordering, preferring e's own
// MoveOrderScorer implementation when present.
func MoveOrderScore(e Evaluator, p *position.Position, m Move) int {
	if scorer, ok := e.(MoveOrderScorer); ok {
		return scorer.MoveOrderScore(p, m)
	}
	return DefaultMoveOrderScore(e, p, m)
}
