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

package evaluator

import (
	"math/bits"

	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// Trainable is implemented by evaluators whose weights can be nudged
// towards a TD target by gradient descent. Update applies one step and
// reports the squared error, for the caller's loss tracking. FloatScore
// is the unscaled mover-relative score Update's target is expressed in -
// the same quantity Score reports scaled to an int.
type Trainable interface {
	Update(p *position.Position, target float64, lr float64) float64
	FloatScore(p *position.Position) float64
}

// update applies one gradient-descent step to a patternFamily's table:
// every one of the family's four rotations shares the same weight
// table, so all four indices move together for a single training
// example, the same as Score reads all four when scoring.
func (pf patternFamily) update(black, white Bitboard, delta float32) {
	bitCount := bits.OnesCount64(uint64(pf.masks[0]))
	for _, m := range pf.masks {
		pb := pext(uint64(black), uint64(m))
		pw := pext(uint64(white), uint64(m))
		idx := ternaryIndex(pb, pw, bitCount)
		pf.weights[idx] -= delta
	}
}

// Update nudges every pattern family's matching entry and the parity
// bias towards target, by gradient descent on squared error. The error
// is taken mover-relative (matching floatScore's convention) but the
// gradient applied to the weight tables is Black-relative, since the
// tables are always indexed from Black's disks regardless of whose turn
// it is - so the error is flipped back when White is to move.
func (e *Pattern) Update(p *position.Position, target float64, lr float64) float64 {
	current := float64(e.floatScore(p))
	errorVal := current - target
	if !p.BlackToMove {
		errorVal = -errorVal
	}
	gradient := errorVal
	delta := float32(lr * gradient)

	if p.EmptyCount()%2 == 0 {
		e.parityEven -= delta
	} else {
		e.parityOdd -= delta
	}

	for i := range e.families {
		e.families[i].update(p.Black, p.White, delta)
	}

	return errorVal * errorVal
}

// FloatScore is the unscaled form of floatScore, exported for the
// trainer to build TD targets from directly rather than reconstructing
// it from Score's scaled-and-truncated int.
func (e *Pattern) FloatScore(p *position.Position) float64 {
	return float64(e.floatScore(p))
}

// Update delegates to the sub-evaluator for the current game stage if
// it implements Trainable, leaving non-trainable sub-evaluators (e.g. a
// PieceSquare baseline mixed into a Staged evaluator) untouched.
func (e *Staged) Update(p *position.Position, target float64, lr float64) float64 {
	sub := e.evaluators[e.byEmpties[p.EmptyCount()]]
	if trainable, ok := sub.(Trainable); ok {
		return trainable.Update(p, target, lr)
	}
	return 0
}

// FloatScore delegates to the sub-evaluator for the current game stage
// if it implements Trainable, falling back to the coarser scaled Score
// for a non-trainable sub-evaluator.
func (e *Staged) FloatScore(p *position.Position) float64 {
	sub := e.evaluators[e.byEmpties[p.EmptyCount()]]
	if trainable, ok := sub.(Trainable); ok {
		return trainable.FloatScore(p)
	}
	return float64(sub.Score(p)) / 100
}

// Clone returns a deep copy of e: every family's weight table is
// independently allocated, so training the clone never mutates e and
// vice versa. Used by the self-play trainer to snapshot a checkpoint it
// can roll back to.
func (e *Pattern) Clone() Evaluator {
	families := make([]patternFamily, len(e.families))
	for i, fam := range e.families {
		weights := make([]float32, len(fam.weights))
		copy(weights, fam.weights)
		families[i] = patternFamily{masks: fam.masks, weights: weights}
	}
	return &Pattern{families: families, parityEven: e.parityEven, parityOdd: e.parityOdd}
}

// Clone returns a deep copy of e, cloning every sub-evaluator that
// knows how to clone itself and sharing the rest (they have no mutable
// state for Update to touch).
func (e *Staged) Clone() Evaluator {
	evaluators := make([]Evaluator, len(e.evaluators))
	for i, sub := range e.evaluators {
		if cloner, ok := sub.(interface{ Clone() Evaluator }); ok {
			evaluators[i] = cloner.Clone()
		} else {
			evaluators[i] = sub
		}
	}
	return &Staged{evaluators: evaluators, byEmpties: e.byEmpties}
}
