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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

func TestTerminalValueZeroBlackDisksIsLossForBlack(t *testing.T) {
	s := NewSearch(matEvaluator{}, 1)
	p := position.FromDisks(BbZero, SqA1.Bitboard(), true)
	assert.Equal(t, -ValueInfinite, s.terminalValue(&p))
	p.BlackToMove = false
	assert.Equal(t, ValueInfinite, s.terminalValue(&p))
}

func TestTerminalValueZeroWhiteDisksIsWinForBlack(t *testing.T) {
	s := NewSearch(matEvaluator{}, 1)
	p := position.FromDisks(SqA1.Bitboard(), BbZero, true)
	assert.Equal(t, ValueInfinite, s.terminalValue(&p))
	p.BlackToMove = false
	assert.Equal(t, -ValueInfinite, s.terminalValue(&p))
}

func TestTerminalValueFallsBackToEvaluatorOtherwise(t *testing.T) {
	s := NewSearch(matEvaluator{}, 1)
	p := position.New()
	assert.Equal(t, Value(s.eval.Score(&p)), s.terminalValue(&p))
}

func TestPvsDepthZeroReturnsTerminalValueAndCountsOneNode(t *testing.T) {
	s := NewSearch(matEvaluator{}, 1)
	p := position.New()
	before := s.stats.NodesVisited
	v := s.pvs(&p, -ValueInfinite, ValueInfinite, 0)
	assert.Equal(t, s.terminalValue(&p), v)
	assert.Equal(t, before+1, s.stats.NodesVisited)
}

func TestPvsGameOverPositionReturnsTerminalValueRegardlessOfDepth(t *testing.T) {
	s := NewSearch(matEvaluator{}, 1)
	p := position.FromDisks(BbAll&^SqA1.Bitboard(), SqA1.Bitboard(), true)
	v := s.pvs(&p, -ValueInfinite, ValueInfinite, 5)
	assert.Equal(t, s.terminalValue(&p), v)
}

func TestPvsSinglePlyForcedMoveMatchesEvaluatorAfterThatMove(t *testing.T) {
	s := NewSearch(matEvaluator{}, 0)
	p := onlyH1EmptyPosition()

	before := p
	v := s.pvs(&p, -ValueInfinite, ValueInfinite, 1)
	assertSameDiskState(t, before, p, "pvs must restore the position it was given")

	token := before.Apply(NewMove(SqH1))
	expected := -s.terminalValue(&before)
	before.Undo(token, NewMove(SqH1))
	assert.Equal(t, expected, v)
}

func TestOrderMovesShallowKeepsTheSameCandidateSet(t *testing.T) {
	s := NewSearch(matEvaluator{}, 1)
	p := position.New()
	moves := p.GetMoves()
	original := moveListToSlice(&moves)

	s.orderMoves(&p, &moves, 2)
	assert.ElementsMatch(t, original, moveListToSlice(&moves))
}

func TestOrderMovesDeepKeepsTheSameCandidateSet(t *testing.T) {
	s := NewSearch(matEvaluator{}, 1)
	p := position.New()
	moves := p.GetMoves()
	original := moveListToSlice(&moves)

	s.orderMoves(&p, &moves, DeepOrderingMinDepth+1)
	assert.ElementsMatch(t, original, moveListToSlice(&moves))
}

func TestStatisticsCutoffOnFirstMove(t *testing.T) {
	var stats Statistics
	stats.cutoff(0)
	assert.EqualValues(t, 1, stats.BetaCutoffs)
	assert.EqualValues(t, 1, stats.FirstMoveCutoffs)
}

func TestStatisticsCutoffOnLaterMove(t *testing.T) {
	var stats Statistics
	stats.cutoff(3)
	assert.EqualValues(t, 1, stats.BetaCutoffs)
	assert.EqualValues(t, 0, stats.FirstMoveCutoffs)
}
