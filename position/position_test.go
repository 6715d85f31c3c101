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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/go-reversi/engine/types"
)

func TestNewStartPosition(t *testing.T) {
	p := New()
	assert.True(t, p.BlackToMove)
	assert.Equal(t, StartBlack, p.Black)
	assert.Equal(t, StartWhite, p.White)
	assert.Equal(t, 0, p.Score())
}

func TestFromDisksAcceptsDisjointMasks(t *testing.T) {
	assert.NotPanics(t, func() {
		FromDisks(SqA1.Bitboard(), SqH8.Bitboard(), true)
	})
}

func TestGetMovesStartPosition(t *testing.T) {
	p := New()
	ml := p.GetMoves()
	var got []Square
	for i := 0; i < ml.Len(); i++ {
		got = append(got, ml.At(i).Square())
	}
	assert.Equal(t, []Square{SqD3, SqC4, SqF5, SqE6}, got)
	assert.Equal(t, 4, p.MoveCount())
	assert.True(t, p.MovesExist())
}

func TestApplyUndoRoundTrip(t *testing.T) {
	p := New()
	before := p
	m := NewMove(SqD3)
	token := p.Apply(m)

	assert.False(t, p.BlackToMove)
	assert.Equal(t, 4, p.Black.PopCount())
	assert.Equal(t, 1, p.White.PopCount())
	assert.Equal(t, BbZero, p.Black&p.White)

	p.Undo(token, m)
	assert.Equal(t, before.Black, p.Black)
	assert.Equal(t, before.White, p.White)
	assert.Equal(t, before.BlackToMove, p.BlackToMove)
}

func TestApplyUndoRoundTripWhiteMover(t *testing.T) {
	p := New()
	p.Apply(NewMove(SqD3)) // Black plays, now White to move
	before := p
	m := NewMove(SqC3)
	token := p.Apply(m)
	p.Undo(token, m)
	assert.Equal(t, before.Black, p.Black)
	assert.Equal(t, before.White, p.White)
	assert.Equal(t, before.BlackToMove, p.BlackToMove)
}

func TestApplyPassToggleSideOnly(t *testing.T) {
	p := New()
	before := p
	token := p.Apply(MovePass)
	assert.Equal(t, before.Black, p.Black)
	assert.Equal(t, before.White, p.White)
	assert.False(t, p.BlackToMove)
	assert.Equal(t, UndoToken(BbZero), token)

	p.Undo(token, MovePass)
	assert.Equal(t, before, p)
}

func TestMoveCountAfterDoesNotMutate(t *testing.T) {
	p := New()
	before := p
	n := p.MoveCountAfter(NewMove(SqD3))
	assert.Equal(t, before, p)
	assert.True(t, n > 0)
}

func TestIsGameOverFalseAtStart(t *testing.T) {
	p := New()
	assert.False(t, p.IsGameOver())
}

func TestIsGameOverBoardFull(t *testing.T) {
	p := FromDisks(BbAll, BbZero, true)
	assert.True(t, p.IsGameOver())
}

func TestIsGameOverNeitherSideHasMoves(t *testing.T) {
	// An all-black board (bar one empty square) with White having no
	// disks adjacent to empty squares to flip: neither side can move.
	black := BbAll &^ SqA1.Bitboard()
	p := FromDisks(black, BbZero, true)
	assert.True(t, p.IsGameOver())
}

func TestMoveMaskCacheInvalidatedByApply(t *testing.T) {
	p := New()
	first := p.GetMoves()
	token := p.Apply(NewMove(SqD3))
	second := p.GetMoves()
	assert.NotEqual(t, first.Len(), second.Len())
	p.Undo(token, NewMove(SqD3))
	third := p.GetMoves()
	assert.Equal(t, first.Len(), third.Len())
}
