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

// assertSameDiskState compares only the board state, ignoring the
// lazily-filled legal-move cache - two positions with identical disks
// and side to move are equal even if one has a stale cache entry from
// an earlier GetMoves call.
func assertSameDiskState(t *testing.T, want, got position.Position, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want.Black, got.Black, msgAndArgs...)
	assert.Equal(t, want.White, got.White, msgAndArgs...)
	assert.Equal(t, want.BlackToMove, got.BlackToMove, msgAndArgs...)
}

// matEvaluator scores a position by mover-relative disk count. It is
// deterministic and cheap, letting tests hand-verify expected scores
// without needing the real positional evaluator.
type matEvaluator struct{}

func (matEvaluator) Score(p *position.Position) int {
	if p.BlackToMove {
		return p.Black.PopCount() - p.White.PopCount()
	}
	return p.White.PopCount() - p.Black.PopCount()
}

// rank1Mask returns the bitboard of all squares on rank 1.
func rank1Mask() Bitboard {
	var m Bitboard
	for sq := SqA1; sq <= SqH8; sq++ {
		if sq.RankOf() == Rank1 {
			m |= sq.Bitboard()
		}
	}
	return m
}

// moveListToSlice copies a MoveList into a plain slice for assertions
// that don't care about order (ElementsMatch, etc.).
func moveListToSlice(ml *MoveList) []Move {
	out := make([]Move, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		out[i] = ml.At(i)
	}
	return out
}

// onlyH1EmptyPosition builds a position with a single empty square, H1,
// set up so Black's only legal move is playing H1, flipping the six
// White disks on B1..G1 back to Black (A1 anchors the run). Everything
// outside rank 1 is Black, so no other square can ever be a legal move.
func onlyH1EmptyPosition() position.Position {
	outsideRank1 := ^rank1Mask()
	black := outsideRank1 | SqA1.Bitboard()
	white := SqB1.Bitboard() | SqC1.Bitboard() | SqD1.Bitboard() |
		SqE1.Bitboard() | SqF1.Bitboard() | SqG1.Bitboard()
	return position.FromDisks(black, white, true)
}
