package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftRoundTrip(t *testing.T) {
	b := SqD5.Bitboard()
	assert.Equal(t, SqD6.Bitboard(), Shift(b, North))
	assert.Equal(t, SqD4.Bitboard(), Shift(b, South))
	assert.Equal(t, SqC5.Bitboard(), Shift(b, West))
	assert.Equal(t, SqE5.Bitboard(), Shift(b, East))
	assert.Equal(t, SqC6.Bitboard(), Shift(b, Northwest))
	assert.Equal(t, SqE6.Bitboard(), Shift(b, Northeast))
	assert.Equal(t, SqC4.Bitboard(), Shift(b, Southwest))
	assert.Equal(t, SqE4.Bitboard(), Shift(b, Southeast))
}

func TestPopCountAndMsbLsb(t *testing.T) {
	b := SqA1.Bitboard() | SqH8.Bitboard() | SqD5.Bitboard()
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, SqA1, b.Msb())
	assert.Equal(t, SqH8, b.Lsb())
}

func TestPopMsbAscendingOrder(t *testing.T) {
	b := SqE6.Bitboard() | SqD3.Bitboard() | SqF5.Bitboard() | SqC4.Bitboard()
	var got []Square
	for b != BbZero {
		got = append(got, b.PopMsb())
	}
	assert.Equal(t, []Square{SqD3, SqC4, SqF5, SqE6}, got)
}

func TestStartPositionDecode(t *testing.T) {
	black := Bitboard(0x0000000810000000)
	white := Bitboard(0x0000001008000000)

	var blackSquares, whiteSquares []Square
	for b := black; b != BbZero; {
		blackSquares = append(blackSquares, b.PopMsb())
	}
	for w := white; w != BbZero; {
		whiteSquares = append(whiteSquares, w.PopMsb())
	}
	assert.ElementsMatch(t, []Square{SqD5, SqE4}, blackSquares)
	assert.ElementsMatch(t, []Square{SqD4, SqE5}, whiteSquares)
}

func TestAllMovesStartPosition(t *testing.T) {
	black := Bitboard(0x0000000810000000)
	white := Bitboard(0x0000001008000000)
	moves := AllMoves(black, white)
	assert.Equal(t, 0, int(moves&(black|white)))

	var got []Square
	m := moves
	for m != BbZero {
		got = append(got, m.PopMsb())
	}
	assert.ElementsMatch(t, []Square{SqD3, SqC4, SqF5, SqE6}, got)
}

func TestFlipStartPosition(t *testing.T) {
	black := Bitboard(0x0000000810000000)
	white := Bitboard(0x0000001008000000)
	flips := Flip(SqD3, black, white)
	assert.Equal(t, SqD4.Bitboard(), flips)
	assert.Equal(t, Bitboard(0), flips&^white)
}

func TestFlipVerticalAndDiagonal(t *testing.T) {
	b := SqA1.Bitboard()
	assert.Equal(t, SqA8.Bitboard(), FlipVertical(b))
	assert.Equal(t, SqA1.Bitboard(), FlipDiagonal(b))

	c := SqD5.Bitboard()
	assert.Equal(t, SqE4.Bitboard(), FlipDiagonal(c))
}
