package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareBitboard(t *testing.T) {
	assert.Equal(t, Bitboard(uint64(1)<<63), SqA1.Bitboard())
	assert.Equal(t, Bitboard(1), SqH8.Bitboard())
}

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqE5, SquareOf(FileE, Rank5))
	assert.Equal(t, SqNone, SquareOf(FileNone, Rank5))
	assert.Equal(t, SqNone, SquareOf(FileE, RankNone))
}

func TestFileRankOf(t *testing.T) {
	assert.Equal(t, FileD, SqD5.FileOf())
	assert.Equal(t, Rank5, SqD5.RankOf())
}

func TestMakeSquare(t *testing.T) {
	cases := []struct {
		in  string
		out Square
	}{
		{"e5", SqE5},
		{"a1", SqA1},
		{"h8", SqH8},
		{"", SqNone},
		{"a", SqNone},
		{"a9", SqNone},
		{"i1", SqNone},
		{"ab", SqNone},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, MakeSquare(c.in), "input %q", c.in)
	}
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e5", SqE5.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareStep(t *testing.T) {
	_, ok := SqA1.Step(West)
	assert.False(t, ok)
	_, ok = SqA1.Step(Southwest)
	assert.False(t, ok)
	_, ok = SqH8.Step(East)
	assert.False(t, ok)
	_, ok = SqA1.Step(South)
	assert.False(t, ok)
	_, ok = SqA8.Step(North)
	assert.False(t, ok)

	sq, ok := SqD5.Step(East)
	assert.True(t, ok)
	assert.Equal(t, SqE5, sq)

	sq, ok = SqD5.Step(North)
	assert.True(t, ok)
	assert.Equal(t, SqD6, sq)

	sq, ok = SqA1.Step(North)
	assert.True(t, ok)
	assert.Equal(t, SqA2, sq)
}
