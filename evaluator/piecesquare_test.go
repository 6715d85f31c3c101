package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

func TestClassMasksPartitionBoard(t *testing.T) {
	var union uint64
	var seen int
	for _, m := range classMasks {
		seen += m.PopCount()
		union |= uint64(m)
	}
	assert.Equal(t, 64, seen)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), union)
}

func TestPieceSquareAllOnesIsDiskDifferentialBlackToMove(t *testing.T) {
	e := NewPieceSquare()
	pos := position.New()
	assert.Equal(t, pos.Score(), e.Score(&pos))
}

func TestPieceSquareNegatedForWhiteToMove(t *testing.T) {
	e := NewPieceSquare()
	pos := position.FromDisks(position.StartBlack, position.StartWhite, false)
	assert.Equal(t, -(pos.Score()), e.Score(&pos))
}

func TestPieceSquareZeroOnEmptyBoard(t *testing.T) {
	e := NewPieceSquare()
	pos := position.FromDisks(BbZero, BbZero, true)
	assert.Equal(t, 0, e.Score(&pos))
}
