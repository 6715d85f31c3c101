package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

func TestCmdPlayAppliesALegalMoveAndRecordsUndoHistory(t *testing.T) {
	g := NewGame(evaluator.NewPieceSquare())
	g.cmdPlay([]string{"d3"})

	assert.Len(t, g.history, 1)
	assert.Equal(t, MoveFromCoord("d3"), g.history[0].move)
	assert.NotEqual(t, position.StartBlack, g.pos.Black)
}

func TestCmdPlayRejectsAnIllegalMove(t *testing.T) {
	g := NewGame(evaluator.NewPieceSquare())
	g.cmdPlay([]string{"a1"})

	assert.Empty(t, g.history)
	assert.Equal(t, position.StartBlack, g.pos.Black)
}

func TestCmdUndoRestoresThePriorPosition(t *testing.T) {
	g := NewGame(evaluator.NewPieceSquare())
	g.cmdPlay([]string{"d3"})
	g.cmdUndo()

	assert.Empty(t, g.history)
	assert.Equal(t, position.StartBlack, g.pos.Black)
	assert.Equal(t, position.StartWhite, g.pos.White)
}

func TestCmdUndoOnEmptyHistoryIsANoOp(t *testing.T) {
	g := NewGame(evaluator.NewPieceSquare())
	g.cmdUndo()
	assert.Empty(t, g.history)
}

func TestParseSearchArgsReadsDepthAndRootDriverSelector(t *testing.T) {
	n, useBns := parseSearchArgs([]string{"6", "bns"})
	assert.Equal(t, 6, n)
	assert.True(t, useBns)

	n, useBns = parseSearchArgs([]string{"4", "nm"})
	assert.Equal(t, 4, n)
	assert.False(t, useBns)
}

func TestLoopExitsOnExitCommand(t *testing.T) {
	g := NewGame(evaluator.NewPieceSquare())
	g.Loop(strings.NewReader("play d3\nundo\nexit\nplay f5\n"))

	assert.Empty(t, g.history, "exit must stop processing before the trailing play command")
}
