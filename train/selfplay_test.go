package train

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// cornerPattern builds a small single-family Pattern evaluator over the
// four corner squares, enough to exercise Update/FloatScore end to end
// without the cost of the full production mask set.
func cornerPattern() *evaluator.Pattern {
	mask := uint64(SqA1.Bitboard() | SqA8.Bitboard() | SqH1.Bitboard() | SqH8.Bitboard())
	weights := [][]float32{make([]float32, 81)} // 3^4
	return evaluator.NewPattern([]uint64{mask}, weights, 0, 0)
}

func TestTerminalScoreBlackRelative(t *testing.T) {
	p := position.FromDisks(BbAll&^SqA1.Bitboard(), SqA1.Bitboard(), true)
	assert.Equal(t, float64(62), terminalScore(&p))
}

func TestTerminalScoreFlipsForWhiteToMove(t *testing.T) {
	p := position.FromDisks(BbAll&^SqA1.Bitboard(), SqA1.Bitboard(), false)
	assert.Equal(t, float64(-62), terminalScore(&p))
}

func TestPlayPlyGameOverReturnsTerminalScoreAndZeroPlies(t *testing.T) {
	eval := cornerPattern()
	p := position.FromDisks(BbAll&^SqA1.Bitboard(), SqA1.Bitboard(), true)
	rng := rand.New(rand.NewSource(1))

	score, plies, lossSum := playPly(eval, &p, 0.1, 0.01, 0.25, rng)
	assert.Equal(t, float64(62), score)
	assert.Equal(t, 0, plies)
	assert.Equal(t, float64(0), lossSum)
}

func TestPlayPlyOnAFullRandomGameTerminatesAndTrainsTheEvaluator(t *testing.T) {
	eval := cornerPattern()
	p := position.New()
	before := eval.FloatScore(&p)
	rng := rand.New(rand.NewSource(7))

	score, plies, lossSum := playPly(eval, &p, 1.0, 0.1, 0.25, rng)

	assert.Greater(t, plies, 0)
	assert.GreaterOrEqual(t, score, -64.0)
	assert.LessOrEqual(t, score, 64.0)
	assert.GreaterOrEqual(t, lossSum, 0.0, "summed squared error can never be negative")
	assert.Equal(t, position.StartBlack, p.Black, "playPly must leave the position exactly as it found it")
	assert.Equal(t, position.StartWhite, p.White)
	assert.True(t, p.BlackToMove)
	assert.NotEqual(t, before, eval.FloatScore(&p),
		"self-play must have trained the evaluator's opening-position weight")
}
