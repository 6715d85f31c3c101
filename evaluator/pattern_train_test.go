package evaluator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

func newSingleSquarePattern() *Pattern {
	mask := uint64(SqA1.Bitboard())
	weights := [][]float32{make([]float32, 3)} // 3^1
	return NewPattern([]uint64{mask}, weights, 0, 0)
}

func TestPatternUpdateReportsSquaredError(t *testing.T) {
	pat := newSingleSquarePattern()
	p := position.FromDisks(SqA1.Bitboard(), 0, true)

	before := float64(pat.floatScore(&p))
	target := before + 1.5
	loss := pat.Update(&p, target, 0.1)

	wantError := before - target
	assert.InDelta(t, wantError*wantError, loss, 1e-9)
}

func TestPatternUpdateMovesScoreTowardTarget(t *testing.T) {
	pat := newSingleSquarePattern()
	p := position.FromDisks(SqA1.Bitboard(), 0, true)

	before := float64(pat.floatScore(&p))
	target := before + 10
	pat.Update(&p, target, 0.1)
	after := float64(pat.floatScore(&p))

	assert.Less(t, math.Abs(after-target), math.Abs(before-target),
		"one gradient step must move the score closer to the target")
}

func TestPatternUpdateParityBiasMovesTowardTarget(t *testing.T) {
	weights := [][]float32{make([]float32, 1)} // popcount(mask)=0 -> 3^0=1
	pat := NewPattern([]uint64{0}, weights, 5, -5)
	p := position.FromDisks(BbAll&^SqA1.Bitboard(), SqA1.Bitboard(), true) // 0 empties, even

	before := float64(pat.floatScore(&p))
	pat.Update(&p, before+2, 0.5)
	after := float64(pat.floatScore(&p))

	assert.Greater(t, after, before)
}

func TestPatternUpdateMovesScoreTowardTargetWhenWhiteToMove(t *testing.T) {
	pat := newSingleSquarePattern()
	p := position.FromDisks(SqA1.Bitboard(), 0, false)

	before := float64(pat.floatScore(&p))
	target := before + 10
	pat.Update(&p, target, 0.1)
	after := float64(pat.floatScore(&p))

	assert.Less(t, math.Abs(after-target), math.Abs(before-target),
		"one gradient step must move the mover-relative score closer to the target regardless of side to move")
}

func TestStagedUpdateDelegatesToTrainableStage(t *testing.T) {
	pat := newSingleSquarePattern()
	staged := NewStaged(map[string]int{"0": 0}, []Evaluator{pat})
	p := position.FromDisks(SqA1.Bitboard(), 0, true)

	before := pat.families[0].weights[2]
	staged.Update(&p, float64(pat.floatScore(&p))+10, 0.1)
	assert.NotEqual(t, before, pat.families[0].weights[2])
}

type nonTrainableEvaluator struct{}

func (nonTrainableEvaluator) Score(p *position.Position) int { return 0 }

func TestStagedUpdateNoOpForNonTrainableStage(t *testing.T) {
	staged := NewStaged(map[string]int{"0": 0}, []Evaluator{nonTrainableEvaluator{}})
	p := position.FromDisks(SqA1.Bitboard(), 0, true)

	loss := staged.Update(&p, 1.0, 0.1)
	assert.Equal(t, float64(0), loss)
}

func TestPatternFloatScoreMatchesScaledScore(t *testing.T) {
	pat := newSingleSquarePattern()
	p := position.FromDisks(SqA1.Bitboard(), 0, true)
	pat.Update(&p, float64(pat.floatScore(&p))+10, 0.1)

	assert.InDelta(t, float64(pat.Score(&p))/100, pat.FloatScore(&p), 1e-4)
}

func TestStagedFloatScoreDelegatesToTrainableStage(t *testing.T) {
	pat := newSingleSquarePattern()
	staged := NewStaged(map[string]int{"0": 0}, []Evaluator{pat})
	p := position.FromDisks(SqA1.Bitboard(), 0, true)

	assert.Equal(t, pat.FloatScore(&p), staged.FloatScore(&p))
}

func TestStagedFloatScoreFallsBackForNonTrainableStage(t *testing.T) {
	staged := NewStaged(map[string]int{"0": 0}, []Evaluator{nonTrainableEvaluator{}})
	p := position.FromDisks(SqA1.Bitboard(), 0, true)

	assert.Equal(t, float64(0), staged.FloatScore(&p))
}
