package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-reversi/engine/position"
)

type constEvaluator int

func (c constEvaluator) Score(p *position.Position) int { return int(c) }

func TestNewStagedMonotoneRanges(t *testing.T) {
	stageMap := map[string]int{
		"0":  0,
		"20": 1,
		"40": 2,
	}
	evaluators := []Evaluator{constEvaluator(10), constEvaluator(20), constEvaluator(30)}
	s := NewStaged(stageMap, evaluators)

	assert.Equal(t, 0, s.byEmpties[0])
	assert.Equal(t, 0, s.byEmpties[19])
	assert.Equal(t, 1, s.byEmpties[20])
	assert.Equal(t, 1, s.byEmpties[39])
	assert.Equal(t, 2, s.byEmpties[40])
	assert.Equal(t, 2, s.byEmpties[64])
}

func TestStagedScoreDelegates(t *testing.T) {
	stageMap := map[string]int{"0": 0, "10": 1}
	evaluators := []Evaluator{constEvaluator(7), constEvaluator(99)}
	s := NewStaged(stageMap, evaluators)

	pos := position.New() // 60 empties
	assert.Equal(t, 99, s.Score(&pos))
}
