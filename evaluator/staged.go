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

package evaluator

import (
	"sort"
	"strconv"

	"github.com/go-reversi/engine/position"
)

// Staged picks a sub-evaluator by the current empty-square count. The
// mapping is monotone: one sub-evaluator per contiguous range of empty
// counts, covering 0..64 exhaustively.
type Staged struct {
	evaluators []Evaluator
	byEmpties  [SqLengthPlusOne]int
}

// SqLengthPlusOne is 65: the number of distinct empty-square counts a
// 64-square board can have (0..64 inclusive).
const SqLengthPlusOne = 65

// NewStaged builds a Staged evaluator from a sparse stage map (empties
// threshold -> index into evaluators) and the sub-evaluators themselves.
// Each listed threshold starts a new range that persists until the next
// listed threshold, in ascending order.
func NewStaged(stageMap map[string]int, evaluators []Evaluator) *Staged {
	type entry struct {
		empties int
		index   int
	}
	var entries []entry
	for k, v := range stageMap {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		entries = append(entries, entry{empties: n, index: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].empties < entries[j].empties })

	s := &Staged{evaluators: evaluators}
	current := 0
	if len(entries) > 0 {
		current = entries[0].index
	}
	ei := 0
	for n := 0; n < SqLengthPlusOne; n++ {
		for ei < len(entries) && entries[ei].empties <= n {
			current = entries[ei].index
			ei++
		}
		s.byEmpties[n] = current
	}
	return s
}

func (e *Staged) Score(p *position.Position) int {
	idx := e.byEmpties[p.EmptyCount()]
	return e.evaluators[idx].Score(p)
}
