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
	"encoding/json"
	"fmt"
	"os"
)

// PatternFile is the on-disk shape of a Pattern evaluator: one base mask
// and weight table per entry, plus its two parity biases.
type PatternFile struct {
	Masks   []uint64    `json:"masks"`
	Weights [][]float32 `json:"weights"`
	ParityE float32     `json:"parity_e"`
	ParityO float32     `json:"parity_o"`
}

// StagedFile is the on-disk shape of a Staged evaluator: a sparse
// empties-count -> evaluator-index map plus the Pattern evaluators it
// indexes into.
type StagedFile struct {
	StageMap   map[string]int `json:"stage_map"`
	Evaluators []PatternFile  `json:"evaluators"`
}

// ToPattern builds a live Pattern evaluator from its on-disk form.
func (pf PatternFile) ToPattern() *Pattern {
	return NewPattern(pf.Masks, pf.Weights, pf.ParityE, pf.ParityO)
}

// ToFile exports e's base masks and weight tables back into the on-disk
// PatternFile shape, the inverse of ToPattern. Used to persist a trained
// Pattern's weights after a self-play run.
func (e *Pattern) ToFile() PatternFile {
	masks := make([]uint64, len(e.families))
	weights := make([][]float32, len(e.families))
	for i, fam := range e.families {
		masks[i] = uint64(fam.masks[0])
		weights[i] = fam.weights
	}
	return PatternFile{Masks: masks, Weights: weights, ParityE: e.parityEven, ParityO: e.parityOdd}
}

// SaveTrainedPattern writes e out to path in PatternFile form.
func SaveTrainedPattern(path string, e *Pattern) error {
	pf := e.ToFile()
	return SavePattern(path, pf.Masks, pf.Weights, pf.ParityE, pf.ParityO)
}

// LoadPattern reads a PatternFile from path and builds a Pattern.
func LoadPattern(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evaluator: opening pattern file %s: %w", path, err)
	}
	defer f.Close()

	var pf PatternFile
	if err := json.NewDecoder(f).Decode(&pf); err != nil {
		return nil, fmt.Errorf("evaluator: decoding pattern file %s: %w", path, err)
	}
	return pf.ToPattern(), nil
}

// SavePattern writes the given base masks, weight tables and parity
// biases out in PatternFile form. To save a live *Pattern, use
// SaveTrainedPattern, which recovers the base masks through ToFile.
func SavePattern(path string, masks []uint64, weights [][]float32, parityE, parityO float32) error {
	pf := PatternFile{Masks: masks, Weights: weights, ParityE: parityE, ParityO: parityO}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("evaluator: creating pattern file %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pf); err != nil {
		return fmt.Errorf("evaluator: encoding pattern file %s: %w", path, err)
	}
	return nil
}

// LoadStaged reads a StagedFile from path and builds a Staged evaluator.
func LoadStaged(path string) (*Staged, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evaluator: opening staged file %s: %w", path, err)
	}
	defer f.Close()

	var sf StagedFile
	if err := json.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("evaluator: decoding staged file %s: %w", path, err)
	}
	if len(sf.Evaluators) == 0 {
		return nil, fmt.Errorf("evaluator: staged file %s lists no evaluators", path)
	}

	evaluators := make([]Evaluator, len(sf.Evaluators))
	for i, pf := range sf.Evaluators {
		evaluators[i] = pf.ToPattern()
	}
	return NewStaged(sf.StageMap, evaluators), nil
}
