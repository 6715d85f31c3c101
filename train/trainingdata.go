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

package train

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	"github.com/go-reversi/engine/search"
)

// TrainingPosition is one labeled example for offline training: a
// position plus, optionally, a search-derived score. Score is nil when
// the position was dumped unscored (depth 0 at generation time) - a
// later pass can fill it in.
type TrainingPosition struct {
	BlackDisks uint64 `json:"black_disks"`
	WhiteDisks uint64 `json:"white_disks"`
	BlackMove  bool   `json:"black_move"`
	Score      *int   `json:"score"`
}

// GeneratePositions plays uniformly-random games from the start
// position and records one TrainingPosition every time a game passes
// through exactly `empties` empty squares, until count positions have
// been collected. When depth > 0 each recorded position is scored by a
// fixed-depth search using eval; otherwise Score is left nil.
func GeneratePositions(empties, count, depth int, eval evaluator.Evaluator, rng *rand.Rand) []TrainingPosition {
	positions := make([]TrainingPosition, 0, count)

	var searcher *search.Search
	if depth > 0 {
		searcher = search.NewSearch(eval, 16)
	}

	for len(positions) < count {
		p := position.New()
		for !p.IsGameOver() {
			if p.EmptyCount() == empties {
				positions = append(positions, scorePosition(&p, searcher, depth))
				if len(positions) >= count {
					break
				}
			}
			moves := p.GetMoves()
			m := moves.At(rng.Intn(moves.Len()))
			p.Apply(m)
		}
	}

	return positions
}

func scorePosition(p *position.Position, searcher *search.Search, depth int) TrainingPosition {
	tp := TrainingPosition{
		BlackDisks: uint64(p.Black),
		WhiteDisks: uint64(p.White),
		BlackMove:  p.BlackToMove,
	}
	if searcher != nil {
		result := searcher.Run(*p, search.Limits{MaxDepth: depth})
		score := int(result.BestValue)
		tp.Score = &score
	}
	return tp
}

// SaveTrainingData writes positions to path as a JSON array.
func SaveTrainingData(path string, positions []TrainingPosition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("train: creating training data file %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(positions); err != nil {
		return fmt.Errorf("train: encoding training data file %s: %w", path, err)
	}
	return nil
}

// LoadTrainingData reads a JSON array of TrainingPosition from path.
func LoadTrainingData(path string) ([]TrainingPosition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("train: opening training data file %s: %w", path, err)
	}
	defer f.Close()

	var positions []TrainingPosition
	if err := json.NewDecoder(f).Decode(&positions); err != nil {
		return nil, fmt.Errorf("train: decoding training data file %s: %w", path, err)
	}
	return positions, nil
}

// NewSeededRand returns a *rand.Rand seeded from the current time; the
// gen-training-data command passes one to GeneratePositions.
func NewSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
