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

package cli

import (
	"fmt"

	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/train"
)

// RunGenTrainingData implements the `gen-training-data <empties> <count>
// <file> [depth]` command: dumps count randomly-reached positions with
// exactly `empties` empty squares to file as JSON, scored at `depth` if
// given (0 leaves them unscored).
func RunGenTrainingData(empties, count, depth int, file string, eval evaluator.Evaluator) error {
	positions := train.GeneratePositions(empties, count, depth, eval, train.NewSeededRand())
	if err := train.SaveTrainingData(file, positions); err != nil {
		return err
	}
	out.Printf("%s\n", fmt.Sprintf("wrote %d positions to %s", len(positions), file))
	return nil
}
