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

// RunSelfPlay implements the `self-play <games> <lr> <ε>` command, whose
// input and output files come from the -input and -output flags rather
// than from positional arguments: trains a Pattern evaluator loaded from input for
// games rounds at the given learning rate and exploration rate, then
// writes the result to output. There is no path to a freshly-initialized
// evaluator here - building one needs a base mask set, which (as in the
// original self-play driver this is grounded on) is a detail of whatever
// produced input in the first place, not something this command invents.
func RunSelfPlay(games int, lr, epsilon float64, input, output string) error {
	if input == "" {
		return fmt.Errorf("cli: self-play requires an input pattern file to train from")
	}

	pat, err := evaluator.LoadPattern(input)
	if err != nil {
		return err
	}

	trainer := train.NewTrainer(pat, nil)
	trainer.OverrideHyperparameters(lr, epsilon)
	trainer.Run(games)

	trained, ok := trainer.Evaluator().(*evaluator.Pattern)
	if !ok {
		return fmt.Errorf("cli: self-play: trained evaluator is not a *evaluator.Pattern")
	}
	if err := evaluator.SaveTrainedPattern(output, trained); err != nil {
		return err
	}
	out.Printf("%s\n", fmt.Sprintf("trained %d rounds, wrote %s", games, output))
	return nil
}
