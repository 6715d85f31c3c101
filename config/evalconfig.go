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

package config

type evalConfiguration struct {
	// UsePatternEval, PatternFile, UseStagedEval and StagedFile are decoded
	// from the config file, but no package reads them: the evaluator is
	// chosen by the -eval flag of cmd/othello-engine.
	UsePatternEval bool
	PatternFile    string

	UseStagedEval bool
	StagedFile    string

	// PieceSquare is always available as a fallback and needs no weight
	// file. PieceSquareWeights is decoded but not read: NewPieceSquare
	// always sets all ten class weights to 1.
	PieceSquareWeights [10]float32
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Eval.UsePatternEval = false
	Settings.Eval.PatternFile = "eval/patterns.json"

	Settings.Eval.UseStagedEval = false
	Settings.Eval.StagedFile = "eval/staged.json"

	for i := range Settings.Eval.PieceSquareWeights {
		Settings.Eval.PieceSquareWeights[i] = 1
	}
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupEval() {
}
