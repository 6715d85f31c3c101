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

type searchConfiguration struct {
	// TimeBudgetMs is the default per-move time budget for the iterative
	// deepening driver (I) when the caller doesn't override it.
	TimeBudgetMs int

	// MaxDepth caps iterative deepening regardless of remaining time.
	MaxDepth int

	// UseBestNodeSearch is decoded from the config file but not read; the
	// root driver switches to Best-Node Search (J) only through
	// search.Limits.UseBestNodeSearch.
	UseBestNodeSearch bool

	// TTSizeMB sizes the transposition table (G).
	TTSizeMB int

	// EndgameEmptiesThreshold is the empty-square count at or below which
	// the iterative deepening driver hands off to the endgame solver (K)
	// instead of continuing heuristic search. The solver itself further
	// splits into a WLD pass above endgame.ExactThreshold empties and an
	// exact pass at or below it.
	EndgameEmptiesThreshold int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.TimeBudgetMs = 5000
	Settings.Search.MaxDepth = 60
	Settings.Search.UseBestNodeSearch = false
	Settings.Search.TTSizeMB = 64
	Settings.Search.EndgameEmptiesThreshold = 24
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
}
