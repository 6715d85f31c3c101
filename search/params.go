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

package search

// This file holds tuned constants for the search, kept apart from the
// driver logic they parametrize so they can be tuned independently.

const (
	// DefaultMinDepth is the iterative deepening driver's starting depth
	// when the caller doesn't request one.
	DefaultMinDepth = 8

	// TtProbeMinDepth is the depth above which the driver probes and
	// stores into the transposition table; at or below it the bookkeeping
	// overhead outweighs the savings.
	TtProbeMinDepth = 3

	// DeepOrderingMinDepth is the depth above which move ordering uses a
	// shallow re-search instead of the evaluator's static
	// move_order_score.
	DeepOrderingMinDepth = 4

	// BnsInitialWindow is the half-width of the seed (alpha, beta) window
	// Best-Node Search opens around its shallow static evaluation.
	BnsInitialWindow = 20
)

// NextDepth returns the next iterative-deepening depth after depth. The
// driver always advances by two plies so odd/even parity stays stable
// across iterations.
func NextDepth(depth int8) int8 {
	return depth + 2
}

// shallowOrderingDepth returns the parity-matched shallow search depth
// used to reorder moves ahead of a full search at depth: half of depth,
// rounded down and adjusted so its parity matches depth's.
func shallowOrderingDepth(depth int8) int8 {
	d := depth / 2
	if d < 1 {
		d = 1
	}
	if (d % 2) != (depth % 2) {
		d++
	}
	return d
}
