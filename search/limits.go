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

import "time"

// Limits controls how long and how deep a single Search call may run.
// There is no time-control increment/moves-to-go bookkeeping here: unlike
// a clock-based game, a single Othello move budget is just a duration.
type Limits struct {
	// TimeBudget bounds the iterative deepening driver's wall-clock
	// spend. Zero means "use config.Settings.Search.TimeBudgetMs".
	TimeBudget time.Duration

	// MaxDepth caps the deepest iteration regardless of remaining time.
	// Zero means "use config.Settings.Search.MaxDepth".
	MaxDepth int

	// UseBestNodeSearch switches the root driver from plain iterative
	// PVS to Best-Node Search.
	UseBestNodeSearch bool
}

// NewLimits returns a zero-value Limits; Search fills in configured
// defaults for any field left at zero.
func NewLimits() Limits {
	return Limits{}
}
