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

import (
	"time"

	. "github.com/go-reversi/engine/types"
)

// Result stores one Search call's outcome. If BestMove is not MovePass
// (or the position had no other legal move) all other fields are valid.
type Result struct {
	BestMove    Move
	BestValue   Value
	SearchTime  time.Duration
	SearchDepth int
	Nodes       int64
}

func (r *Result) String() string {
	return out.Sprintf("bestmove = %s, value = %s, depth = %d, nodes = %d, time = %d ms, nps = %d",
		r.BestMove.String(), r.BestValue.String(), r.SearchDepth, r.Nodes, r.SearchTime.Milliseconds(),
		(r.Nodes*time.Second.Nanoseconds())/(1+r.SearchTime.Nanoseconds()))
}
