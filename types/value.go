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

package types

import "strconv"

// Value is a signed search/evaluation score. Final positions score in
// disks (-64..64); evaluators may scale internally but return an int-ish
// Value so the search's comparisons stay exact integer arithmetic.
type Value int32

const (
	ValueZero Value = 0

	// ValueInfinite bounds the alpha-beta window on the outside; no real
	// evaluation or disk differential can reach it.
	ValueInfinite Value = 1 << 20

	// ValueNA marks a search result that was aborted before a real score
	// was produced (e.g. a stopped iteration).
	ValueNA Value = -(1 << 21)
)

// IsValid reports whether v looks like a real, non-aborted score.
func (v Value) IsValid() bool {
	return v > ValueNA
}

func (v Value) String() string {
	if v == ValueNA {
		return "N/A"
	}
	return strconv.Itoa(int(v))
}
