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

// ValueType tags what relationship a stored Value has to the true score
// of a search: the search window may have cut the true score off before
// it was fully resolved.
type ValueType uint8

const (
	// TypeNone marks an unoccupied transposition table slot.
	TypeNone ValueType = iota

	// TypeExact means Value is the position's true minimax score.
	TypeExact

	// TypeLower means the true score is >= Value (a beta cutoff occurred;
	// the search never proved a tighter bound).
	TypeLower

	// TypeUpper means the true score is <= Value (every move failed low
	// against alpha).
	TypeUpper
)

func (t ValueType) String() string {
	switch t {
	case TypeExact:
		return "Exact"
	case TypeLower:
		return "Lower"
	case TypeUpper:
		return "Upper"
	default:
		return "None"
	}
}
