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

package evaluator

import (
	"math/bits"

	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// pext emulates the x86 PEXT instruction (parallel bits extract): the
// bits of value selected by mask are packed into the low bits of the
// result, in mask order from LSB to MSB. Go has no native PEXT, so this
// walks mask one set bit at a time - fine here since it only runs inside
// pattern-family construction and evaluation, not a per-bit hot loop
// shared with move generation.
func pext(value, mask uint64) uint64 {
	var result uint64
	var out uint
	for mask != 0 {
		bit := mask & (-mask)
		if value&bit != 0 {
			result |= 1 << out
		}
		mask &^= bit
		out++
	}
	return result
}

// ternaryIndex encodes the black/white pext results of a single base
// mask as one base-3 digit per selected square: 0 = empty, 1 = white,
// 2 = black. A (black,white) = (1,1) digit never occurs since the two
// disk masks are always disjoint.
func ternaryIndex(pb, pw uint64, bitCount int) int {
	idx := 0
	pow := 1
	for i := 0; i < bitCount; i++ {
		digit := int((pw>>uint(i))&1) + 2*int((pb>>uint(i))&1)
		idx += digit * pow
		pow *= 3
	}
	return idx
}

// patternFamily is one base mask expanded into its four 90-degree
// rotations, precomputed at construction time so Score does one pass
// per base mask with no rotation work in the hot loop.
type patternFamily struct {
	masks   [4]Bitboard
	weights []float32 // length 3^popcount(mask)
}

func rotateMask(b Bitboard) Bitboard {
	return FlipDiagonal(FlipVertical(b))
}

func newPatternFamily(mask Bitboard, weights []float32) patternFamily {
	pf := patternFamily{weights: weights}
	m := mask
	for i := 0; i < 4; i++ {
		pf.masks[i] = m
		m = rotateMask(m)
	}
	return pf
}

// score sums weights[idx] over the family's four orientations, using
// the position's black/white masks unrotated each time - summing over a
// mask family that is itself closed under rotation makes the total
// invariant to rotating the position, without needing the weight table
// to track which rotation produced which mask.
func (pf patternFamily) score(black, white Bitboard) float32 {
	bitCount := bits.OnesCount64(uint64(pf.masks[0]))
	var total float32
	for _, m := range pf.masks {
		pb := pext(uint64(black), uint64(m))
		pw := pext(uint64(white), uint64(m))
		idx := ternaryIndex(pb, pw, bitCount)
		total += pf.weights[idx]
	}
	return total
}

// Pattern scores a position by summing weighted pattern-table lookups
// over a set of base masks (each expanded to its 4 rotations) plus a
// parity bias depending on whether the number of empty squares is odd
// or even.
type Pattern struct {
	families   []patternFamily
	parityEven float32
	parityOdd  float32
}

// NewPattern builds a Pattern evaluator from base masks and their weight
// tables (weights[i] has length 3^popcount(masks[i])) plus the two
// parity biases.
func NewPattern(masks []uint64, weights [][]float32, parityEven, parityOdd float32) *Pattern {
	p := &Pattern{parityEven: parityEven, parityOdd: parityOdd}
	for i, m := range masks {
		p.families = append(p.families, newPatternFamily(Bitboard(m), weights[i]))
	}
	return p
}

// floatScore is the mover-relative, unscaled sum of pattern-table
// lookups plus parity bias - the quantity trained directly against a
// TD target in pattern_train.go. Score scales and truncates it.
func (e *Pattern) floatScore(p *position.Position) float32 {
	var total float32
	for _, fam := range e.families {
		total += fam.score(p.Black, p.White)
	}
	if p.EmptyCount()%2 == 0 {
		total += e.parityEven
	} else {
		total += e.parityOdd
	}
	if !p.BlackToMove {
		total = -total
	}
	return total
}

func (e *Pattern) Score(p *position.Position) int {
	return int(e.floatScore(p) * 100)
}
