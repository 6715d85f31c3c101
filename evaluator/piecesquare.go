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
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

// classGrid lays out the ten piece-square classes as printed (symmetric
// under both horizontal and vertical mirroring, so orientation doesn't
// matter): corners (0) outward through the board's center (9).
//
//	0 1 2 3 3 2 1 0
//	1 4 5 6 6 5 4 1
//	2 5 7 8 8 7 5 2
//	3 6 8 9 9 8 6 3
//	3 6 8 9 9 8 6 3
//	2 5 7 8 8 7 5 2
//	1 4 5 6 6 5 4 1
//	0 1 2 3 3 2 1 0
var classGrid = [8][8]int{
	{0, 1, 2, 3, 3, 2, 1, 0},
	{1, 4, 5, 6, 6, 5, 4, 1},
	{2, 5, 7, 8, 8, 7, 5, 2},
	{3, 6, 8, 9, 9, 8, 6, 3},
	{3, 6, 8, 9, 9, 8, 6, 3},
	{2, 5, 7, 8, 8, 7, 5, 2},
	{1, 4, 5, 6, 6, 5, 4, 1},
	{0, 1, 2, 3, 3, 2, 1, 0},
}

// classMasks is the bitmask of squares in each of the ten classes,
// precomputed once from classGrid.
var classMasks [10]Bitboard

func init() {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := SquareOf(File(f), Rank(r))
			classMasks[classGrid[r][f]] |= sq.Bitboard()
		}
	}
}

// PieceSquare scores a position as a weighted sum of (black count -
// white count) per square class, negated when white is to move. With
// all ten weights equal to 1 this reduces exactly to the disk
// differential from the mover's perspective.
type PieceSquare struct {
	Weights [10]float32
}

// NewPieceSquare returns a PieceSquare evaluator with all class weights
// set to 1 - the "just count disks" baseline.
func NewPieceSquare() *PieceSquare {
	ps := &PieceSquare{}
	for i := range ps.Weights {
		ps.Weights[i] = 1
	}
	return ps
}

func (e *PieceSquare) Score(p *position.Position) int {
	var total float32
	for c := 0; c < 10; c++ {
		mask := classMasks[c]
		diff := (p.Black & mask).PopCount() - (p.White & mask).PopCount()
		total += e.Weights[c] * float32(diff)
	}
	if !p.BlackToMove {
		total = -total
	}
	return int(total)
}
