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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard holds one bit per square, a1 at bit 63 down to h8 at bit 0.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	// NotFileA/NotFileH exclude the named file - used to stop a horizontal
	// or diagonal Shift from wrapping around the board edge.
	NotFileA Bitboard = ^Bitboard(0x8080808080808080)
	NotFileH Bitboard = ^Bitboard(0x0101010101010101)
)

// Shift moves every set bit of b by d squares. Because a1 is bit 63, a
// positive Direction shifts the Bitboard right and a negative one shifts
// it left. Callers are responsible for masking b with d's boundary before
// calling Shift if d can wrap a file edge (see Directions).
func Shift(b Bitboard, d Direction) Bitboard {
	if d > 0 {
		return b >> uint(d)
	}
	return b << uint(-d)
}

// DirectionalMoves computes, for a single direction, the set of empty
// squares the mover could legally place a disk on by sliding over one or
// more opponent disks along that ray. oppMasked must already have the
// direction's boundary mask applied. This is the Kogge-Stone parallel
// prefix formulation: each doubling step extends the candidate run by
// twice as many squares as the last, so an arbitrarily long run of
// opponent disks resolves in three steps regardless of its length.
func DirectionalMoves(mover, oppMasked Bitboard, d Direction) Bitboard {
	m2 := oppMasked & Shift(oppMasked, d)
	m4 := m2 & Shift(m2, 2*d)
	f := mover
	f |= oppMasked & Shift(f, d)
	f |= m2 & Shift(f, 2*d)
	f |= m4 & Shift(f, 4*d)
	return Shift(f&oppMasked, d)
}

// AllMoves returns the bitboard of squares the side to move (mover) may
// legally place a disk on against opp, unioning DirectionalMoves over all
// eight directions and clearing any square already occupied.
func AllMoves(mover, opp Bitboard) Bitboard {
	var moves Bitboard
	for _, dir := range Directions {
		moves |= DirectionalMoves(mover, opp&dir.Border, dir.Dir)
	}
	return moves &^ (mover | opp)
}

// Flip returns the bitboard of opponent disks that a disk placed on sq
// would capture, scanning each of the eight rays outward from sq until it
// either runs off the board, hits an empty square (no capture on that
// ray) or hits a mover disk (the ray's run of opponent disks is flipped).
func Flip(sq Square, mover, opp Bitboard) Bitboard {
	var flips Bitboard
	for _, dir := range Directions {
		var ray Bitboard
		cur := sq
		for {
			next, ok := cur.Step(dir.Dir)
			if !ok {
				ray = 0
				break
			}
			nb := next.Bitboard()
			if opp&nb != 0 {
				ray |= nb
				cur = next
				continue
			}
			if mover&nb != 0 {
				break
			}
			ray = 0
			break
		}
		flips |= ray
	}
	return flips
}

// Lsb returns the square of the least significant set bit (bit 0, h8).
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit (bit 63, a1).
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.LeadingZeros64(uint64(b)))
}

// PopMsb returns the Msb square and clears it from the receiver. Scanning
// a mask with repeated PopMsb calls visits squares in ascending square
// number, which is the order the position package enumerates moves in.
func (b *Bitboard) PopMsb() Square {
	sq := b.Msb()
	if sq == SqNone {
		return SqNone
	}
	*b &^= sq.Bitboard()
	return sq
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// FlipVertical mirrors ranks (rank r becomes rank 7-r, file unchanged).
// Since each rank occupies one whole byte of the 64-bit word under this
// engine's square numbering, mirroring ranks is exactly reversing the
// byte order.
func FlipVertical(b Bitboard) Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// FlipDiagonal transposes the board across the a1-h8 diagonal, swapping
// each square's file and rank. Used together with FlipVertical to build
// the four 90-degree rotations a pattern mask is evaluated at.
func FlipDiagonal(b Bitboard) Bitboard {
	var out Bitboard
	for i := 0; i < 64; i++ {
		sq := Square(i)
		if b&sq.Bitboard() == 0 {
			continue
		}
		f, r := int(sq.FileOf()), int(sq.RankOf())
		out |= SquareOf(File(r), Rank(f)).Bitboard()
	}
	return out
}

// Str returns the 64 bits of the Bitboard as a binary string.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard renders the Bitboard as an 8x8 board, rank 8 on top.
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b&SquareOf(f, r).Bitboard() != 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}
