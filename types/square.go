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

// Square identifies one of the 64 board squares, numbered a1=0 .. h8=63
// in the usual file-major reading order. Its corresponding bitboard bit,
// however, is (1<<63)>>i - a1 sits at bit 63 (the MSB) and h8 at bit 0,
// the mirror image of the ordinary a1=bit0 bitboard convention. Keep this
// in mind when reading Shift/Direction arithmetic in bitboard.go.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// File is a column, a=0 .. h=7.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

func (f File) IsValid() bool { return f < FileNone }

func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + f))
}

// Rank is a row, rank 1 = 0 .. rank 8 = 7.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

func (r Rank) IsValid() bool { return r < RankNone }

func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('1' + r))
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// SquareOf builds a Square from a file and rank, or SqNone if either is
// out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)*8 + int(f))
}

// Bitboard returns the single-bit Bitboard for sq: (1<<63)>>sq.
func (sq Square) Bitboard() Bitboard {
	return Bitboard(uint64(1)<<63) >> uint(sq)
}

// Step returns the square reached by moving one step in direction d from
// sq, and false if that step would leave the board.
func (sq Square) Step(d Direction) (Square, bool) {
	f := sq.FileOf()
	switch d {
	case West, Northwest, Southwest:
		if f == FileA {
			return SqNone, false
		}
	case East, Northeast, Southeast:
		if f == FileH {
			return SqNone, false
		}
	}
	n := int(sq) + int(d)
	if n < 0 || n >= SqLength {
		return SqNone, false
	}
	return Square(n), true
}

// MakeSquare parses a coordinate such as "e5" into a Square, or returns
// SqNone if s is not exactly two characters or names an out-of-range file
// or rank.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns the square's coordinate ("e5"), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
