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
	"strings"
)

// Move is either Pass or a placement on one of the 64 squares. A Move
// that places a disk is just the Square itself (0..63); MovePass (64) is
// the single sentinel value for "no legal placement this turn".
type Move uint8

const MovePass Move = Move(SqNone)

// NewMove returns the Move that places a disk on sq.
func NewMove(sq Square) Move {
	return Move(sq)
}

// IsPass reports whether m is the pass move.
func (m Move) IsPass() bool {
	return m == MovePass
}

// Square returns the square m places a disk on. Undefined for Pass.
func (m Move) Square() Square {
	return Square(m)
}

func (m Move) String() string {
	if m.IsPass() {
		return "PASS"
	}
	return m.Square().String()
}

// MoveFromCoord parses a coordinate string into a Move, returning
// MovePass for "pass"/"PASS" and for anything that doesn't name a square
// on the board (empty string, wrong length, out of range file/rank).
func MoveFromCoord(s string) Move {
	if strings.EqualFold(s, "pass") {
		return MovePass
	}
	sq := MakeSquare(s)
	if sq == SqNone {
		return MovePass
	}
	return NewMove(sq)
}

// MoveList is a fixed-capacity, heap-allocation-free list of moves. It
// never grows past MaxMoves entries - Push on a full list is a
// programmer error (an AssertionViolation), not a runtime condition to
// recover from, since no reachable Othello position offers more than
// MaxMoves legal placements.
type MoveList struct {
	moves [MaxMoves]Move
	len   int
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int { return ml.len }

// IsEmpty reports whether the list holds zero moves.
func (ml *MoveList) IsEmpty() bool { return ml.len == 0 }

// Push appends m to the list. Panics if the list is already at capacity.
func (ml *MoveList) Push(m Move) {
	if ml.len >= MaxMoves {
		panic("MoveList: Push() called on a full list")
	}
	ml.moves[ml.len] = m
	ml.len++
}

// At returns the move at index i without bounds checking.
func (ml *MoveList) At(i int) Move { return ml.moves[i] }

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) { ml.moves[i] = m }

// Clear empties the list, keeping its backing array.
func (ml *MoveList) Clear() { ml.len = 0 }

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.len; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// SortByKey orders the list from highest key to lowest, using insertion
// sort since move lists are small (at most MaxMoves entries) and often
// already close to sorted after the first search iteration.
func (ml *MoveList) SortByKey(key func(Move) int) {
	for i := 1; i < ml.len; i++ {
		tmp := ml.moves[i]
		tmpKey := key(tmp)
		j := i
		for j > 0 && key(ml.moves[j-1]) < tmpKey {
			ml.moves[j] = ml.moves[j-1]
			j--
		}
		ml.moves[j] = tmp
	}
}

func (ml *MoveList) String() string {
	var os strings.Builder
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", ml.len))
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(ml.moves[i].String())
	}
	os.WriteString(" }")
	return os.String()
}
