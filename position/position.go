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

// Package position holds the board state for a game of Othello: two disk
// masks and whose turn it is, plus the apply/undo machinery the search
// walks the game tree with.
package position

import (
	"fmt"
	"strings"

	"github.com/go-reversi/engine/assert"
	. "github.com/go-reversi/engine/types"
)

// StartBlack and StartWhite are the disk masks of the standard Othello
// starting position (d5/e4 black, d4/e5 white), Black to move.
const (
	StartBlack Bitboard = 0x0000000810000000
	StartWhite Bitboard = 0x0000001008000000
)

// UndoToken is the opaque value Apply returns and Undo consumes to
// reverse exactly the move just applied. It is the set of squares that
// changed: the flipped disks plus the square played (zero for Pass) -
// always non-zero for a real Play.
type UndoToken Bitboard

// Position is two disk masks and whose turn it is. The legal-move
// bitmask for each side is cached lazily and invalidated on every
// mutation (Apply/Undo).
type Position struct {
	Black, White Bitboard
	BlackToMove  bool

	moveMaskCache [2]Bitboard
	moveMaskValid [2]bool
}

// New returns the standard Othello starting position, Black to move.
func New() Position {
	return FromDisks(StartBlack, StartWhite, true)
}

// FromDisks builds a Position directly from its two disk masks and side
// to move. The caller is responsible for black&white == 0.
func FromDisks(black, white Bitboard, blackToMove bool) Position {
	assert.Assert(black&white == 0, "position.FromDisks: black and white masks overlap")
	return Position{Black: black, White: white, BlackToMove: blackToMove}
}

func (p *Position) invalidateMoveCache() {
	p.moveMaskValid[0] = false
	p.moveMaskValid[1] = false
}

func colorIndex(blackToMove bool) int {
	if blackToMove {
		return 0
	}
	return 1
}

// legalMoves returns the bitmask of squares the side to move may legally
// play on, computed once per (position, side) pair and cached until the
// next Apply/Undo.
func (p *Position) legalMoves() Bitboard {
	idx := colorIndex(p.BlackToMove)
	if p.moveMaskValid[idx] {
		return p.moveMaskCache[idx]
	}
	var m Bitboard
	if p.BlackToMove {
		m = AllMoves(p.Black, p.White)
	} else {
		m = AllMoves(p.White, p.Black)
	}
	p.moveMaskCache[idx] = m
	p.moveMaskValid[idx] = true
	return m
}

// Apply commits m to the board. It does not validate that m is legal -
// callers are expected to obtain moves from GetMoves.
func (p *Position) Apply(m Move) UndoToken {
	if m.IsPass() {
		p.BlackToMove = !p.BlackToMove
		p.invalidateMoveCache()
		return UndoToken(BbZero)
	}

	sq := m.Square()
	sBB := sq.Bitboard()
	var mover, opp *Bitboard
	if p.BlackToMove {
		mover, opp = &p.Black, &p.White
	} else {
		mover, opp = &p.White, &p.Black
	}
	assert.Assert(*mover&sBB == 0 && *opp&sBB == 0, "position.Apply: %s is already occupied", sq)

	flood := Flip(sq, *mover, *opp)
	assert.Assert(flood != BbZero, "position.Apply: %s captures no disks", sq)

	delta := flood ^ sBB
	*mover ^= delta
	*opp ^= flood

	p.BlackToMove = !p.BlackToMove
	p.invalidateMoveCache()
	return UndoToken(delta)
}

// Undo reverses the effect of Apply(m), given the UndoToken Apply
// returned for that same call.
func (p *Position) Undo(token UndoToken, m Move) {
	if m.IsPass() {
		p.BlackToMove = !p.BlackToMove
		p.invalidateMoveCache()
		return
	}

	delta := Bitboard(token)
	p.Black ^= delta
	p.White ^= delta

	// The blanket XOR above restores whichever mask belonged to the
	// mover, but also sets a spurious {s} bit in the opponent's mask
	// (which only ever had `flood`, not `flood XOR {s}`, applied to it).
	// Before the side toggle below, BlackToMove still names the opponent
	// of the side that played m, which is the mask that picked up the
	// spurious bit.
	sBB := m.Square().Bitboard()
	if p.BlackToMove {
		p.Black &^= sBB
	} else {
		p.White &^= sBB
	}

	p.BlackToMove = !p.BlackToMove
	p.invalidateMoveCache()
}

// GetMoves returns the side to move's legal moves in ascending square
// order, or a single Pass if it has none but the opponent does. If
// neither side has a move the list is empty; callers check IsGameOver
// separately.
func (p *Position) GetMoves() MoveList {
	var ml MoveList
	moves := p.legalMoves()
	if moves == BbZero {
		opp := Position{Black: p.Black, White: p.White, BlackToMove: !p.BlackToMove}
		if opp.legalMoves() != BbZero {
			ml.Push(MovePass)
		}
		return ml
	}
	for moves != BbZero {
		ml.Push(NewMove(moves.PopMsb()))
	}
	return ml
}

// MoveCount returns the number of legal placements for the side to move
// (0 if it must pass).
func (p *Position) MoveCount() int {
	return p.legalMoves().PopCount()
}

// MovesExist reports whether the side to move has any legal placement.
func (p *Position) MovesExist() bool {
	return p.legalMoves() != BbZero
}

// MoveCountAfter returns the opponent's legal move count after m is
// applied, without mutating the receiver - used by fastest-first move
// ordering in the endgame solver.
func (p *Position) MoveCountAfter(m Move) int {
	scratch := *p
	scratch.Apply(m)
	return scratch.MoveCount()
}

// IsGameOver reports whether neither side has a legal move (equivalently,
// play has run out because the board is full or both sides are stuck).
func (p *Position) IsGameOver() bool {
	if p.Black == BbZero || p.White == BbZero {
		return true
	}
	if p.MovesExist() {
		return false
	}
	opp := Position{Black: p.Black, White: p.White, BlackToMove: !p.BlackToMove}
	return !opp.MovesExist()
}

// Score returns the black disk count minus the white disk count,
// independent of whose turn it is.
func (p *Position) Score() int {
	return p.Black.PopCount() - p.White.PopCount()
}

// EmptyCount returns the number of unoccupied squares.
func (p *Position) EmptyCount() int {
	return SqLength - (p.Black | p.White).PopCount()
}

// Key is the 128-bit transposition table lookup key for a Position: the
// mover's disk mask and the opponent's, in that order. Keying by
// mover/opponent rather than by Black/White folds the side to move into
// the key itself, matching the mover-relative scores the search stores.
type Key struct {
	Mover, Opponent uint64
}

// Key returns p's transposition table key.
func (p *Position) Key() Key {
	if p.BlackToMove {
		return Key{Mover: uint64(p.Black), Opponent: uint64(p.White)}
	}
	return Key{Mover: uint64(p.White), Opponent: uint64(p.Black)}
}

func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringBoard())
	os.WriteString(fmt.Sprintf("Side to move : %s\n", colorString(p.BlackToMove)))
	os.WriteString(fmt.Sprintf("Black disks  : %d\n", p.Black.PopCount()))
	os.WriteString(fmt.Sprintf("White disks  : %d\n", p.White.PopCount()))
	return os.String()
}

func colorString(blackToMove bool) string {
	if blackToMove {
		return "Black"
	}
	return "White"
}

// StringBoard renders an 8x8 board with 'B'/'W' disks, rank 8 on top.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			switch {
			case p.Black&sq.Bitboard() != 0:
				os.WriteString("| B ")
			case p.White&sq.Bitboard() != 0:
				os.WriteString("| W ")
			default:
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
