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

// Direction is one of the eight ray directions a disk can flip along,
// expressed as the delta applied to a Square (e.g. North is rank+1, so
// sq+8). Because a1 sits at bit 63 of a Bitboard and a square's bit is
// (1<<63)>>sq, the very same delta also shifts a Bitboard correctly via
// Shift: Shift(b, d) composes with Bitboard() exactly as
// (sq+d).Bitboard() == Shift(sq.Bitboard(), d).
type Direction int

const (
	North     Direction = 8
	South     Direction = -8
	West      Direction = -1
	East      Direction = 1
	Northwest Direction = 7
	Northeast Direction = 9
	Southwest Direction = -9
	Southeast Direction = -7
)

// Directions lists all eight ray directions together with the boundary
// mask applied to the opponent's disks before a directional fill.
// North/South never wrap across a file (only ranks, which fall off the
// 64-bit word on their own), so their boundary mask is the identity.
// Every other direction masks out both file A and file H, so a run of
// opponent disks can neither start from a mover disk that wrapped across
// one edge nor continue off one edge onto the other.
var Directions = [8]struct {
	Dir    Direction
	Border Bitboard
}{
	{North, BbAll},
	{South, BbAll},
	{West, NotFileA & NotFileH},
	{East, NotFileA & NotFileH},
	{Northwest, NotFileA & NotFileH},
	{Northeast, NotFileA & NotFileH},
	{Southwest, NotFileA & NotFileH},
	{Southeast, NotFileA & NotFileH},
}
