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

package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-reversi/engine/config"
	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	"github.com/go-reversi/engine/search"
	. "github.com/go-reversi/engine/types"
)

// cs2lMoveTimeMs allocates this move's time budget out of the remaining
// ms_left a cs2l line reports, giving each move a larger share of what is
// left as the board fills (2.5/40 of it on the opening board, 2.5/3 once
// 41 or more disks are down): ceil(2.5 / max(3, 44-disks) * msLeft).
func cs2lMoveTimeMs(disksOnBoard, msLeft int) int {
	divisor := 44 - disksOnBoard
	if divisor < 3 {
		divisor = 3
	}
	return int(math.Ceil(2.5 / float64(divisor) * float64(msLeft)))
}

// RunCS2L drives a game over the cs2l line protocol: each input line is
// "x y ms_left" (x,y = -1,-1 for a pass; for Black, the very first line's
// -1,-1 instead means "you move first"), and every reply line is the
// move just played in the same x y form.
func RunCS2L(colorArg string, eval evaluator.Evaluator, in io.Reader, w io.Writer) error {
	playingBlack := strings.EqualFold(colorArg, "black")
	p := position.New()
	s := search.NewSearch(eval, config.Settings.Search.TTSizeMB)

	scanner := bufio.NewScanner(in)
	firstLine := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		x, y, msLeft, err := parseCS2LLine(line)
		if err != nil {
			return fmt.Errorf("cli: parsing cs2l line %q: %w", line, err)
		}

		openingMove := firstLine && playingBlack
		firstLine = false

		if x == -1 && y == -1 && !openingMove {
			// Opponent passed; reflect it in our own position so whose
			// turn it is stays in sync, without playing a move of ours.
			if p.GetMoves().Contains(MovePass) {
				p.Apply(MovePass)
			}
		} else if x != -1 || y != -1 {
			m := NewMove(SquareOf(File(x), Rank(y)))
			p.Apply(m)
		}

		if p.IsGameOver() {
			return nil
		}

		disks := p.Black.PopCount() + p.White.PopCount()
		budget := cs2lMoveTimeMs(disks, msLeft)
		result := s.Run(p, search.Limits{TimeBudget: time.Duration(budget) * time.Millisecond})
		p.Apply(result.BestMove)

		if _, err := fmt.Fprintln(w, moveToCS2L(result.BestMove)); err != nil {
			return fmt.Errorf("cli: writing cs2l reply: %w", err)
		}
	}
	return scanner.Err()
}

func parseCS2LLine(line string) (x, y, msLeft int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	if x, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, err
	}
	if y, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, err
	}
	if msLeft, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, 0, err
	}
	return x, y, msLeft, nil
}

func moveToCS2L(m Move) string {
	if m.IsPass() {
		return "-1 -1"
	}
	sq := m.Square()
	return fmt.Sprintf("%d %d", int(sq.FileOf()), int(sq.RankOf()))
}
