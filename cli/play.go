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
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-reversi/engine/config"
	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
	"github.com/go-reversi/engine/search"
	. "github.com/go-reversi/engine/types"
)

// undoEntry is one applied move's reversal data, kept on a stack so
// `undo` can pop back through a whole play session.
type undoEntry struct {
	token position.UndoToken
	move  Move
}

// Game is a play REPL session: a mutable Position plus the undo history
// and search engine backing the `play`/`undo`/`go`/`gt` commands.
type Game struct {
	pos     position.Position
	history []undoEntry
	search  *search.Search
}

// NewGame starts a Game at the standard Othello starting position,
// searching with eval.
func NewGame(eval evaluator.Evaluator) *Game {
	return &Game{
		pos:    position.New(),
		search: search.NewSearch(eval, config.Settings.Search.TTSizeMB),
	}
}

// Loop reads commands from in, one per line, writing responses to the
// package-level out printer until `exit` or EOF, mirroring the teacher's
// UCI REPL shape (bufio.Scanner, whitespace-split, dispatch on the first
// token) adapted to this engine's own command vocabulary.
func (g *Game) Loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	out.Println(g.pos.StringBoard())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "exit", "quit":
			return
		case "play":
			g.cmdPlay(fields[1:])
		case "undo":
			g.cmdUndo()
		case "go":
			g.cmdGo(fields[1:])
		case "gt":
			g.cmdGt(fields[1:])
		default:
			out.Printf("unrecognized command: %s\n", fields[0])
		}
	}
}

func (g *Game) cmdPlay(args []string) {
	if len(args) != 1 {
		out.Println("usage: play <coord>")
		return
	}
	m := MoveFromCoord(args[0])
	if !g.pos.GetMoves().Contains(m) {
		out.Printf("illegal move: %s\n", args[0])
		return
	}
	token := g.pos.Apply(m)
	g.history = append(g.history, undoEntry{token: token, move: m})
	out.Println(g.pos.StringBoard())
}

func (g *Game) cmdUndo() {
	if len(g.history) == 0 {
		out.Println("nothing to undo")
		return
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.pos.Undo(last.token, last.move)
	out.Println(g.pos.StringBoard())
}

func (g *Game) cmdGo(args []string) {
	limits := search.NewLimits()
	limits.MaxDepth, limits.UseBestNodeSearch = parseSearchArgs(args)
	g.runAndPlay(limits)
}

func (g *Game) cmdGt(args []string) {
	limits := search.NewLimits()
	millis, useBns := parseSearchArgs(args)
	limits.TimeBudget = time.Duration(millis) * time.Millisecond
	limits.UseBestNodeSearch = useBns
	g.runAndPlay(limits)
}

// parseSearchArgs parses the shared `[n] [nm|bns]` tail both `go` and
// `gt` accept: an optional leading integer (depth for `go`, milliseconds
// for `gt`) and an optional trailing root-driver selector.
func parseSearchArgs(args []string) (n int, useBns bool) {
	for _, a := range args {
		switch a {
		case "nm":
			useBns = false
		case "bns":
			useBns = true
		default:
			if v, err := strconv.Atoi(a); err == nil {
				n = v
			}
		}
	}
	return n, useBns
}

func (g *Game) runAndPlay(limits search.Limits) {
	result := g.search.Run(g.pos, limits)
	out.Println(result.String())
	if result.BestMove.IsPass() && !g.pos.GetMoves().Contains(MovePass) {
		out.Println("no legal move to play")
		return
	}
	token := g.pos.Apply(result.BestMove)
	g.history = append(g.history, undoEntry{token: token, move: result.BestMove})
	out.Println(g.pos.StringBoard())
}
