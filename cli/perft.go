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

// Package cli wires the library API of the engine's core packages
// (position, search, endgame, train) to the handful of command-line
// drivers a user or test harness actually talks to: perft, an
// interactive play REPL, the cs2l line protocol, and the two training
// data commands. None of this is reachable from the core - the core
// never imports cli.
package cli

import (
	"time"

	"github.com/go-reversi/engine/logging"
	"github.com/go-reversi/engine/position"
	"github.com/go-reversi/engine/util"
)

var out = logging.Out

// RunPerft runs leaf-count perft on p from depth 1 up to maxDepth
// inclusive, printing one line per depth: nodes visited, elapsed
// milliseconds, and thousands of nodes per second.
func RunPerft(p position.Position, maxDepth int) {
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		nodes := perft(&p, depth)
		elapsed := time.Since(start)
		out.Printf("Perft depth %d: nodes=%d time=%d ms knps=%d\n",
			depth, nodes, elapsed.Milliseconds(), util.Nps(nodes, elapsed)/1000)
	}
}

// perft counts the leaves of the game tree rooted at p, depth plies
// deep. A Pass still counts as a ply; a game-over position contributes
// exactly one leaf regardless of remaining depth.
func perft(p *position.Position, depth int) int64 {
	if depth == 0 || p.IsGameOver() {
		return 1
	}

	moves := p.GetMoves()
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		token := p.Apply(m)
		nodes += perft(p, depth-1)
		p.Undo(token, m)
	}
	return nodes
}
