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

// Package search implements the Negamax/PVS core, an iterative
// deepening driver, and a Best-Node Search root alternative, all backed
// by a shared transposition table. The core is single-threaded and
// synchronous: a Search call blocks until its time budget or depth cap
// is reached, checking the clock only between iterations - there is no
// mid-iteration cancellation.
package search

import (
	"math"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-reversi/engine/config"
	"github.com/go-reversi/engine/endgame"
	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/logging"
	"github.com/go-reversi/engine/position"
	"github.com/go-reversi/engine/transpositiontable"
	. "github.com/go-reversi/engine/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetSearchLog()

// Search bundles the state one search needs: the evaluator it scores
// positions with and the transposition table it shares across calls.
// Not safe for concurrent use - isRunning guards against accidental
// reentrancy, it does not enable concurrent searches.
type Search struct {
	eval      evaluator.Evaluator
	tt        *transpositiontable.TtTable
	isRunning *semaphore.Weighted
	stats     Statistics
}

// NewSearch creates a Search using eval for static scoring and a
// transposition table sized ttSizeMB megabytes.
func NewSearch(eval evaluator.Evaluator, ttSizeMB int) *Search {
	return &Search{
		eval:      eval,
		tt:        transpositiontable.NewTtTable(ttSizeMB),
		isRunning: semaphore.NewWeighted(1),
	}
}

// Stats returns a copy of the statistics accumulated since the last Run.
func (s *Search) Stats() Statistics {
	return s.stats
}

// Run searches p under the given limits and returns the best move found.
// It blocks until the iterative deepening driver decides to stop; there
// is no separate StopSearch, matching the synchronous core the rest of
// the engine assumes.
func (s *Search) Run(p position.Position, limits Limits) Result {
	if !s.isRunning.TryAcquire(1) {
		panic("search: Run called while a search is already in progress")
	}
	defer s.isRunning.Release(1)

	s.stats = Statistics{}
	budget := limits.TimeBudget
	if budget == 0 {
		budget = time.Duration(config.Settings.Search.TimeBudgetMs) * time.Millisecond
	}
	maxDepth := limits.MaxDepth
	if maxDepth == 0 {
		maxDepth = config.Settings.Search.MaxDepth
	}

	if empties := p.EmptyCount(); empties <= config.Settings.Search.EndgameEmptiesThreshold {
		if result, ok := s.runEndgame(&p, empties); ok {
			log.Info(out.Sprintf("Search finished: %s", result.String()))
			return result
		}
	}

	start := time.Now()
	depth := int8(DefaultMinDepth)
	var result Result

	for {
		iterStart := time.Now()
		nodesBefore := s.stats.NodesVisited

		var bestMove Move
		var bestValue Value
		if limits.UseBestNodeSearch {
			bestMove, bestValue = s.bestNodeSearch(&p, depth)
		} else {
			bestMove, bestValue = s.rootSearch(&p, depth)
		}

		elapsed := time.Since(start)
		iterNodes := s.stats.NodesVisited - nodesBefore
		iterElapsed := time.Since(iterStart)

		result = Result{
			BestMove:    bestMove,
			BestValue:   bestValue,
			SearchTime:  elapsed,
			SearchDepth: int(depth),
			Nodes:       s.stats.NodesVisited,
		}

		s.tt.SetReplace()

		if int(depth) >= maxDepth {
			log.Debugf("Search stopping: reached max depth %d", maxDepth)
			break
		}

		branchingFactor := 1.0
		if iterNodes > 1 {
			branchingFactor = math.Pow(float64(iterNodes), 1.0/float64(depth))
		}
		predictedNext := iterElapsed.Seconds() * (branchingFactor*branchingFactor + 1)
		if time.Duration((predictedNext+elapsed.Seconds())*float64(time.Second)) > budget {
			log.Debugf("Search stopping: predicted next iteration would exceed budget of %d ms", budget.Milliseconds())
			break
		}

		depth = NextDepth(depth)
	}

	log.Info(out.Sprintf("Search finished: %s", result.String()))
	return result
}

// runEndgame hands off to the exhaustive endgame solver once few enough
// empty squares remain for it to be affordable. At or below endgame.ExactThreshold
// empties its result is authoritative. In the wider WLD band above it, a
// non-losing result is trusted directly; a loss is reported as not-ok so
// the caller falls back to the heuristic midgame searcher, since WLD alone
// cannot tell how bad a loss a different move might avoid.
func (s *Search) runEndgame(p *position.Position, empties int) (Result, bool) {
	start := time.Now()

	if empties <= endgame.ExactThreshold {
		res := endgame.SolveExact(p)
		s.stats.NodesVisited += res.Nodes
		return Result{
			BestMove:    res.Move,
			BestValue:   res.Score,
			SearchTime:  time.Since(start),
			SearchDepth: empties,
			Nodes:       s.stats.NodesVisited,
		}, true
	}

	res := endgame.SolveWLD(p)
	s.stats.NodesVisited += res.Nodes
	if res.Score < 0 {
		return Result{}, false
	}
	return Result{
		BestMove:    res.Move,
		BestValue:   res.Score,
		SearchTime:  time.Since(start),
		SearchDepth: empties,
		Nodes:       s.stats.NodesVisited,
	}, true
}
