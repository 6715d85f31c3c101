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

// Package transpositiontable implements a fixed-size, directly-indexed
// cache of search results keyed by position. The TtTable type is not
// thread safe and needs to be synchronized externally if used from
// multiple goroutines; this is especially relevant for Resize and Clear,
// which must not be called concurrently with Probe/Save.
package transpositiontable

import (
	"math"
	"sync"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-reversi/engine/logging"
	"github.com/go-reversi/engine/position"
	. "github.com/go-reversi/engine/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog("tt")

// Entry is one slot of the table. An Entry with Tag == TypeNone is
// unoccupied.
type Entry struct {
	Mover, Opponent uint64    // the position.Key this entry was stored for
	Score           Value     // stored score, meaning depends on Tag
	Depth           int8      // search depth the score was computed at
	Tag             ValueType // None, Exact, Lower or Upper
	Replace         bool      // set by SetReplace after each completed iteration
}

const (
	// EntrySize is the assumed size in bytes of one Entry, used only to
	// size the table from a MB budget.
	EntrySize = 32

	// MaxSizeInMB is the maximal memory usage of a table.
	MaxSizeInMB = 65_536

	// MB is one megabyte in bytes.
	MB = 1024 * 1024
)

// TtTable is a fixed-size transposition table: a vector of Entry indexed
// by Key modulo the table's capacity (a power of two, so the modulo is a
// bit-mask). Collisions silently overwrite per Save's replacement rule;
// the full 128-bit key is stored and checked on Probe, so a collision
// can only produce a miss, never an incorrect hit.
type TtTable struct {
	data               []Entry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistical data on tt usage.
type TtStats struct {
	numberOfSaves  uint64
	numberOfProbes uint64
	numberOfHits   uint64
	numberOfMisses uint64
}

// NewTtTable creates a new TtTable with sizeInMByte as a maximum of
// memory usage. Actual size is determined by the number of entries
// fitting into that budget, rounded down to a power of two so indexing
// can use a bit-mask instead of a division.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the table, discarding all entries.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Error(out.Sprintf("Requested TT size of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/EntrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.sizeInByte = tt.maxNumberOfEntries * EntrySize

	tt.data = make([]Entry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	log.Info(out.Sprintf("TT size %d MByte, capacity %d entries of %d bytes (requested %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}), sizeInMByte))
}

// Clear discards all entries without resizing the table.
func (tt *TtTable) Clear() {
	tt.data = make([]Entry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Probe looks up key at the given search depth and window. It returns a
// usable score and true if the stored entry's depth is at least depth
// and its bound actually resolves the (alpha, beta) window: Exact always
// resolves it, Lower resolves it when the stored score is >= beta, Upper
// when the stored score is <= alpha. Otherwise it returns (0, false).
func (tt *TtTable) Probe(key position.Key, depth int8, alpha, beta Value) (Value, bool) {
	tt.Stats.numberOfProbes++
	if tt.maxNumberOfEntries == 0 {
		tt.Stats.numberOfMisses++
		return 0, false
	}

	e := &tt.data[tt.hash(key)]
	if e.Tag == TypeNone || e.Mover != key.Mover || e.Opponent != key.Opponent || e.Depth < depth {
		tt.Stats.numberOfMisses++
		return 0, false
	}

	switch e.Tag {
	case TypeExact:
		tt.Stats.numberOfHits++
		return e.Score, true
	case TypeLower:
		if e.Score >= beta {
			tt.Stats.numberOfHits++
			return e.Score, true
		}
	case TypeUpper:
		if e.Score <= alpha {
			tt.Stats.numberOfHits++
			return e.Score, true
		}
	}
	tt.Stats.numberOfMisses++
	return 0, false
}

// Peek returns the raw stored score for key regardless of depth or
// bound tag, for move-ordering hints between iterative deepening
// iterations rather than for a provably-correct cutoff.
func (tt *TtTable) Peek(key position.Key) (Value, bool) {
	if tt.maxNumberOfEntries == 0 {
		return 0, false
	}
	e := &tt.data[tt.hash(key)]
	if e.Tag == TypeNone || e.Mover != key.Mover || e.Opponent != key.Opponent {
		return 0, false
	}
	return e.Score, true
}

// Save writes an entry for key. It writes unconditionally except when
// the occupied slot holds a strictly greater depth AND is not marked
// replaceable, in which case the existing, more valuable entry is kept.
func (tt *TtTable) Save(key position.Key, score Value, depth int8, tag ValueType) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.numberOfSaves++

	e := &tt.data[tt.hash(key)]
	if e.Tag != TypeNone && e.Depth > depth && !e.Replace {
		return
	}
	if e.Tag == TypeNone {
		tt.numberOfEntries++
	}
	e.Mover = key.Mover
	e.Opponent = key.Opponent
	e.Score = score
	e.Depth = depth
	e.Tag = tag
	e.Replace = false
}

// SetReplace marks every occupied entry as replaceable. The search
// driver calls this once after each completed iterative-deepening
// iteration so the next, deeper iteration's saves are free to evict
// entries left over from the previous one.
func (tt *TtTable) SetReplace() {
	if tt.numberOfEntries == 0 {
		return
	}
	const goroutines = 32
	var wg sync.WaitGroup
	slice := tt.maxNumberOfEntries / goroutines
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			start := uint64(i) * slice
			end := start + slice
			if i == goroutines-1 {
				end = tt.maxNumberOfEntries
			}
			for n := start; n < end; n++ {
				if tt.data[n].Tag != TypeNone {
					tt.data[n].Replace = true
				}
			}
		}(i)
	}
	wg.Wait()
}

// Hashfull returns how full the table is, in permill.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of occupied entries.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB capacity %d entries of %d bytes, occupied %d (%d permill), "+
		"saves %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}), tt.numberOfEntries, tt.Hashfull(),
		tt.Stats.numberOfSaves, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

func (tt *TtTable) hash(key position.Key) uint64 {
	return (key.Mover ^ (key.Opponent * 0x9E3779B97F4A7C15)) & tt.hashKeyMask
}
