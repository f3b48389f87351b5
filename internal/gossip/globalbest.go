//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package gossip

import (
	"sync"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/jansel/gridea/internal/logging"
)

// GlobalBest is the process-wide best-known solution for the puzzle
// currently being solved. It is constructed once at process startup, reset
// on each new puzzle, and mutated only through Update and Reset.
type GlobalBest struct {
	mu sync.Mutex

	puzzleID  string
	hasScore  bool
	score     int
	solution  []uint32
	timestamp time.Time

	log *logging.Logger
}

// NewGlobalBest constructs an empty register.
func NewGlobalBest() *GlobalBest {
	return &GlobalBest{log: myLogging.GetGossipLog()}
}

// Reset clears the register for a new puzzle.
func (g *GlobalBest) Reset(puzzleID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.puzzleID = puzzleID
	g.hasScore = false
	g.score = 0
	g.solution = nil
	g.timestamp = time.Now()
}

// Update replaces the stored best if score strictly improves on the current
// one for the same puzzle_id. Equal scores do not replace - this is the
// dedup rule that stops broadcast storms. Returns true iff the register
// was replaced.
func (g *GlobalBest) Update(puzzleID string, score int, solution []uint32) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if puzzleID != g.puzzleID {
		g.log.Warningf("discarding result for stale puzzle %s (current %s)", puzzleID, g.puzzleID)
		return false
	}
	if g.hasScore && score >= g.score {
		return false
	}
	g.hasScore = true
	g.score = score
	g.solution = solution
	g.timestamp = time.Now()
	return true
}

// Snapshot returns the current puzzle id, score, solution and timestamp
// under the lock.
func (g *GlobalBest) Snapshot() (puzzleID string, score int, hasScore bool, solution []uint32, timestamp time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.puzzleID, g.score, g.hasScore, g.solution, g.timestamp
}
