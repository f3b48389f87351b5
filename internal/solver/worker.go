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

package solver

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	myLogging "github.com/jansel/gridea/internal/logging"
	"github.com/jansel/gridea/internal/point"
	"github.com/jansel/gridea/internal/puzzle"
	"github.com/jansel/gridea/internal/scratch"
	"github.com/jansel/gridea/internal/util"
)

// BestPublisher is the callback a Worker uses to publish its best-so-far
// solution to the gossip layer. Defined here rather than depending on
// package gossip directly, since gossip needs solver's Population to
// dispatch a solve and Go does not allow circular imports - the gossip
// package implements this interface instead.
type BestPublisher interface {
	PublishBest(puzzleID string, score int, solution []point.Point)
}

// Params bundles the solver parameters a Worker needs for one puzzle.
type Params struct {
	Limit      time.Duration
	ShareFreq  time.Duration
	PopSize    int
	SpawnCount int
}

// Worker runs the generational loop for a single puzzle at a time; a
// second Solve call while one is already running is rejected.
type Worker struct {
	log       *logging.Logger
	isRunning *semaphore.Weighted
	stopFlag  *util.Bool

	prng      *point.PRNG
	publisher BestPublisher
}

// NewWorker constructs a Worker that publishes through pub and draws
// randomness from prng, which the Worker owns exclusively for its lifetime.
func NewWorker(prng *point.PRNG, pub BestPublisher) *Worker {
	return &Worker{
		log:       myLogging.GetSolverLog(),
		isRunning: semaphore.NewWeighted(int64(1)),
		stopFlag:  util.NewBool(false),
		prng:      prng,
		publisher: pub,
	}
}

// RequestStop asks a running Solve to exit at the next generation boundary.
// It does not block; call Wait (via StartSolve's semaphore) if you need to
// know when the solve has actually finished.
func (w *Worker) RequestStop() {
	w.stopFlag.Store(true)
}

// Solve runs the generational loop for p until the time limit elapses,
// publishing the current best every ShareFreq. It returns the final best
// permutation found.
//
// If the puzzle has no valid point (no 2x2 region exists anywhere), the
// evolutionary loop is skipped entirely and the all-1x1 expansion is
// published immediately.
func (w *Worker) Solve(p *puzzle.Puzzle, params Params) []point.Point {
	if !w.isRunning.TryAcquire(1) {
		w.log.Error("solve already running for this worker")
		return nil
	}
	defer w.isRunning.Release(1)

	w.stopFlag.Store(false)
	w.log.Infof("solving puzzle %s (%dx%d, sum=%d)", p.ID, p.Height, p.Width, p.Sum)

	maxSize := MaxSizeMap(p)
	g := scratch.NewGrid(p.Height, p.Width)

	if len(maxSize) == 0 {
		g.CopyFrom(p.Flat())
		solution := ExpandSolution(p, g, nil)
		perm := squaresToPoints(solution)
		w.publisher.PublishBest(p.ID, len(solution), perm)
		return perm
	}

	pop := InitPopulation(p, maxSize, params.PopSize, params.SpawnCount)
	pop.ScoreAll(p, g, 0, pop.Rows())
	// population, scratch and max-size map are the whole per-puzzle
	// footprint from here on
	w.log.Debug(util.MemStat())

	start := time.Now()
	tStop := start.Add(params.Limit)
	tShare := start.Add(params.ShareFreq)

	for time.Now().Before(tStop) && !w.stopFlag.Load() {
		pop.DividePopulation(params.PopSize)
		Spawn(pop, params.PopSize, params.SpawnCount, p.Height, p.Width, w.prng)
		pop.ScoreAll(p, g, params.PopSize, params.PopSize+params.SpawnCount)

		if !time.Now().Before(tShare) {
			w.publishBestOf(p, pop)
			tShare = tShare.Add(params.ShareFreq)
		}
	}

	best := w.publishBestOf(p, pop)
	// good point in time to let the garbage collector do its work - the
	// population becomes garbage once the caller drops the result
	w.log.Debug(util.GcWithStats())
	return best
}

// publishBestOf finds the minimum-score row across the whole population
// and hands it to the publisher, returning that row's permutation.
func (w *Worker) publishBestOf(p *puzzle.Puzzle, pop *Population) []point.Point {
	row := pop.MinScoreRow()
	perm := pop.Permutation(row)
	score := int(pop.Score(row))
	w.publisher.PublishBest(p.ID, score, perm)
	return perm
}

func squaresToPoints(squares []puzzle.Square) []point.Point {
	out := make([]point.Point, len(squares))
	for i, sq := range squares {
		out[i] = point.Pack(sq.Y, sq.X)
	}
	return out
}
