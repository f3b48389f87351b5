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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansel/gridea/internal/point"
	"github.com/jansel/gridea/internal/puzzle"
)

type recordingPublisher struct {
	mu        sync.Mutex
	calls     int
	lastScore int
	lastID    string
}

func (r *recordingPublisher) PublishBest(puzzleID string, score int, solution []point.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.lastScore = score
	r.lastID = puzzleID
}

func TestWorkerSolveDegeneratePuzzle(t *testing.T) {
	// A checkerboard has no valid point at all - the evolutionary loop is
	// skipped and the all-1x1 expansion published immediately.
	grid := [][]byte{{1, 0, 1}, {0, 1, 0}, {1, 0, 1}}
	p := puzzle.New("checkerboard", grid)

	pub := &recordingPublisher{}
	w := NewWorker(point.NewSeededPRNG(), pub)
	perm := w.Solve(p, Params{Limit: time.Millisecond, ShareFreq: time.Millisecond, PopSize: 10, SpawnCount: 2})

	assert.Len(t, perm, 5)
	require.Equal(t, 1, pub.calls)
	assert.Equal(t, 5, pub.lastScore)
	assert.Equal(t, "checkerboard", pub.lastID)
}

func TestWorkerSolveRunsGenerationsAndPublishes(t *testing.T) {
	p := puzzle.New("small", [][]byte{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}})
	pub := &recordingPublisher{}
	w := NewWorker(point.NewSeededPRNG(), pub)

	perm := w.Solve(p, Params{
		Limit:      30 * time.Millisecond,
		ShareFreq:  5 * time.Millisecond,
		PopSize:    20,
		SpawnCount: 10,
	})

	assert.NotEmpty(t, perm)
	assert.GreaterOrEqual(t, pub.calls, 1)
	assert.Equal(t, "small", pub.lastID)
	assert.GreaterOrEqual(t, pub.lastScore, 1)
}

func TestWorkerRejectsConcurrentSolve(t *testing.T) {
	p := allInterior(8, 8)
	pub := &recordingPublisher{}
	w := NewWorker(point.NewSeededPRNG(), pub)

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		w.Solve(p, Params{Limit: 50 * time.Millisecond, ShareFreq: 100 * time.Millisecond, PopSize: 20, SpawnCount: 10})
		close(done)
	}()
	<-started
	time.Sleep(2 * time.Millisecond)

	perm := w.Solve(p, Params{Limit: time.Millisecond, ShareFreq: time.Millisecond, PopSize: 20, SpawnCount: 10})
	assert.Nil(t, perm, "a second concurrent Solve call must be rejected")

	<-done
}

func TestWorkerRequestStop(t *testing.T) {
	p := allInterior(8, 8)
	pub := &recordingPublisher{}
	w := NewWorker(point.NewSeededPRNG(), pub)

	go func() {
		time.Sleep(5 * time.Millisecond)
		w.RequestStop()
	}()

	start := time.Now()
	w.Solve(p, Params{Limit: time.Hour, ShareFreq: time.Hour, PopSize: 20, SpawnCount: 10})
	assert.Less(t, time.Since(start), time.Second, "RequestStop should end the generational loop promptly")
}
