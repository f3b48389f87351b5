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
	"math"

	"github.com/jansel/gridea/internal/point"
	"github.com/jansel/gridea/internal/puzzle"
	"github.com/jansel/gridea/internal/scratch"
)

// Population is the pop_size+spawn_count matrix: each row is
// L+1 words, word 0 the cached score, words 1..L the permutation. It is
// allocated once per puzzle and reused across every generation - no row is
// ever reallocated once NewPopulation returns.
type Population struct {
	rows [][]uint32
	l    int
}

// NewPopulation allocates a matrix of n rows of length l+1.
func NewPopulation(n, l int) *Population {
	rows := make([][]uint32, n)
	for i := range rows {
		rows[i] = make([]uint32, l+1)
	}
	return &Population{rows: rows, l: l}
}

// Rows returns the number of rows in the matrix.
func (p *Population) Rows() int {
	return len(p.rows)
}

// L returns the permutation length (word count per row minus the score word).
func (p *Population) L() int {
	return p.l
}

// Score returns the cached score (word 0) of row.
func (p *Population) Score(row int) uint32 {
	return p.rows[row][0]
}

// SetScore writes the cached score of row.
func (p *Population) SetScore(row int, score uint32) {
	p.rows[row][0] = score
}

// Permutation returns a freshly allocated copy of row's permutation as
// []point.Point. Used by ScoreAll, which runs once per row per generation;
// the spawn operators use PermutationWords instead to avoid allocating once
// per spawned row.
func (p *Population) Permutation(row int) []point.Point {
	words := p.rows[row][1:]
	out := make([]point.Point, len(words))
	for i, w := range words {
		out[i] = point.Point(w)
	}
	return out
}

// PermutationWords returns row's permutation as the raw uint32 words backing
// the population matrix - no copy. The spawn operators read and write
// points one at a time through this slice.
func (p *Population) PermutationWords(row int) []uint32 {
	return p.rows[row][1:]
}

// SetPermutation overwrites row's permutation (not its score).
func (p *Population) SetPermutation(row int, perm []point.Point) {
	dst := p.rows[row][1:]
	for i, pt := range perm {
		dst[i] = uint32(pt)
	}
}

// CopyRow copies the entire row src (score and permutation) into dst.
func (p *Population) CopyRow(src, dst int) {
	copy(p.rows[dst], p.rows[src])
}

// swapRows exchanges two entire rows - the quickselect partition moves
// rows wholesale, never single words.
func (p *Population) swapRows(i, j int) {
	p.rows[i], p.rows[j] = p.rows[j], p.rows[i]
}

// ScoreAll scores every row in [first, last), resetting and reusing g for
// each row. No allocation happens in this loop beyond what Permutation's
// view construction costs - scoring, unlike the spawn hot loop, runs once
// per row per generation, not once per candidate spawn write.
func (p *Population) ScoreAll(pz *puzzle.Puzzle, g *scratch.Grid, first, last int) {
	for row := first; row < last; row++ {
		g.CopyFrom(pz.Flat())
		score := ScoreSolution(pz, g, p.Permutation(row))
		p.SetScore(row, uint32(score))
	}
}

// partition is the Hoare-style quickselect partition: pivot
// at the midpoint of [first, last], rows swapped wholesale by score (word 0).
// Returns the final pivot index.
func (p *Population) partition(first, last int) int {
	pivotIdx := (last-first)/2 + first
	pivot := p.Score(pivotIdx)
	p.swapRows(pivotIdx, first)

	low := first + 1
	high := last
	for {
		for low <= high && p.Score(low) <= pivot {
			low++
		}
		for p.Score(high) >= pivot && high >= low {
			high--
		}
		if high < low {
			break
		}
		p.swapRows(low, high)
	}
	p.swapRows(first, high)
	return high
}

// DividePopulation repeatedly partitions until the pivot lands exactly on k,
// so that afterward every row in [0, k) has score <= every row in
// [k, end). Rows within each side are left in arbitrary order.
func (p *Population) DividePopulation(k int) {
	first := 0
	last := p.Rows() - 1
	splitIdx := 0
	for first < last && splitIdx != k {
		splitIdx = p.partition(first, last)
		if splitIdx > k {
			last = splitIdx - 1
		} else if splitIdx < k {
			first = splitIdx + 1
		}
	}
}

// MinScoreRow returns the index of the row with the smallest score across
// [0, Rows()), used by the worker loop to pick what to publish.
func (p *Population) MinScoreRow() int {
	best := 0
	bestScore := uint64(math.MaxUint64)
	for row := 0; row < p.Rows(); row++ {
		if s := uint64(p.Score(row)); s < bestScore {
			bestScore = s
			best = row
		}
	}
	return best
}
