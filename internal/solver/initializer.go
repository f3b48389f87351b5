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
	"sort"

	"github.com/jansel/gridea/internal/point"
	"github.com/jansel/gridea/internal/puzzle"
)

// sizedPoint pairs a valid point with its max-square size n, the unit the
// heuristic keys below sort on.
type sizedPoint struct {
	n     int
	pt    point.Point
	row   int
	col   int
}

// MaxSizeMap computes, for every interior cell, the largest n such that an
// n x n square anchored there contains only interior cells, using the same
// growth rule as the scorer but reading directly from the puzzle (no
// mutation). Points whose max size is 1 are excluded - the
// representation only carries points that can anchor at least a 2x2 square.
func MaxSizeMap(p *puzzle.Puzzle) []sizedPoint {
	at := func(r, c int) byte {
		return p.At(r, c)
	}
	var out []sizedPoint
	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			if p.At(row, col) != 1 {
				continue
			}
			n := growSquare(p.Height, p.Width, row, col, at)
			if n >= 2 {
				out = append(out, sizedPoint{n: n, pt: point.Pack(row, col), row: row, col: col})
			}
		}
	}
	return out
}

// heuristicKey returns a sortable key for sp. heuristics[0..5] are the fixed
// baseline orderings; heuristics[6:] are the 250-member
// parameterised family indexed by (split, ratio).
type heuristicKey func(sp sizedPoint) [4]int64

var baselineHeuristics = []heuristicKey{
	func(sp sizedPoint) [4]int64 { return [4]int64{int64(-sp.n), int64(sp.row), int64(sp.col), 0} },
	func(sp sizedPoint) [4]int64 { return [4]int64{int64(-sp.n), int64(sp.col), int64(sp.row), 0} },
	func(sp sizedPoint) [4]int64 { return [4]int64{int64(sp.row), int64(-sp.n), int64(sp.col), 0} },
	func(sp sizedPoint) [4]int64 { return [4]int64{int64(sp.col), int64(-sp.n), int64(sp.row), 0} },
	func(sp sizedPoint) [4]int64 { return [4]int64{int64(sp.row), int64(sp.col), 0, 0} },
	func(sp sizedPoint) [4]int64 { return [4]int64{int64(sp.col), int64(sp.row), 0, 0} },
}

// numHeuristics is 6 baseline orderings + 50 splits * 5 ratios.
const (
	numSplits     = 50
	numRatios     = 5
	numHeuristics = 6 + numSplits*numRatios
)

// parameterisedKey computes `split*i + (1-split)*j - ratio*n` scaled to
// integers: split = splitIdx/49, so the key is
// splitIdx*i + (49-splitIdx)*j - 49*ratio*n, which sorts identically to the
// fractional form without introducing floating point into a hot sort.
func parameterisedKey(splitIdx, ratio int, sp sizedPoint) int64 {
	return int64(splitIdx)*int64(sp.row) + int64(numSplits-1-splitIdx)*int64(sp.col) - int64(numSplits-1)*int64(ratio)*int64(sp.n)
}

// sortPermutation sorts a copy of points by heuristic index h (stable, so
// the seed portion is reproducible) and returns the resulting permutation.
func sortPermutation(points []sizedPoint, h int) []point.Point {
	sorted := make([]sizedPoint, len(points))
	copy(sorted, points)

	if h < len(baselineHeuristics) {
		key := baselineHeuristics[h]
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := key(sorted[i]), key(sorted[j])
			return lessKey(a, b)
		})
	} else {
		idx := h - len(baselineHeuristics)
		splitIdx := idx / numRatios
		ratio := idx % numRatios
		sort.SliceStable(sorted, func(i, j int) bool {
			return parameterisedKey(splitIdx, ratio, sorted[i]) < parameterisedKey(splitIdx, ratio, sorted[j])
		})
	}

	perm := make([]point.Point, len(sorted))
	for i, sp := range sorted {
		perm[i] = sp.pt
	}
	return perm
}

func lessKey(a, b [4]int64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// InitPopulation allocates the pop_size+spawn_count population matrix,
// writes the 256 heuristic seed permutations into rows 0..255 and
// duplicates them (seed k mod 256) into the remaining rows - the duplicates
// are intentional and diverge under mutation. Scoring the seeded rows is
// the caller's job.
func InitPopulation(p *puzzle.Puzzle, maxSize []sizedPoint, popSize, spawnCount int) *Population {
	l := len(maxSize)
	pop := NewPopulation(popSize+spawnCount, l)

	seeds := make([][]point.Point, numHeuristics)
	for h := 0; h < numHeuristics; h++ {
		seeds[h] = sortPermutation(maxSize, h)
	}

	for row := 0; row < pop.Rows(); row++ {
		perm := seeds[row%numHeuristics]
		pop.SetPermutation(row, perm)
	}

	return pop
}
