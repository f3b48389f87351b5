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

// Package solver implements the evolutionary square-packing engine: the
// greedy-expansion scorer, the heuristic initializer, the population
// operators (partial selection, crossover, mutation) and the generational
// worker loop that ties them together.
package solver

import (
	"github.com/jansel/gridea/internal/point"
	"github.com/jansel/gridea/internal/puzzle"
	"github.com/jansel/gridea/internal/scratch"
)

// growSquare attempts to extend a square anchored at (row, col) that is
// currently of side n, returning the largest side it can reach. It reads
// read-only cell state via at(row, col) - callers pass either a puzzle (for
// the max-size map) or a scratch grid (for live scoring).
//
// n=2, n=3 and n=4 are unrolled; growth beyond that falls through to the
// general loop. The unroll is purely a speedup - it must never change the
// size it returns.
func growSquare(height, width int, row, col int, at func(r, c int) byte) int {
	n := 1
	for {
		if row+n >= height || col+n >= width {
			return n
		}
		switch n {
		case 1:
			if at(row+1, col) == 1 && at(row, col+1) == 1 && at(row+1, col+1) == 1 {
				n = 2
				continue
			}
			return n
		case 2:
			if at(row+2, col) == 1 && at(row+2, col+1) == 1 && at(row+2, col+2) == 1 &&
				at(row, col+2) == 1 && at(row+1, col+2) == 1 {
				n = 3
				continue
			}
			return n
		case 3:
			if at(row+3, col) == 1 && at(row+3, col+1) == 1 && at(row+3, col+2) == 1 && at(row+3, col+3) == 1 &&
				at(row, col+3) == 1 && at(row+1, col+3) == 1 && at(row+2, col+3) == 1 {
				n = 4
				continue
			}
			return n
		default:
			ok := true
			for k := 0; k <= n; k++ {
				if at(row+n, col+k) != 1 || at(row+k, col+n) != 1 {
					ok = false
					break
				}
			}
			if !ok {
				return n
			}
			n++
		}
	}
}

// markSquare writes Filled over the body of a square of side n anchored at
// (row, col), leaving the anchor cell itself untouched (the caller sets it
// to scratch.Anchor separately).
func markSquare(g *scratch.Grid, row, col, n int) {
	for dr := 0; dr < n; dr++ {
		for dc := 0; dc < n; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			g.Set(row+dr, col+dc, scratch.Filled)
		}
	}
}

// ScoreSolution runs the greedy expansion over perm
// and returns the number of squares the expansion would draw, including the
// trailing 1x1 sweep. g must already have been reset via g.CopyFrom(p.Flat())
// for this call - ScoreSolution does not reset it itself, so callers can
// reuse one reset across a Score/Expand pair if needed.
func ScoreSolution(p *puzzle.Puzzle, g *scratch.Grid, perm []point.Point) int {
	squares := 0
	tilesUsed := 0
	for _, pt := range perm {
		row, col := point.Split(pt)
		if g.At(row, col) != scratch.Empty {
			continue
		}
		n := growSquare(g.Height(), g.Width(), row, col, g.At)
		if n >= 2 {
			markSquare(g, row, col, n)
			g.Set(row, col, scratch.Anchor)
			squares++
			tilesUsed += n * n
		}
	}
	return squares + (p.Sum - tilesUsed)
}

// ExpandSolution is the expander variant of ScoreSolution: it returns the
// actual list of squares (anchors with n >= 2, in draw order, then every
// remaining 1x1 cell) instead of just a count.
func ExpandSolution(p *puzzle.Puzzle, g *scratch.Grid, perm []point.Point) []puzzle.Square {
	squares := make([]puzzle.Square, 0, p.Sum)
	for _, pt := range perm {
		row, col := point.Split(pt)
		if g.At(row, col) != scratch.Empty {
			continue
		}
		n := growSquare(g.Height(), g.Width(), row, col, g.At)
		if n >= 2 {
			markSquare(g, row, col, n)
			g.Set(row, col, scratch.Anchor)
			squares = append(squares, puzzle.Square{X: col, Y: row, Size: n})
		}
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col) == scratch.Empty {
				squares = append(squares, puzzle.Square{X: col, Y: row, Size: 1})
			}
		}
	}
	return squares
}
