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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansel/gridea/internal/point"
	"github.com/jansel/gridea/internal/puzzle"
	"github.com/jansel/gridea/internal/scratch"
)

func allInterior(h, w int) *puzzle.Puzzle {
	grid := make([][]byte, h)
	for i := range grid {
		grid[i] = make([]byte, w)
		for j := range grid[i] {
			grid[i][j] = 1
		}
	}
	return puzzle.New("all-interior", grid)
}

// A 2x2 all-interior puzzle collapses to a single square.
func TestExpand2x2AllInterior(t *testing.T) {
	p := allInterior(2, 2)
	g := scratch.NewGrid(2, 2)
	g.CopyFrom(p.Flat())
	perm := []point.Point{point.Pack(0, 0)}
	squares := ExpandSolution(p, g, perm)
	require.Len(t, squares, 1)
	assert.Equal(t, puzzle.Square{X: 0, Y: 0, Size: 2}, squares[0])

	g2 := scratch.NewGrid(2, 2)
	g2.CopyFrom(p.Flat())
	assert.Equal(t, 1, ScoreSolution(p, g2, perm))
}

// A checkerboard has no valid point anywhere, so the whole puzzle is
// covered by the trailing 1x1 sweep.
func TestExpandCheckerboard(t *testing.T) {
	grid := [][]byte{{1, 0, 1}, {0, 1, 0}, {1, 0, 1}}
	p := puzzle.New("checkerboard", grid)
	maxSize := MaxSizeMap(p)
	assert.Empty(t, maxSize, "no 2x2 square exists in a checkerboard")

	g := scratch.NewGrid(3, 3)
	g.CopyFrom(p.Flat())
	squares := ExpandSolution(p, g, nil)
	assert.Len(t, squares, 5)
	for _, sq := range squares {
		assert.Equal(t, 1, sq.Size)
	}
}

// A single corner point on an open 4x4 grid grows to the full square.
func TestExpand4x4SinglePoint(t *testing.T) {
	p := allInterior(4, 4)
	g := scratch.NewGrid(4, 4)
	g.CopyFrom(p.Flat())
	perm := []point.Point{point.Pack(0, 0)}
	squares := ExpandSolution(p, g, perm)
	require.Len(t, squares, 1)
	assert.Equal(t, puzzle.Square{X: 0, Y: 0, Size: 4}, squares[0])

	g2 := scratch.NewGrid(4, 4)
	g2.CopyFrom(p.Flat())
	assert.Equal(t, 1, ScoreSolution(p, g2, perm))
}

// A 3x3 drawn at (1,1) first blocks (0,0) from growing at all, leaving
// seven edge cells to the 1x1 sweep.
func TestExpand4x4BlockedSecondPoint(t *testing.T) {
	p := allInterior(4, 4)
	perm := []point.Point{point.Pack(1, 1), point.Pack(0, 0)}

	g := scratch.NewGrid(4, 4)
	g.CopyFrom(p.Flat())
	assert.Equal(t, 8, ScoreSolution(p, g, perm))

	g2 := scratch.NewGrid(4, 4)
	g2.CopyFrom(p.Flat())
	squares := ExpandSolution(p, g2, perm)
	assert.Len(t, squares, 8)
	bigSquares := 0
	for _, sq := range squares {
		if sq.Size >= 2 {
			bigSquares++
			assert.Equal(t, 3, sq.Size)
			assert.Equal(t, 1, sq.X)
			assert.Equal(t, 1, sq.Y)
		}
	}
	assert.Equal(t, 1, bigSquares)
}

// The score must always equal the length of the expanded square list.
func TestScoreMatchesExpandLength(t *testing.T) {
	p := allInterior(6, 5)
	maxSize := MaxSizeMap(p)
	perm := make([]point.Point, len(maxSize))
	for i, sp := range maxSize {
		perm[i] = sp.pt
	}

	g1 := scratch.NewGrid(p.Height, p.Width)
	g1.CopyFrom(p.Flat())
	score := ScoreSolution(p, g1, perm)

	g2 := scratch.NewGrid(p.Height, p.Width)
	g2.CopyFrom(p.Flat())
	squares := ExpandSolution(p, g2, perm)

	assert.Equal(t, score, len(squares))
}

// The expander's squares tile every interior cell exactly once and never
// touch a wall.
func TestExpandTilesEveryInteriorCellExactlyOnce(t *testing.T) {
	grid := [][]byte{
		{1, 1, 1, 0, 1},
		{1, 1, 1, 0, 1},
		{1, 1, 1, 1, 1},
		{0, 0, 1, 1, 1},
	}
	p := puzzle.New("irregular", grid)
	maxSize := MaxSizeMap(p)
	perm := make([]point.Point, len(maxSize))
	for i, sp := range maxSize {
		perm[i] = sp.pt
	}

	g := scratch.NewGrid(p.Height, p.Width)
	g.CopyFrom(p.Flat())
	squares := ExpandSolution(p, g, perm)

	covered := make(map[[2]int]int)
	for _, sq := range squares {
		for dr := 0; dr < sq.Size; dr++ {
			for dc := 0; dc < sq.Size; dc++ {
				covered[[2]int{sq.Y + dr, sq.X + dc}]++
			}
		}
	}
	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			if p.At(row, col) == 1 {
				assert.Equal(t, 1, covered[[2]int{row, col}], "cell (%d,%d) should be covered exactly once", row, col)
			} else {
				assert.Equal(t, 0, covered[[2]int{row, col}], "wall cell (%d,%d) should not be covered", row, col)
			}
		}
	}
}
