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

// Package puzzle represents the immutable rectangular grid that the solver
// covers with squares, and the wire format it is exchanged in.
package puzzle

import (
	"encoding/json"
	"fmt"
)

// Puzzle is an immutable H x W grid of interior (1) and wall (0) cells.
//
// Create one with Decode or New; a Puzzle's grid never changes after
// construction - the solver copies it into a scratch.Grid before mutating
// anything.
type Puzzle struct {
	ID     string
	Grid   [][]byte
	Height int
	Width  int

	// Sum is the number of interior (1) cells, computed once at construction.
	Sum int

	flat []byte
}

// wireFormat mirrors the puzzle API format from the external contest API:
// {"id": string, "puzzle": [[0/1,...],...], "width": int, "height": int}.
type wireFormat struct {
	ID     string  `json:"id"`
	Grid   [][]int `json:"puzzle"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

// New constructs a Puzzle from an already-decoded grid.
func New(id string, grid [][]byte) *Puzzle {
	p := &Puzzle{
		ID:     id,
		Grid:   grid,
		Height: len(grid),
	}
	if p.Height > 0 {
		p.Width = len(grid[0])
	}
	p.flat = make([]byte, p.Height*p.Width)
	for i, row := range grid {
		copy(p.flat[i*p.Width:(i+1)*p.Width], row)
		for _, cell := range row {
			if cell == 1 {
				p.Sum++
			}
		}
	}
	return p
}

// Decode parses the contest API puzzle wire format into a Puzzle.
func Decode(data []byte) (*Puzzle, error) {
	var w wireFormat
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("puzzle: decode: %w", err)
	}
	if len(w.Grid) == 0 {
		return nil, fmt.Errorf("puzzle: decode: empty grid")
	}
	grid := make([][]byte, len(w.Grid))
	for i, row := range w.Grid {
		grid[i] = make([]byte, len(row))
		for j, cell := range row {
			if cell != 0 {
				grid[i][j] = 1
			}
		}
	}
	p := New(w.ID, grid)
	return p, nil
}

// At returns the cell value at (row, col): 0 (wall) or 1 (interior).
func (p *Puzzle) At(row, col int) byte {
	return p.Grid[row][col]
}

// Flat returns the grid as a row-major byte slice, cached at construction
// time. Callers must treat it as read-only - it backs every scratch.Grid
// reset for this puzzle and is never reallocated.
func (p *Puzzle) Flat() []byte {
	return p.flat
}

// Square is one square of the solution, in the contest API's X=col, Y=row
// coordinate convention.
type Square struct {
	X    int `json:"X"`
	Y    int `json:"Y"`
	Size int `json:"Size"`
}

// EncodeSolution renders a list of squares for the given puzzle id into the
// solution API wire format: {"id": string, "squares": [...]}.
func EncodeSolution(id string, squares []Square) ([]byte, error) {
	return json.Marshal(struct {
		ID      string   `json:"id"`
		Squares []Square `json:"squares"`
	}{ID: id, Squares: squares})
}
