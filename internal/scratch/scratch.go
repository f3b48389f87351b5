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

// Package scratch holds the mutable grid the scorer draws squares onto.
// A Grid is allocated once per puzzle and reused, unzeroed, across every
// scoring call in the generational loop.
package scratch

// Cell states used while greedily expanding squares into the grid.
const (
	// Outside marks a cell beyond the puzzle bounds or a wall cell.
	Outside byte = 0
	// Empty marks an interior cell not yet covered by any square.
	Empty byte = 1
	// Anchor marks the top-left cell of a square of size >= 2.
	Anchor byte = 2
	// Filled marks a cell covered by the body of a square of size >= 2.
	Filled byte = 3
)

// Grid is a flat H*W byte buffer addressed row-major, mirroring the layout
// of the puzzle it scores. It carries no cross-call state of its own -
// callers reset it with CopyFrom before every scoring pass.
type Grid struct {
	cells  []byte
	height int
	width  int
}

// NewGrid allocates a Grid sized for an H x W puzzle. The backing slice is
// left zeroed; callers must call CopyFrom before the first use.
func NewGrid(height, width int) *Grid {
	return &Grid{
		cells:  make([]byte, height*width),
		height: height,
		width:  width,
	}
}

// CopyFrom overwrites the grid bytewise with src, which must be exactly
// height*width bytes in row-major order. No zeroing is needed between
// calls - this copy fully overwrites the previous contents.
func (g *Grid) CopyFrom(src []byte) {
	copy(g.cells, src)
}

// At returns the cell state at (row, col).
func (g *Grid) At(row, col int) byte {
	return g.cells[row*g.width+col]
}

// Set writes the cell state at (row, col).
func (g *Grid) Set(row, col int, v byte) {
	g.cells[row*g.width+col] = v
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether (row, col) is a valid cell address.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}
