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

// Package point encodes grid positions as packed 32-bit words and provides
// the xorshift128 PRNG used throughout the solver's hot loops.
package point

import "fmt"

// Point is a grid position packed into the upper and lower 16 bits of a
// uint32: row in bits 16..31, column in bits 0..15. Rows and columns are
// assumed to fit in 16 bits - puzzles are small.
type Point uint32

// Pack encodes a (row, col) pair as a Point.
func Pack(row, col int) Point {
	return Point(uint32(row)<<16 | uint32(col)&0xffff)
}

// Split decodes a Point back into its row and column.
func Split(p Point) (row, col int) {
	return int(p >> 16), int(p & 0xffff)
}

// Row returns the row bits of p.
func (p Point) Row() int {
	return int(p >> 16)
}

// Col returns the column bits of p.
func (p Point) Col() int {
	return int(p & 0xffff)
}

// String renders a Point as "(row,col)" for logging and test failures.
func (p Point) String() string {
	r, c := Split(p)
	return fmt.Sprintf("(%d,%d)", r, c)
}
