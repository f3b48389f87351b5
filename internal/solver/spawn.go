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

import "github.com/jansel/gridea/internal/point"

// largeSplit approximates 1.0 in the crossover's integer half-plane
// arithmetic.
const largeSplit = 10000

// diverter streams a source permutation into a destination, diverting
// exactly two positions to the extremes of the output (index 0 and L-1) as
// it goes. It implements the "divert to 0 and L-1" mutation shared by
// CopyAndMutate and CrossoverAndMutate: the two diversion
// indexes are chosen up front and each fires at most once, after which it
// is zeroed so it cannot fire again.
type diverter struct {
	dst          []uint32
	l            int
	outIdx       int
	shiftFwdIdx  int
	shiftBackIdx int
}

func newDiverter(dst []uint32, l int, prng *point.PRNG) *diverter {
	d := &diverter{dst: dst, l: l, outIdx: 1}
	// A permutation of length 1 has no room for a distinct "middle" and
	// "extreme" slot, so there is nothing to divert - the single element
	// goes straight to index 0.
	if l > 1 {
		d.shiftFwdIdx = 1 + prng.Intn(l-1)
		d.shiftBackIdx = 1 + prng.Intn(l-1)
	} else {
		d.outIdx = 0
	}
	return d
}

// push writes the next element from a source stream, diverting it to index
// 0 or L-1 when the output index it would have been written at matches one
// of the chosen diversion indexes. A diversion does not advance the output
// index, so the element after a diverted one lands in the slot the
// diverted element would have taken. If both diversion indexes are equal,
// the forward one fires first and the backward one on the next element.
func (d *diverter) push(pt uint32) {
	switch d.outIdx {
	case d.shiftFwdIdx:
		d.dst[0] = pt
		d.shiftFwdIdx = 0
	case d.shiftBackIdx:
		d.dst[d.l-1] = pt
		d.shiftBackIdx = 0
	default:
		d.dst[d.outIdx] = pt
		d.outIdx++
	}
}

// CopyAndMutate copies src's permutation into dst's permutation with the
// two-index "shift to extremes" mutation.
func CopyAndMutate(pop *Population, srcRow, dstRow int, prng *point.PRNG) {
	src := pop.PermutationWords(srcRow)
	dst := pop.PermutationWords(dstRow)
	l := pop.L()
	d := newDiverter(dst, l, prng)
	for _, pt := range src {
		d.push(pt)
	}
}

// crossoverLine is the random oriented splitting line drawn for one
// CrossoverAndMutate call: iMult*i + jMult*j <= split is the "left/above"
// half of the grid. The integer division rounding in iMult/jMult is
// deliberate noise - the crossover only needs a random half-plane, not a
// precise one.
type crossoverLine struct {
	split  int
	iMult  int
	jMult  int
}

func newCrossoverLine(height, width int, prng *point.PRNG) crossoverLine {
	split := prng.Intn(largeSplit)
	p := prng.Intn(largeSplit)
	return crossoverLine{
		split: split,
		iMult: p / height,
		jMult: (largeSplit - p) / width,
	}
}

func (c crossoverLine) leftOf(row, col int) bool {
	return c.iMult*row+c.jMult*col <= c.split
}

// CrossoverAndMutate draws a random half-plane, walks parent A emitting
// points on the "left/above" side, then walks parent B emitting points on
// the other side, applying the same diversion mutation as CopyAndMutate
// while emitting. The point set is identical between the two
// parents, so the half-plane predicate always partitions it completely and
// the output length is exactly L.
func CrossoverAndMutate(pop *Population, aRow, bRow, dstRow, height, width int, prng *point.PRNG) {
	a := pop.PermutationWords(aRow)
	b := pop.PermutationWords(bRow)
	dst := pop.PermutationWords(dstRow)
	l := pop.L()

	line := newCrossoverLine(height, width, prng)
	d := newDiverter(dst, l, prng)

	for _, w := range a {
		row, col := point.Split(point.Point(w))
		if line.leftOf(row, col) {
			d.push(w)
		}
	}
	for _, w := range b {
		row, col := point.Split(point.Point(w))
		if !line.leftOf(row, col) {
			d.push(w)
		}
	}
}

// Spawn fills the spawn region [popSize, popSize+spawnCount) of pop: even
// rows get CrossoverAndMutate from two random survivors, odd rows get
// CopyAndMutate from one.
func Spawn(pop *Population, popSize, spawnCount, height, width int, prng *point.PRNG) {
	for r := popSize; r < popSize+spawnCount; r++ {
		a := prng.Intn(popSize)
		if r%2 == 0 {
			b := prng.Intn(popSize)
			CrossoverAndMutate(pop, a, b, r, height, width, prng)
		} else {
			CopyAndMutate(pop, a, r, prng)
		}
	}
}
