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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansel/gridea/internal/puzzle"
)

func TestMaxSizeMapExcludesSizeOnePoints(t *testing.T) {
	grid := [][]byte{{1, 0, 1}, {0, 1, 0}, {1, 0, 1}}
	p := puzzle.New("checkerboard", grid)
	maxSize := MaxSizeMap(p)
	assert.Empty(t, maxSize)
}

func TestMaxSizeMapOnAllInterior(t *testing.T) {
	p := allInterior(3, 3)
	maxSize := MaxSizeMap(p)
	require.Len(t, maxSize, 9)
	for _, sp := range maxSize {
		assert.GreaterOrEqual(t, sp.n, 2)
	}
}

func TestNumHeuristicsIs256(t *testing.T) {
	assert.Equal(t, 256, numHeuristics)
}

// For a 10x10 all-interior puzzle, the 256 seed permutations contain a
// healthy number of genuinely distinct arrangements.
func TestHeuristicSeedingDiversity(t *testing.T) {
	p := allInterior(10, 10)
	maxSize := MaxSizeMap(p)

	distinct := make(map[string]bool)
	for h := 0; h < numHeuristics; h++ {
		perm := sortPermutation(maxSize, h)
		distinct[fmt.Sprint(perm)] = true
	}
	assert.GreaterOrEqual(t, len(distinct), 32)
}

func TestInitPopulationDuplicatesSeedsPastHeuristicCount(t *testing.T) {
	p := allInterior(5, 5)
	maxSize := MaxSizeMap(p)
	pop := InitPopulation(p, maxSize, numHeuristics+10, 0)

	assert.Equal(t, pop.Permutation(0), pop.Permutation(numHeuristics))
}
