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

package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackSplitRoundTrip(t *testing.T) {
	cases := []struct{ row, col int }{
		{0, 0}, {1, 1}, {0, 65535}, {65535, 0}, {12345, 6789},
	}
	for _, c := range cases {
		p := Pack(c.row, c.col)
		r, col := Split(p)
		assert.Equal(t, c.row, r)
		assert.Equal(t, c.col, col)
		assert.Equal(t, c.row, p.Row())
		assert.Equal(t, c.col, p.Col())
	}
}

func TestPackLayout(t *testing.T) {
	// row in the upper 16 bits, column in the lower 16 bits.
	assert.Equal(t, Point(0x00000000), Pack(0, 0))
	assert.Equal(t, Point(0x00010002), Pack(1, 2))
}

// TestPRNGDeterministic: the same seed always produces the same
// output sequence.
func TestPRNGDeterministic(t *testing.T) {
	seed := [4]uint32{1, 2, 3, 4}
	a := NewPRNG(seed)
	b := NewPRNG(seed)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

// TestPRNGRegression pins down the recurrence from the first call onward so
// an accidental change to the xorshift128 implementation gets caught.
func TestPRNGRegression(t *testing.T) {
	p := NewPRNG([4]uint32{1, 2, 3, 4})
	assert.Equal(t, uint32(0x80d), p.Next())
	assert.Equal(t, uint32(0x181f), p.Next())
}

func TestPRNGNeverRepeatsImmediately(t *testing.T) {
	p := NewPRNG([4]uint32{1, 2, 3, 4})
	prev := p.Next()
	for i := 0; i < 1000; i++ {
		next := p.Next()
		assert.NotEqual(t, prev, next)
		prev = next
	}
}

func TestPRNGIntnBounds(t *testing.T) {
	p := NewSeededPRNG()
	for i := 0; i < 1000; i++ {
		v := p.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestNewSeededPRNGNotAllZero(t *testing.T) {
	p := NewSeededPRNG()
	assert.NotEqual(t, [4]uint32{0, 0, 0, 0}, p.s)
}
