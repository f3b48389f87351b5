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

package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyFromOverwritesFully(t *testing.T) {
	g := NewGrid(2, 2)
	g.CopyFrom([]byte{1, 1, 1, 1})
	assert.Equal(t, Empty, g.At(0, 0))
	g.Set(0, 0, Filled)
	g.CopyFrom([]byte{1, 1, 1, 1})
	assert.Equal(t, Empty, g.At(0, 0), "CopyFrom must fully overwrite leftover state from the previous call")
}

func TestSetAndAt(t *testing.T) {
	g := NewGrid(3, 4)
	g.CopyFrom(make([]byte, 12))
	g.Set(1, 2, Anchor)
	assert.Equal(t, Anchor, g.At(1, 2))
	assert.Equal(t, Outside, g.At(0, 0))
}

func TestInBounds(t *testing.T) {
	g := NewGrid(3, 4)
	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(2, 3))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, 4))
	assert.False(t, g.InBounds(-1, 0))
}

func TestHeightWidth(t *testing.T) {
	g := NewGrid(5, 7)
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, 7, g.Width())
}
