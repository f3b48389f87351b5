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

package gossip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeDistinguishesMessageTypes(t *testing.T) {
	var p probe
	require.NoError(t, decodeProbe([]byte(`{"id": "a", "puzzle": [[1]]}`), &p))
	assert.NotNil(t, p.Puzzle)
	assert.Nil(t, p.Score)

	p = probe{}
	require.NoError(t, decodeProbe([]byte(`{"puzzle_id": "a", "score": 3, "solution": []}`), &p))
	assert.Nil(t, p.Puzzle)
	require.NotNil(t, p.Score)
	assert.Equal(t, 3, *p.Score)

	assert.ErrorIs(t, decodeProbe([]byte("not json"), &p), ErrDecodeFailure)
}

func TestBestMessageRoundTrip(t *testing.T) {
	line := encodeBest("p7", 12, []uint32{65536, 3})
	m, err := decodeBest(line)
	require.NoError(t, err)
	assert.Equal(t, "p7", m.PuzzleID)
	assert.Equal(t, 12, m.Score)
	assert.Equal(t, []uint32{65536, 3}, m.Solution)
}

func TestPuzzleIDExtraction(t *testing.T) {
	id, err := puzzleID([]byte(`{"id": "xyz", "puzzle": [[1,1],[1,1]], "width": 2, "height": 2}`))
	require.NoError(t, err)
	assert.Equal(t, "xyz", id)

	_, err = puzzleID([]byte("{broken"))
	assert.ErrorIs(t, err, ErrDecodeFailure)
}
