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

import "encoding/json"

// probe is decoded first to tell a puzzle-announce message apart from a
// best message: any object carrying a "puzzle" field is an announce, any
// object carrying a "score" field is a best.
type probe struct {
	Puzzle json.RawMessage `json:"puzzle"`
	Score  *int            `json:"score"`
}

func decodeProbe(line []byte, p *probe) error {
	if err := json.Unmarshal(line, p); err != nil {
		return ErrDecodeFailure
	}
	return nil
}

// bestMessage is the wire shape of a Best message:
// {"puzzle_id": string, "score": int, "solution": [uint32, ...]}.
type bestMessage struct {
	PuzzleID string   `json:"puzzle_id"`
	Score    int      `json:"score"`
	Solution []uint32 `json:"solution"`
}

func decodeBest(line []byte) (bestMessage, error) {
	var m bestMessage
	if err := json.Unmarshal(line, &m); err != nil {
		return bestMessage{}, ErrDecodeFailure
	}
	return m, nil
}

// puzzleID extracts just the "id" field from a puzzle-announce line,
// without otherwise interpreting the message - the announce is rebroadcast
// verbatim and dispatched to the solver as opaque bytes.
func puzzleID(line []byte) (string, error) {
	var m struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(line, &m); err != nil {
		return "", ErrDecodeFailure
	}
	return m.ID, nil
}

func encodeBest(puzzleID string, score int, solution []uint32) []byte {
	out, _ := json.Marshal(bestMessage{PuzzleID: puzzleID, Score: score, Solution: solution})
	return out
}
