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

// Package gossip implements the flood-broadcast TCP mesh that distributes
// puzzle instances and best-so-far solutions among worker processes, plus
// the per-process GlobalBest register.
package gossip

import "errors"

// Errors raised by the protocol layer.
var (
	// ErrAuthFailure means the first line from a dialing peer did not match
	// the shared secret. The connection is dropped; this endpoint does not
	// retry the same dial automatically.
	ErrAuthFailure = errors.New("gossip: peer failed shared-secret handshake")

	// ErrDecodeFailure means a line was not JSON or was missing a required
	// field. The connection is kept; only that one line is dropped.
	ErrDecodeFailure = errors.New("gossip: could not decode message")

	// ErrStalePuzzle means a Best message named a puzzle_id that is not the
	// one currently being solved. It is discarded and never rebroadcast.
	ErrStalePuzzle = errors.New("gossip: best message for a stale puzzle")

	// ErrConnectionLost means a peer socket closed. If the lost peer was
	// this process's upstream link, the process shuts down; otherwise it is
	// just removed from the peer set.
	ErrConnectionLost = errors.New("gossip: connection lost")
)
