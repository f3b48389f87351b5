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
	"bufio"
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/jansel/gridea/internal/logging"
	"github.com/jansel/gridea/internal/point"
)

var out = message.NewPrinter(language.German)

// Solver is what a worker process plugs into its Mesh: a puzzle-announce
// message (the verbatim wire bytes) is dispatched to Solve on a fresh
// goroutine, never on the connection's read loop.
type Solver interface {
	Solve(raw []byte)
}

// Mesh is one process's view of the gossip network: the set of
// authenticated peer connections, the GlobalBest register, and an optional
// Solver. Every message handler follows the same two rules: a puzzle
// announce resets GlobalBest and is rebroadcast verbatim to every peer
// except the sender, and a best message is rebroadcast only if it strictly
// improved the register.
type Mesh struct {
	log  *logging.Logger
	best *GlobalBest

	mu    sync.Mutex
	peers map[*Peer]struct{}

	solver Solver
	// solveSem keeps at most one dispatched solve in flight; a puzzle
	// announce that arrives while a solve is still running is still reset
	// and rebroadcast, but not dispatched a second time.
	solveSem *semaphore.Weighted

	secret string

	done      chan struct{}
	closeOnce sync.Once
}

// NewMesh constructs a Mesh around the given GlobalBest register. The
// shared-secret string for the handshake is taken from the gossip
// configuration.
func NewMesh(best *GlobalBest, secret string) *Mesh {
	return &Mesh{
		log:      myLogging.GetGossipLog(),
		best:     best,
		peers:    make(map[*Peer]struct{}),
		solveSem: semaphore.NewWeighted(int64(1)),
		secret:   secret,
		done:     make(chan struct{}),
	}
}

// SetSolver makes this mesh a worker: incoming puzzle announces are
// dispatched to s. Must be called before Listen or Connect.
func (m *Mesh) SetSolver(s Solver) {
	m.solver = s
}

// Best returns the mesh's GlobalBest register.
func (m *Mesh) Best() *GlobalBest {
	return m.best
}

// Done is closed when the mesh has shut down - either Shutdown was called
// or an upstream connection was lost.
func (m *Mesh) Done() <-chan struct{} {
	return m.done
}

// Shutdown closes every peer connection and releases anyone waiting on
// Done. Safe to call more than once.
func (m *Mesh) Shutdown() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := range m.peers {
		p.close()
	}
	m.peers = make(map[*Peer]struct{})
}

// PeerCount returns the number of authenticated peers.
func (m *Mesh) PeerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.peers)
}

func (m *Mesh) addPeer(p *Peer) {
	m.mu.Lock()
	n := len(m.peers) + 1
	m.peers[p] = struct{}{}
	m.mu.Unlock()
	m.log.Info(out.Sprintf("connect %s (%d peers)", p.Addr(), n))
}

// removePeer drops p from the set. If p was this process's upstream link
// the whole mesh shuts down - a worker without its upstream has nobody to
// report to.
func (m *Mesh) removePeer(p *Peer) {
	m.mu.Lock()
	_, present := m.peers[p]
	delete(m.peers, p)
	n := len(m.peers)
	m.mu.Unlock()
	if !present {
		return
	}
	p.close()
	m.log.Info(out.Sprintf("disconnect %s (%d peers)", p.Addr(), n))
	if p.upstream {
		m.log.Info("upstream connection lost, shutting down")
		m.Shutdown()
	}
}

// Broadcast sends line to every peer except the given one. The peer-set
// mutex is held for the duration of the iteration; individual writes are
// bounded by the peer write timeout. A peer whose write fails is closed and
// will be removed by its read loop.
func (m *Mesh) Broadcast(line []byte, except *Peer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := range m.peers {
		if p == except {
			continue
		}
		if err := p.sendLine(line); err != nil {
			m.log.Warningf("write to %s failed: %v", p.Addr(), err)
			p.close()
		}
	}
}

// PublishBest records a solution found by the local solver and, if it
// improved on the register, broadcasts it to every peer. This is the only
// call the solver thread makes into the gossip layer.
func (m *Mesh) PublishBest(puzzleID string, score int, solution []point.Point) {
	words := make([]uint32, len(solution))
	for i, pt := range solution {
		words[i] = uint32(pt)
	}
	if m.best.Update(puzzleID, score, words) {
		m.log.Debugf("publishing new best %d for puzzle %s", score, puzzleID)
		m.Broadcast(encodeBest(puzzleID, score, words), nil)
	}
}

// InjectPuzzle posts a puzzle announce originating from this process (read
// from the contest API or a local file) onto the mesh: the register is
// reset for the new id and the raw bytes go to every peer. Returns the
// puzzle id.
func (m *Mesh) InjectPuzzle(raw []byte) (string, error) {
	id, err := puzzleID(raw)
	if err != nil {
		return "", err
	}
	m.best.Reset(id)
	m.dispatchSolve(raw)
	m.Broadcast(raw, nil)
	return id, nil
}

// handleLine is the single dispatch point for every line received from an
// authenticated peer. It must never block: decoding, register updates and
// per-peer line writes only. Solving is handed off to its own goroutine.
func (m *Mesh) handleLine(from *Peer, line []byte) {
	var p probe
	if err := decodeProbe(line, &p); err != nil {
		m.log.Warningf("dropping undecodable line from %s: %v", from.Addr(), err)
		return
	}
	switch {
	case p.Puzzle != nil:
		id, err := puzzleID(line)
		if err != nil {
			m.log.Warningf("dropping puzzle announce without id from %s", from.Addr())
			return
		}
		m.best.Reset(id)
		m.dispatchSolve(line)
		m.Broadcast(line, from)
		m.log.Debugf("got new puzzle %s", id)
	case p.Score != nil:
		msg, err := decodeBest(line)
		if err != nil {
			m.log.Warningf("dropping undecodable best message from %s: %v", from.Addr(), err)
			return
		}
		if m.best.Update(msg.PuzzleID, msg.Score, msg.Solution) {
			m.Broadcast(line, from)
		}
	default:
		m.log.Warningf("dropping message with no puzzle or score field from %s", from.Addr())
	}
}

// dispatchSolve hands the raw puzzle announce to the solver on a new
// goroutine. Workers solve one puzzle at a time; if a solve is still
// running the announce is not dispatched again.
func (m *Mesh) dispatchSolve(raw []byte) {
	if m.solver == nil {
		return
	}
	if !m.solveSem.TryAcquire(1) {
		m.log.Warning("solve already in flight, not dispatching new puzzle")
		return
	}
	// the read loop must not carry the solve - copy the line out of the
	// scanner's buffer before handing it over
	msg := make([]byte, len(raw))
	copy(msg, raw)
	go func() {
		defer m.solveSem.Release(1)
		m.solver.Solve(msg)
	}()
}

// readLoop consumes lines from an authenticated peer until the connection
// drops, then removes the peer from the set.
func (m *Mesh) readLoop(p *Peer) {
	scanner := bufio.NewScanner(p.conn)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := trimCR(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		m.handleLine(p, line)
	}
	m.removePeer(p)
}

// maxLineBytes bounds a single protocol line. A best message carries the
// whole permutation, which for a 256x256 puzzle runs to a few megabytes of
// JSON.
const maxLineBytes = 16 * 1024 * 1024

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
