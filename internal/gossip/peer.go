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
	"net"
	"sync"
	"time"
)

// writeTimeout bounds a single line write to a peer so one stalled socket
// cannot hold the broadcast critical section indefinitely.
const writeTimeout = 5 * time.Second

// Peer is one authenticated connection in the mesh. Writes are serialized
// through the peer's own mutex; reads happen only on the peer's read loop
// goroutine.
type Peer struct {
	conn net.Conn
	out  *bufio.Writer

	wMu sync.Mutex

	// upstream marks a connection this process dialed itself. Losing an
	// upstream connection shuts the process down; losing an accepted peer
	// just removes it from the set.
	upstream bool
}

func newPeer(conn net.Conn, upstream bool) *Peer {
	tuneConn(conn)
	return &Peer{
		conn:     conn,
		out:      bufio.NewWriter(conn),
		upstream: upstream,
	}
}

// tuneConn switches a fresh connection to the mesh's socket settings:
// keepalive on so dead peers are detected, Nagle off so single-line
// broadcasts are not batched.
func tuneConn(conn net.Conn) {
	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.SetKeepAlive(true)
		_ = tcp.SetNoDelay(true)
	}
}

// Addr returns the remote address of the peer for logging.
func (p *Peer) Addr() string {
	return p.conn.RemoteAddr().String()
}

// sendLine writes one CRLF-terminated line to the peer and flushes it.
func (p *Peer) sendLine(line []byte) error {
	p.wMu.Lock()
	defer p.wMu.Unlock()
	_ = p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := p.out.Write(line); err != nil {
		return err
	}
	if _, err := p.out.WriteString("\r\n"); err != nil {
		return err
	}
	return p.out.Flush()
}

func (p *Peer) close() {
	_ = p.conn.Close()
}
