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
	"fmt"
	"net"
	"time"
)

// handshakeTimeout bounds how long an accepted connection may take to send
// its shared-secret line before it is dropped.
const handshakeTimeout = 10 * time.Second

// Listen binds a TCP listener on port (0 picks a free port) and starts the
// accept loop on its own goroutine. The returned listener's address tells
// the caller which port was actually bound. The listener is closed when the
// mesh shuts down.
func (m *Mesh) Listen(port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("gossip: listen on port %d: %w", port, err)
	}
	m.log.Infof("listening on %s", ln.Addr())
	go func() {
		<-m.done
		_ = ln.Close()
	}()
	go m.acceptLoop(ln)
	return ln, nil
}

func (m *Mesh) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-m.done:
			default:
				m.log.Errorf("accept failed: %v", err)
			}
			return
		}
		go m.serveInbound(conn)
	}
}

// serveInbound authenticates a freshly accepted connection. The dialing
// side must send the shared secret as its very first line; anything else
// closes the connection. The accepting side does not send the secret back -
// the dialer is implicitly authenticated by knowing it.
func (m *Mesh) serveInbound(conn net.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	if !scanner.Scan() || string(trimCR(scanner.Bytes())) != m.secret {
		m.log.Infof("login failed from %s: %v", conn.RemoteAddr(), ErrAuthFailure)
		_ = conn.Close()
		return
	}
	_ = conn.SetReadDeadline(time.Time{})

	p := newPeer(conn, false)
	m.addPeer(p)

	// keep draining from the same scanner - a line may already be buffered
	// behind the handshake
	for scanner.Scan() {
		line := trimCR(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		m.handleLine(p, line)
	}
	m.removePeer(p)
}
