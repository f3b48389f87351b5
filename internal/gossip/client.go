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
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Connect dials addr ("host:port"), retrying with exponential backoff until
// the peer is reachable and the handshake line has been sent. The dialed
// connection is this process's upstream link: once it is established and
// later drops, the mesh shuts down instead of redialing.
//
// onConnect, if non-nil, runs once after the handshake, on the connection's
// goroutine.
func (m *Mesh) Connect(addr string, dialTimeout time.Duration, onConnect func()) {
	go func() {
		var conn net.Conn
		op := func() error {
			select {
			case <-m.done:
				return backoff.Permanent(ErrConnectionLost)
			default:
			}
			c, err := net.DialTimeout("tcp", addr, dialTimeout)
			if err != nil {
				m.log.Debugf("dial %s failed, retrying: %v", addr, err)
				return err
			}
			conn = c
			return nil
		}
		if err := backoff.Retry(op, backoff.NewExponentialBackOff()); err != nil {
			m.log.Errorf("giving up dialing %s: %v", addr, err)
			m.Shutdown()
			return
		}

		p := newPeer(conn, true)
		if err := p.sendLine([]byte(m.secret)); err != nil {
			m.log.Errorf("handshake with %s failed: %v", addr, err)
			p.close()
			m.Shutdown()
			return
		}
		m.addPeer(p)
		if onConnect != nil {
			onConnect()
		}
		m.readLoop(p)
	}()
}

// ParseHostPort validates a "host:port" string the way the CLI flags expect
// it, returning a cleaned-up form.
func ParseHostPort(addr string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("gossip: invalid address %q: %w", addr, err)
	}
	return net.JoinHostPort(host, port), nil
}
