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

package config

// gossipConfiguration is a data structure to hold the configuration of the
// gossip mesh: the listen port, the shared-secret handshake string, and
// reconnect behavior.
type gossipConfiguration struct {
	// Port is the TCP port the mesh listens on.
	Port int

	// SharedSecret is sent by a dialing peer as the first line of a new
	// connection; it is an integrity marker, not a security boundary.
	SharedSecret string

	// DialTimeout bounds a single connection attempt to a peer.
	DialTimeout int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Gossip.Port = 8099
	Settings.Gossip.SharedSecret = "ooLeel9aiJ4iW1nei1sa8Haichaig2ch"
	Settings.Gossip.DialTimeout = 5
}

// sanity-check values read from the config file. A port outside the valid
// TCP range or an empty shared secret would make every handshake fail in a
// way that looks like a network problem instead of a config problem.
func setupGossip() {
	if Settings.Gossip.Port < 1 || Settings.Gossip.Port > 65535 {
		Settings.Gossip.Port = 8099
	}
	if Settings.Gossip.SharedSecret == "" {
		Settings.Gossip.SharedSecret = "ooLeel9aiJ4iW1nei1sa8Haichaig2ch"
	}
	if Settings.Gossip.DialTimeout < 1 {
		Settings.Gossip.DialTimeout = 5
	}
}
