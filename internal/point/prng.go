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
	"crypto/rand"
	"encoding/binary"
)

// PRNG is a xorshift128 generator with four 32-bit words of state. It must
// never be shared across goroutines - each worker owns its own instance.
type PRNG struct {
	s [4]uint32
}

// NewPRNG constructs a PRNG from an explicit seed. The seed must not be the
// all-zero state; xorshift128 never escapes it.
func NewPRNG(seed [4]uint32) *PRNG {
	return &PRNG{s: seed}
}

// NewSeededPRNG constructs a PRNG seeded from crypto/rand, retrying on the
// all-zero state (astronomically unlikely, but cheap to guard against).
func NewSeededPRNG() *PRNG {
	var seed [4]uint32
	for {
		var buf [16]byte
		if _, err := rand.Read(buf[:]); err != nil {
			panic(err)
		}
		for i := 0; i < 4; i++ {
			seed[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
		}
		if seed != [4]uint32{0, 0, 0, 0} {
			break
		}
	}
	return NewPRNG(seed)
}

// Next returns the next pseudo-random uint32 and advances the state.
func (p *PRNG) Next() uint32 {
	t := p.s[0] ^ (p.s[0] << 11)
	p.s[0] = p.s[1]
	p.s[1] = p.s[2]
	p.s[2] = p.s[3]
	p.s[3] = p.s[3] ^ (p.s[3] >> 19) ^ t ^ (t >> 8)
	return p.s[3]
}

// Intn returns a pseudo-random integer in [0, n). n must be positive.
func (p *PRNG) Intn(n int) int {
	return int(p.Next() % uint32(n))
}
