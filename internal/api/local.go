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

package api

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jansel/gridea/internal/puzzle"
)

// LocalAPI has the same surface as Client but serves a fixed puzzle file
// instead of talking to the contest server, and accepts every submission.
// Used for testing against known puzzles.
type LocalAPI struct {
	Filename string
}

// NewLocalAPI constructs a LocalAPI serving the given JSON puzzle file.
func NewLocalAPI(filename string) *LocalAPI {
	return &LocalAPI{Filename: filename}
}

// Fetch reads the puzzle file. A file without an "id" field gets a fresh
// one assigned, since every message on the mesh and every GlobalBest entry
// is keyed by puzzle id.
func (a *LocalAPI) Fetch() ([]byte, error) {
	raw, err := os.ReadFile(a.Filename)
	if err != nil {
		return nil, fmt.Errorf("api: read local puzzle: %w", err)
	}
	return EnsureID(raw)
}

// Submit accepts any solution, scoring it as the plain square count.
func (a *LocalAPI) Submit(puzzleID string, squares []puzzle.Square) (Response, error) {
	return Response{Score: len(squares), TimePenalty: 0, Errors: []string{}}, nil
}

// EnsureID returns raw unchanged if the puzzle JSON already carries a
// non-empty "id", otherwise re-encodes it with a generated one.
func EnsureID(raw []byte) ([]byte, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("api: invalid puzzle JSON: %w", err)
	}
	var id string
	if v, ok := m["id"]; ok {
		_ = json.Unmarshal(v, &id)
	}
	if id != "" {
		return raw, nil
	}
	idJSON, _ := json.Marshal(uuid.NewString())
	m["id"] = idJSON
	out, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("api: re-encode puzzle: %w", err)
	}
	return out, nil
}
