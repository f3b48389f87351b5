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

// Package api is the thin HTTP glue to the contest server: fetch a puzzle,
// submit a solution. It contains no solver logic.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jansel/gridea/internal/puzzle"
)

// DefaultBaseURL is the contest API server.
const DefaultBaseURL = "http://techchallenge.cimpress.com"

// Response is the contest server's answer to a solution submission.
type Response struct {
	Score       int      `json:"score"`
	TimePenalty int      `json:"timePenalty"`
	Errors      []string `json:"errors"`
}

// API is the common surface of the real contest client and the local
// file-backed testing stand-in.
type API interface {
	// Fetch retrieves a new puzzle instance as raw wire bytes, suitable for
	// broadcasting onto the gossip mesh verbatim.
	Fetch() ([]byte, error)

	// Submit posts a solution for the given puzzle id.
	Submit(puzzleID string, squares []puzzle.Square) (Response, error)
}

// InvalidSolutionError is returned by Submit when the server rejects the
// solution. It is fatal by design: a rejected solution means a bug in the
// scorer, not a transient condition worth retrying.
type InvalidSolutionError struct {
	Errors []string
}

func (e *InvalidSolutionError) Error() string {
	return fmt.Sprintf("api: solution rejected: %s", strings.Join(e.Errors, "; "))
}

// Client talks to the contest API server over HTTP.
type Client struct {
	baseURL string
	key     string
	mode    string
	http    *http.Client
}

// NewClient constructs a contest API client. mode must be "trial" or
// "contest"; key is the API key from the registration site.
func NewClient(baseURL, key, mode string) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("api: key is required for mode %q", mode)
	}
	if mode != "trial" && mode != "contest" {
		return nil, fmt.Errorf("api: unknown mode %q", mode)
	}
	return &Client{
		baseURL: baseURL,
		key:     key,
		mode:    mode,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Fetch retrieves a new puzzle instance from GET <base>/<key>/<mode>/puzzle.
func (c *Client) Fetch() ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/puzzle", c.baseURL, c.key, c.mode)
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("api: fetch puzzle: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api: fetch puzzle: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: fetch puzzle: %w", err)
	}
	return body, nil
}

// Submit posts a solution to POST <base>/<key>/<mode>/solution and decodes
// the server's verdict. A non-empty errors array becomes an
// InvalidSolutionError.
func (c *Client) Submit(puzzleID string, squares []puzzle.Square) (Response, error) {
	payload, err := puzzle.EncodeSolution(puzzleID, squares)
	if err != nil {
		return Response{}, fmt.Errorf("api: submit: %w", err)
	}
	url := fmt.Sprintf("%s/%s/%s/solution", c.baseURL, c.key, c.mode)
	resp, err := c.http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("api: submit: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("api: submit: %w", err)
	}
	var r Response
	if err := json.Unmarshal(body, &r); err != nil {
		return Response{}, fmt.Errorf("api: submit: decode response: %w", err)
	}
	if len(r.Errors) > 0 {
		return r, &InvalidSolutionError{Errors: r.Errors}
	}
	return r, nil
}
