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
	"fmt"
	"math"
)

// Stats accumulates the per-puzzle score and solve latency across a batch
// run, for the summary line printed after the last submission.
type Stats struct {
	scores  []float64
	timings []float64
}

// Record logs one solved puzzle: its final score and how long after the
// announce the winning solution arrived, in seconds.
func (s *Stats) Record(score, timing float64) {
	s.scores = append(s.scores, score)
	s.timings = append(s.timings, timing)
}

// Count returns the number of recorded puzzles.
func (s *Stats) Count() int {
	return len(s.scores)
}

// Summary renders the batch result as mean +- half-width at 90% confidence
// in the standard error of the mean.
func (s *Stats) Summary() string {
	confidence := 1.96 / math.Sqrt(float64(len(s.scores)))
	return fmt.Sprintf("mean score %.1f +- %.1f, mean timing %.2f +- %.2f",
		mean(s.scores), stddev(s.scores)*confidence,
		mean(s.timings), stddev(s.timings)*confidence)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population standard deviation (divide by n, not n-1).
func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
