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

// The gridea-submit binary drives a running solver cluster against the
// contest API: it fetches a puzzle, posts it onto the mesh, waits the time
// limit, then submits the cluster's best solution. With --mode local it
// serves a fixed puzzle file instead of talking to the contest server.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jansel/gridea/internal/api"
	"github.com/jansel/gridea/internal/config"
	"github.com/jansel/gridea/internal/gossip"
	"github.com/jansel/gridea/internal/logging"
	"github.com/jansel/gridea/internal/point"
	"github.com/jansel/gridea/internal/puzzle"
	"github.com/jansel/gridea/internal/scratch"
	"github.com/jansel/gridea/internal/solver"
)

// cooldown between consecutive puzzles in a batch run, giving in-flight
// best messages from the previous puzzle time to drain.
const cooldown = 2 * time.Second

func main() {
	configFile := flag.String("config", "./gridea.toml", "path to configuration settings file")
	key := flag.String("key", "", "key for challenge API server")
	mode := flag.String("mode", "local", "environment to report to challenge API\n(local|trial|contest)")
	limit := flag.Float64("limit", 9.6, "seconds to wait before reporting results")
	hostname := flag.String("hostname", "localhost:8099", "worker process cluster hostname:port to connect to")
	filename := flag.String("filename", "example_puzzle.json", "puzzle JSON file for --mode=local")
	count := flag.Int("count", 1, "count of number of puzzles to solve")
	debug := flag.Bool("debug", false, "print verbose debugging output")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if *debug {
		config.LogLevel = config.LogLevels["debug"]
		config.GossipLogLevel = config.LogLevels["debug"]
	}
	log := logging.GetLog()

	var server api.API
	if *mode == "local" {
		server = api.NewLocalAPI(*filename)
	} else {
		c, err := api.NewClient(api.DefaultBaseURL, *key, *mode)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(2)
		}
		server = c
	}

	addr, err := gossip.ParseHostPort(*hostname)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(2)
	}

	best := gossip.NewGlobalBest()
	mesh := gossip.NewMesh(best, config.Settings.Gossip.SharedSecret)

	connected := make(chan struct{})
	dialTimeout := time.Duration(config.Settings.Gossip.DialTimeout) * time.Second
	mesh.Connect(addr, dialTimeout, func() { close(connected) })
	select {
	case <-connected:
	case <-mesh.Done():
		log.Error("could not connect to cluster")
		os.Exit(1)
	}

	var stats api.Stats
	waitFor := time.Duration(*limit * float64(time.Second))
	for i := 1; i <= *count; i++ {
		if err := runOnePuzzle(server, mesh, i, waitFor, &stats); err != nil {
			log.Errorf("puzzle %d failed: %v", i, err)
			os.Exit(1)
		}
		if i < *count {
			time.Sleep(cooldown)
		}
	}
	fmt.Println(stats.Summary())
	mesh.Shutdown()
}

// runOnePuzzle fetches one puzzle, posts it to the cluster, waits out the
// time limit and submits whatever the cluster converged on.
func runOnePuzzle(server api.API, mesh *gossip.Mesh, count int, limit time.Duration, stats *api.Stats) error {
	raw, err := server.Fetch()
	if err != nil {
		return err
	}
	p, err := puzzle.Decode(raw)
	if err != nil {
		return err
	}

	start := time.Now()
	if _, err := mesh.InjectPuzzle(raw); err != nil {
		return err
	}
	time.Sleep(limit)

	_, score, hasScore, solution, timestamp := mesh.Best().Snapshot()
	perm := make([]point.Point, len(solution))
	for i, w := range solution {
		perm[i] = point.Point(w)
	}

	g := scratch.NewGrid(p.Height, p.Width)
	g.CopyFrom(p.Flat())
	squares := solver.ExpandSolution(p, g, perm)
	if !hasScore {
		// no worker reported in time - the all-1x1 expansion above is
		// still a valid submission
		score = len(squares)
		timestamp = time.Now()
	}

	resp, err := server.Submit(p.ID, squares)
	var invalid *api.InvalidSolutionError
	if errors.As(err, &invalid) {
		return fmt.Errorf("scorer bug: %w", invalid)
	}
	if err != nil {
		return err
	}

	solveLatency := timestamp.Sub(start).Seconds()
	fmt.Printf("%6.3f: %3d OK %3d + %3d: %dx%d %.3f\n",
		time.Since(start).Seconds(), count, resp.Score, resp.TimePenalty,
		p.Height, p.Width, solveLatency)
	stats.Record(float64(score), solveLatency)
	return nil
}
