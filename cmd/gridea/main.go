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

// The gridea binary runs one node of the square-packing solver cluster.
// Depending on flags it is either a coordinator (listens and relays, spawns
// worker processes), a worker (dials an upstream and solves), or a local
// single-puzzle solver.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jansel/gridea/internal/api"
	"github.com/jansel/gridea/internal/config"
	"github.com/jansel/gridea/internal/gossip"
	"github.com/jansel/gridea/internal/logging"
	"github.com/jansel/gridea/internal/point"
	"github.com/jansel/gridea/internal/puzzle"
	"github.com/jansel/gridea/internal/scratch"
	"github.com/jansel/gridea/internal/solver"
	"github.com/jansel/gridea/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./gridea.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	limit := flag.Float64("limit", 9.6, "number of seconds to run for")
	shareFreq := flag.Float64("share-freq", 0.5, "how often in seconds to report best")
	popSize := flag.Int("pop-size", 1000, "number of solutions kept in the population")
	spawnCount := flag.Int("spawn-count", 100, "number of new solutions added each generation")
	link := flag.String("link", "", "join this network to some other hostname:port")
	port := flag.Int("port", 8099, "port to listen on")
	filename := flag.String("filename", "", "solve a puzzle from a local JSON filename")
	workers := flag.Int("workers", 0, "create a network with a given number of workers")
	debug := flag.Bool("debug", false, "print verbose debugging output")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	// command line options overwrite config file settings
	config.Settings.Solver.Limit = *limit
	config.Settings.Solver.ShareFreq = *shareFreq
	config.Settings.Solver.PopSize = *popSize
	config.Settings.Solver.SpawnCount = *spawnCount
	config.Settings.Gossip.Port = *port
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
		config.GossipLogLevel = lvl
	}
	if *debug {
		config.LogLevel = config.LogLevels["debug"]
		config.GossipLogLevel = config.LogLevels["debug"]
	}

	log := logging.GetLog()

	if *filename != "" && *workers > 0 {
		log.Error("--filename and --workers are mutually exclusive")
		os.Exit(2)
	}

	params := solver.Params{
		Limit:      secondsToDuration(config.Settings.Solver.Limit),
		ShareFreq:  secondsToDuration(config.Settings.Solver.ShareFreq),
		PopSize:    config.Settings.Solver.PopSize,
		SpawnCount: config.Settings.Solver.SpawnCount,
	}

	switch {
	case *filename != "":
		if err := solveLocal(*filename, params); err != nil {
			log.Errorf("local solve failed: %v", err)
			os.Exit(1)
		}
	case *workers > 0:
		if err := runCoordinator(*workers, *port, *link, params, *debug); err != nil {
			log.Errorf("coordinator failed: %v", err)
			os.Exit(1)
		}
	case *link != "":
		if err := runWorker(*link, params); err != nil {
			log.Errorf("worker failed: %v", err)
			os.Exit(1)
		}
	default:
		log.Error("one of --filename, --workers or --link is required")
		flag.Usage()
		os.Exit(2)
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// solveLocal runs the full solver on one puzzle file without any
// networking and writes the expanded square list to <filename>.result.
func solveLocal(filename string, params solver.Params) error {
	defer util.TimeTrack(time.Now(), "local solve")
	raw, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	raw, err = api.EnsureID(raw)
	if err != nil {
		return err
	}
	p, err := puzzle.Decode(raw)
	if err != nil {
		return err
	}

	best := gossip.NewGlobalBest()
	best.Reset(p.ID)
	mesh := gossip.NewMesh(best, config.Settings.Gossip.SharedSecret)

	w := solver.NewWorker(point.NewSeededPRNG(), mesh)
	perm := w.Solve(p, params)

	g := scratch.NewGrid(p.Height, p.Width)
	g.CopyFrom(p.Flat())
	squares := solver.ExpandSolution(p, g, perm)

	result, err := json.Marshal(squares)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename+".result", result, 0644); err != nil {
		return err
	}
	out.Printf("score=%d, result written to %s.result\n", len(squares), filename)
	return nil
}

// puzzleSolver adapts a solver.Worker to the gossip mesh's dispatch
// interface: decode the announce, solve it, done. Publishing happens from
// inside the worker loop through the mesh itself.
type puzzleSolver struct {
	worker *solver.Worker
	params solver.Params
}

func (s *puzzleSolver) Solve(raw []byte) {
	p, err := puzzle.Decode(raw)
	if err != nil {
		logging.GetLog().Warningf("dropping undecodable puzzle announce: %v", err)
		return
	}
	s.worker.Solve(p, s.params)
}

// runWorker dials the upstream node, solves every puzzle announced on the
// mesh, and exits cleanly when the upstream connection drops.
func runWorker(link string, params solver.Params) error {
	addr, err := gossip.ParseHostPort(link)
	if err != nil {
		return err
	}

	best := gossip.NewGlobalBest()
	mesh := gossip.NewMesh(best, config.Settings.Gossip.SharedSecret)
	w := solver.NewWorker(point.NewSeededPRNG(), mesh)
	mesh.SetSolver(&puzzleSolver{worker: w, params: params})

	dialTimeout := time.Duration(config.Settings.Gossip.DialTimeout) * time.Second
	mesh.Connect(addr, dialTimeout, nil)

	<-mesh.Done()
	w.RequestStop()
	return nil
}

// runCoordinator listens for peers, relays messages without solving, and
// launches n copies of this binary as worker processes linked back to the
// listen port. It exits when interrupted or when all workers are gone.
func runCoordinator(n, port int, link string, params solver.Params, debug bool) error {
	best := gossip.NewGlobalBest()
	mesh := gossip.NewMesh(best, config.Settings.Gossip.SharedSecret)

	if _, err := mesh.Listen(port); err != nil {
		return err
	}
	if link != "" {
		addr, err := gossip.ParseHostPort(link)
		if err != nil {
			return err
		}
		dialTimeout := time.Duration(config.Settings.Gossip.DialTimeout) * time.Second
		mesh.Connect(addr, dialTimeout, nil)
	}

	children, err := spawnWorkers(n, port, params, debug)
	if err != nil {
		mesh.Shutdown()
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
		logging.GetLog().Info("interrupted, shutting down")
	case <-mesh.Done():
	}

	// closing the mesh drops every worker's upstream link, which is their
	// signal to exit
	mesh.Shutdown()
	for _, c := range children {
		_ = c.Wait()
	}
	return nil
}

func spawnWorkers(n, port int, params solver.Params, debug bool) ([]*exec.Cmd, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	args := []string{
		"--link", fmt.Sprintf("localhost:%d", port),
		"--limit", strconv.FormatFloat(params.Limit.Seconds(), 'f', -1, 64),
		"--share-freq", strconv.FormatFloat(params.ShareFreq.Seconds(), 'f', -1, 64),
		"--pop-size", strconv.Itoa(params.PopSize),
		"--spawn-count", strconv.Itoa(params.SpawnCount),
	}
	if debug {
		args = append(args, "--debug")
	}

	children := make([]*exec.Cmd, 0, n)
	for i := 0; i < n; i++ {
		c := exec.Command(exe, args...)
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Start(); err != nil {
			for _, started := range children {
				_ = started.Process.Kill()
			}
			return nil, fmt.Errorf("starting worker %d: %w", i, err)
		}
		children = append(children, c)
	}
	logging.GetLog().Infof("started %d worker processes", n)
	return children, nil
}
