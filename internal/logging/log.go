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

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line.
// The functions return Logger instances which are configured with
// the necessary backends and formatters.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"

	"github.com/jansel/gridea/internal/config"
	"github.com/jansel/gridea/internal/util"
)

var (
	standardLog *logging.Logger
	solverLog   *logging.Logger
	testLog     *logging.Logger
	gossipLog   *logging.Logger
	gossipFile  *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	// global loggers
	standardLog = logging.MustGetLogger("standard")
	solverLog = logging.MustGetLogger("solver")
	testLog = logging.MustGetLogger("test")
	gossipLog = logging.MustGetLogger("gossip")
}

// GetLog returns an instance of a standard Logger preconfigured with an
// os.Stdout backend and a "normal" logging format (e.g. time - file - level).
func GetLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	standardBackEnd.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(standardBackEnd)
	return standardLog
}

// GetSolverLog returns an instance of a standard Logger preconfigured with an
// os.Stdout backend and a "normal" logging format, for use inside the
// generational loop itself.
func GetSolverLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	solverBackEnd := logging.AddModuleLevel(backend1Formatter)
	solverBackEnd.SetLevel(logging.Level(config.LogLevel), "")
	solverLog.SetBackend(solverBackEnd)
	return solverLog
}

// GetTestLog returns an instance of a standard Logger preconfigured with an
// os.Stdout backend and a "normal" logging format, for use in tests.
func GetTestLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	testBackEnd := logging.AddModuleLevel(backend1Formatter)
	testBackEnd.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(testBackEnd)
	return testLog
}

// GetGossipLog returns a special Logger preconfigured for logging all
// gossip-mesh protocol traffic to os.Stdout and to a per-process file in
// the configured log folder, at the level set by config.GossipLogLevel.
// Format is "time GOSSIP <message>". Every worker process on a host runs
// its own mesh, so the file name carries the process id to keep their
// protocol logs apart.
func GetGossipLog() *logging.Logger {
	gossipFormat := logging.MustStringFormatter(`%{time:15:04:05.000} GOSSIP %{message}`)
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, gossipFormat)
	gossipBackEnd1 := logging.AddModuleLevel(backend1Formatter)
	gossipBackEnd1.SetLevel(logging.Level(config.GossipLogLevel), "")
	gossipLog.SetBackend(gossipBackEnd1)

	logPath, err := util.ResolveFolder(config.Settings.Log.LogPath)
	if err != nil {
		log.Println("gossip log folder could not be found:", err)
		return gossipLog
	}

	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	logFilePath := filepath.Join(logPath, fmt.Sprintf("%s_gossip_%d.log", exeName, os.Getpid()))

	gossipFile, err = os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("gossip log file could not be created:", err)
		return gossipLog
	}
	backend2 := logging.NewLogBackend(gossipFile, "", log.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, gossipFormat)
	gossipBackEnd2 := logging.AddModuleLevel(backend2Formatter)
	gossipBackEnd2.SetLevel(logging.Level(config.GossipLogLevel), "")
	multi := logging.SetBackend(gossipBackEnd1, gossipBackEnd2)
	gossipLog.SetBackend(multi)

	return gossipLog
}
