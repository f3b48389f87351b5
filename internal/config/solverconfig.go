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

// solverConfiguration is a data structure to hold the configuration of an
// instance of the evolutionary solver.
type solverConfiguration struct {
	// Limit is the number of seconds to run the generational loop for a puzzle.
	Limit float64

	// ShareFreq is how often, in seconds, a worker publishes its best solution.
	ShareFreq float64

	// PopSize is the number of solutions kept in the population after each generation.
	PopSize int

	// SpawnCount is the number of new solutions spawned each generation.
	SpawnCount int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Solver.Limit = 9.6
	Settings.Solver.ShareFreq = 0.5
	Settings.Solver.PopSize = 1000
	Settings.Solver.SpawnCount = 100
}

// sanity-check values read from the config file. The generational loop
// cannot run with an empty population or spawn region, and a non-positive
// limit or share frequency would make the worker exit or broadcast in a
// busy loop.
func setupSolver() {
	if Settings.Solver.Limit <= 0 {
		Settings.Solver.Limit = 9.6
	}
	if Settings.Solver.ShareFreq <= 0 {
		Settings.Solver.ShareFreq = 0.5
	}
	if Settings.Solver.PopSize < 1 {
		Settings.Solver.PopSize = 1000
	}
	if Settings.Solver.SpawnCount < 1 {
		Settings.Solver.SpawnCount = 100
	}
}
