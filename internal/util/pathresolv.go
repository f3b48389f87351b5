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

// Package util holds small helpers shared across the solver and gossip
// packages that don't belong to either one specifically.
package util

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const debug = false

// ResolveFile resolves a path to a file, trying in order:
//   - as given, if absolute
//   - relative to the working directory
//   - relative to the executable
//   - relative to the user's home directory
//
// Returns an absolute path, or an error if the file cannot be found in any
// of those locations.
func ResolveFile(file string) (string, error) {
	notFound := errors.New(fmt.Sprintf("file could not be found: %s", file))

	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, notFound
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if dir, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(dir), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if dir, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if debug {
		log.Println("file not found", file)
	}
	return file, notFound
}

// ResolveFolder resolves a path to an existing folder, trying the same
// locations in the same order as ResolveFile. The folder is not created.
func ResolveFolder(folder string) (string, error) {
	notFound := fmt.Errorf("folder could not be found: %s", folder)

	folder = filepath.Clean(folder)

	if filepath.IsAbs(folder) {
		if folderExists(folder) {
			return folder, nil
		}
		return folder, notFound
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if dir, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(dir), folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if dir, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(dir, folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if debug {
		log.Println("folder not found", folder)
	}
	return folder, notFound
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info == nil {
		return false
	}
	return info.IsDir()
}
