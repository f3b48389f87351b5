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

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFileRelativeToCwd(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { require.NoError(t, os.Chdir(cwd)) }()
	require.NoError(t, os.Chdir(dir))

	f := filepath.Join(dir, "gridea.toml")
	require.NoError(t, os.WriteFile(f, []byte("[Log]\n"), 0644))

	got, err := ResolveFile("gridea.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(f), got)
}

func TestResolveFileNotFound(t *testing.T) {
	_, err := ResolveFile("does-not-exist-anywhere.toml")
	assert.Error(t, err)
}

func TestResolveFileAbsolute(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "gridea.toml")
	require.NoError(t, os.WriteFile(f, []byte("[Log]\n"), 0644))

	got, err := ResolveFile(f)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(f), got)
}

func TestResolveFolderRelativeToCwd(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { require.NoError(t, os.Chdir(cwd)) }()
	require.NoError(t, os.Chdir(dir))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "logs"), 0755))

	got, err := ResolveFolder("logs")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(filepath.Join(dir, "logs")), got)
}

func TestResolveFolderNotFound(t *testing.T) {
	_, err := ResolveFolder("does-not-exist-anywhere")
	assert.Error(t, err)
}

func TestResolveFolderRejectsFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "not-a-folder")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0644))
	_, err := ResolveFolder(f)
	assert.Error(t, err, "a regular file must not resolve as a folder")
}
