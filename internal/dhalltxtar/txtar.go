// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dhalltxtar runs table-driven parser tests rooted in txtar golden
// files: each archive holds one Dhall source file plus an "out/<name>"
// golden file that a test fills in with whatever it wants to check (an AST
// dump, an error message, a reformatted source). Trimmed from
// internal/cuetxtar down to what a grammar-only front end needs: there is
// no build.Instance/load.Config layer here, since this module has no
// import-resolution or build-graph concept to load against.
package dhalltxtar

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// envUpdate names the environment variable that, when non-empty, causes a
// failing comparison to rewrite its txtar file's golden section instead of
// reporting an error.
const envUpdate = "DHALL_UPDATE"

// UpdateGoldenFiles reports whether a failing golden comparison should
// overwrite the txtar archive on disk rather than fail the test.
var UpdateGoldenFiles = os.Getenv(envUpdate) != ""

// TxTarTest runs every *.txtar file found under Root (or its
// subdirectories) as a subtest.
type TxTarTest struct {
	// Root directory to walk for ".txtar" files.
	Root string

	// Name is this suite's unique name; golden output lives under
	// "out/<Name>" inside each archive.
	Name string

	// Skip maps a test name to a reason to skip it.
	Skip map[string]string
}

// Test is a single txtar-file-backed test case, embedding *testing.T so it
// can be used directly for reporting.
type Test struct {
	*testing.T

	Archive *txtar.Archive

	// Dir is the absolute directory the archive's path was loaded from.
	Dir string

	prefix   string
	buf      *bytes.Buffer
	outFiles []file
}

type file struct {
	name string
	buf  *bytes.Buffer
}

// Write implements io.Writer, appending to the main golden output (the
// one compared against the archive's "out/<name>" entry).
func (t *Test) Write(b []byte) (int, error) {
	if t.buf == nil {
		t.buf = &bytes.Buffer{}
		t.outFiles = append(t.outFiles, file{t.prefix, t.buf})
	}
	return t.buf.Write(b)
}

// Writer returns a named secondary golden output, compared against
// "out/<name>/<sub>" in the archive. An empty sub is equivalent to Write.
func (t *Test) Writer(sub string) io.Writer {
	name := t.prefix
	if sub != "" {
		name = path.Join(t.prefix, sub)
	}
	for _, f := range t.outFiles {
		if f.name == name {
			return f.buf
		}
	}
	w := &bytes.Buffer{}
	t.outFiles = append(t.outFiles, file{name, w})
	if name == t.prefix {
		t.buf = w
	}
	return w
}

// Source returns the content of the named file in the archive ("input.dhall"
// if name is empty), failing the test if it isn't present.
func (t *Test) Source(name string) []byte {
	t.Helper()
	if name == "" {
		name = "input.dhall"
	}
	for _, f := range t.Archive.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("txtar archive has no file %q", name)
	return nil
}

// HasTag reports whether the archive's comment section has a bare "#key"
// line.
func (t *Test) HasTag(key string) bool {
	want := []byte("#" + key)
	s := bufio.NewScanner(bytes.NewReader(t.Archive.Comment))
	for s.Scan() {
		if bytes.Equal(bytes.TrimSpace(s.Bytes()), want) {
			return true
		}
	}
	return false
}

// Value returns the value of a "#key: value" line in the archive's comment
// section, and whether it was present.
func (t *Test) Value(key string) (string, bool) {
	prefix := []byte("#" + key + ":")
	s := bufio.NewScanner(bytes.NewReader(t.Archive.Comment))
	for s.Scan() {
		if b := s.Bytes(); bytes.HasPrefix(b, prefix) {
			return string(bytes.TrimSpace(b[len(prefix):])), true
		}
	}
	return "", false
}

// Bool reports whether "#key: true" is present in the archive's comment
// section.
func (t *Test) Bool(key string) bool {
	v, ok := t.Value(key)
	return ok && v == "true"
}

// Run walks x.Root for "*.txtar" files and runs f once per archive found,
// comparing whatever f wrote via Write/Writer against the archive's
// "out/<x.Name>..." entries and failing on mismatch (or rewriting them, if
// UpdateGoldenFiles is set).
func (x *TxTarTest) Run(t *testing.T, f func(tc *Test)) {
	t.Helper()

	err := filepath.WalkDir(x.Root, func(fullpath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(fullpath) != ".txtar" {
			return nil
		}

		rel, relErr := filepath.Rel(x.Root, fullpath)
		if relErr != nil {
			rel = filepath.Base(fullpath)
		}
		testName := strings.TrimSuffix(filepath.ToSlash(rel), ".txtar")

		t.Run(testName, func(t *testing.T) {
			a, err := txtar.ParseFile(fullpath)
			if err != nil {
				t.Fatalf("error parsing txtar file: %v", err)
			}

			tc := &Test{
				T:       t,
				Archive: a,
				Dir:     filepath.Dir(fullpath),
				prefix:  path.Join("out", x.Name),
			}

			if tc.HasTag("skip") {
				t.Skip()
			}
			if msg, ok := x.Skip[testName]; ok {
				t.Skip(msg)
			}

			f(tc)

			index := make(map[string]int, len(a.Files))
			for i, ff := range a.Files {
				index[ff.Name] = i
			}

			k := len(a.Files)
			for _, sub := range tc.outFiles {
				if i, ok := index[sub.name]; ok {
					k = i
					break
				}
			}
			files := a.Files[:k:k]

			update := false
			for _, sub := range tc.outFiles {
				result := sub.buf.Bytes()
				files = append(files, txtar.File{Name: sub.name})
				gold := &files[len(files)-1]

				if i, ok := index[sub.name]; ok {
					gold.Data = a.Files[i].Data
					delete(index, sub.name)
					if bytes.Equal(gold.Data, result) {
						continue
					}
				}

				if UpdateGoldenFiles {
					update = true
					gold.Data = result
					continue
				}

				t.Errorf("result for %s differs: (-want +got)\n%s",
					sub.name, cmp.Diff(string(gold.Data), string(result)))
			}

			for _, ff := range a.Files[k:] {
				if _, ok := index[ff.Name]; ok {
					files = append(files, ff)
				}
			}
			a.Files = files

			if update {
				if err := os.WriteFile(fullpath, txtar.Format(a), 0o644); err != nil {
					t.Fatal(err)
				}
			}
		})

		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
