// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package corpora runs golden-file tests: each input file in a directory is
// a test case, and its expected outputs live in files next to it.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/bufbuild/filterexpr/internal"
)

// Corpus describes a directory of test cases. This is table-driven testing
// where the table lives in the file system.
type Corpus struct {
	// The directory holding the test cases, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a glob. Test cases whose names match
	// it have their outputs rewritten instead of checked.
	Refresh string

	// The file extension (without a dot) of files which define a test case,
	// e.g. "filter".
	Extension string

	// The outputs of each test case. For a test case foo.filter and an
	// output with extension "tree.txt", the expected output is read from
	// foo.filter.tree.txt. A missing file means the output is expected to be
	// empty.
	Outputs []Output

	// Test runs a single test case, returning one string per element of
	// Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one of the outputs of a test case.
type Output struct {
	// The suffix appended to the test case's file name to find the expected
	// output.
	Extension string

	// Compares the outputs. If nil, they are compared byte for byte and
	// mismatches are shown as a unified diff.
	Compare Compare
}

// Compare compares a test output against its expectation.
//
// Returns the empty string if they match, otherwise an explanation of the
// mismatch.
type Compare func(got, want string) string

// Run runs every test case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	testDir := internal.CallerDir(1)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			tests = append(tests, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: error while walking %q: %v", root, err)
	}
	if len(tests) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}
	slices.Sort(tests)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		// A refreshing run must never pass, so that it is not mistaken for
		// a real one.
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range tests {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)

		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while reading %q: %v", path, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refreshing := refresh != ""
			if refreshing {
				refreshing, _ = doublestar.Match(refresh, name)
			}
			for i, output := range c.Outputs {
				outPath := fmt.Sprint(path, ".", output.Extension)
				if refreshing {
					if err := write(outPath, results[i]); err != nil {
						t.Errorf("corpora: error while refreshing %q: %v", outPath, err)
					}
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while reading %q: %v", outPath, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", outPath, msg)
				}
			}
		})
	}
}

// write replaces the file at path with text, or deletes it if text is empty.
func write(path, text string) error {
	if text == "" {
		err := os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// Diff is the default [Compare]. It compares byte for byte, and describes a
// mismatch with a colorized unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}
