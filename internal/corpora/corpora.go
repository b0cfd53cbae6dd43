// Package corpora runs table-driven tests whose table lives in the file
// system: every file with a given extension under a testdata root is one
// test case, and expected outputs sit next to it as sibling files.
package corpora

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes one corpus of test files.
type Corpus struct {
	// Root of the test data directory, relative to the test file that
	// calls [Corpus.Run].
	Root string

	// Refresh names an environment variable; when it holds a glob, the
	// matching cases rewrite their expected output files instead of
	// comparing, and the run fails so refreshed goldens are never
	// mistaken for a passing build.
	Refresh string

	// Extension (without the dot) of the files that define test cases,
	// e.g. "py".
	Extension string

	// Outputs the test produces, one per element of the slice returned
	// by Test.
	Outputs []Output

	// Test executes one case and returns its outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output describes one expected output of a test case.
type Output struct {
	// Extension is appended to the case file's name to find the golden
	// file, so extension "out" for case "foo.py" reads "foo.py.out". An
	// empty Extension compares against the case file itself, which is how
	// round-trip tests assert that output equals input without duplicate
	// goldens.
	Extension string

	// Compare overrides the comparison; nil means byte equality with a
	// unified diff on mismatch.
	Compare Compare
}

// Compare returns "" when got matches want, or a failure message.
type Compare func(got, want string) string

func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking testdata:", err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no .%s files under %q", c.Extension, root)
	}

	var refreshGlob string
	if c.Refresh != "" {
		refreshGlob = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refreshGlob) {
			t.Fatalf("corpora: invalid glob in $%s: %q", c.Refresh, refreshGlob)
		}
		if refreshGlob != "" {
			t.Logf("corpora: refreshing expected outputs because %s=%s", c.Refresh, refreshGlob)
			t.Fail()
		}
	}

	for _, casePath := range cases {
		name, _ := filepath.Rel(testDir, casePath)
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(casePath)
			if err != nil {
				t.Fatalf("corpora: error while loading %q: %v", casePath, err)
			}
			input := string(data)
			results := c.Test(t, name, input)
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: Test returned %d outputs, corpus declares %d", len(results), len(c.Outputs))
			}

			refresh, _ := doublestar.Match(refreshGlob, name)
			for i, output := range c.Outputs {
				goldenPath := casePath
				if output.Extension != "" {
					goldenPath += "." + output.Extension
				}

				if refresh && output.Extension != "" {
					writeGolden(t, goldenPath, results[i])
					continue
				}

				var want string
				if output.Extension == "" {
					want = input
				} else {
					data, err := os.ReadFile(goldenPath)
					if err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Errorf("corpora: error while loading %q: %v", goldenPath, err)
						continue
					}
					want = string(data)
				}

				cmp := output.Compare
				if cmp == nil {
					cmp = diffCompare
				}
				if msg := cmp(results[i], want); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", goldenPath, msg)
				}
			}
		})
	}
}

func writeGolden(t *testing.T, path, content string) {
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		t.Errorf("corpora: error while writing %q: %v", path, err)
	}
}

func diffCompare(got, want string) string {
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
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
