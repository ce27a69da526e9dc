package result

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/mrz1836/verdict/internal/errors"
)

// Actions of interest in a test event. Every other action is ignored.
const (
	ActionPass = "pass"
	ActionFail = "fail"
)

// TestEvent is one line of a `go test -json` / gotestsum result log.
// Fields other than Package, Test and Action are ignored.
type TestEvent struct {
	Package string `json:"Package"`
	Test    string `json:"Test,omitempty"`
	Action  string `json:"Action"`
}

// IsPackageLevel reports whether the event describes a whole package.
func (e TestEvent) IsPackageLevel() bool {
	return e.Package != "" && e.Test == ""
}

// IsTestLevel reports whether the event describes a single test.
func (e TestEvent) IsTestLevel() bool {
	return e.Package != "" && e.Test != ""
}

// Failures is the final state of a retry-inclusive event stream: the packages
// and tests that are still failing once every event has been applied.
//
// The log is assumed to be chronological, with a retry's outcome written
// after the failure it retries. A later pass for a key clears an earlier
// failure for that same key and says nothing about sibling keys.
type Failures struct {
	packages map[string]struct{}
	tests    map[string]map[string]struct{}
}

func newFailures() *Failures {
	return &Failures{
		packages: make(map[string]struct{}),
		tests:    make(map[string]map[string]struct{}),
	}
}

// apply folds one event into the failure sets.
func (f *Failures) apply(e TestEvent) {
	switch {
	case e.IsPackageLevel():
		switch e.Action {
		case ActionFail:
			f.packages[e.Package] = struct{}{}
		case ActionPass:
			// A package that was rerun as a whole and passed is no longer failing.
			delete(f.packages, e.Package)
		}
	case e.IsTestLevel():
		switch e.Action {
		case ActionFail:
			tests, ok := f.tests[e.Package]
			if !ok {
				tests = make(map[string]struct{})
				f.tests[e.Package] = tests
			}
			tests[e.Test] = struct{}{}
		case ActionPass:
			if tests, ok := f.tests[e.Package]; ok {
				delete(tests, e.Test)
			}
		}
	}
}

// Empty reports whether no package is left failing.
func (f *Failures) Empty() bool {
	return len(f.packages) == 0
}

// Packages returns the failing packages in ascending lexical order.
func (f *Failures) Packages() []string {
	return slices.Sorted(maps.Keys(f.packages))
}

// Tests returns the failing tests of pkg in ascending lexical order.
// An empty result for a failing package means the package failed without
// any test being isolated (panic, race, build failure, timeout).
func (f *Failures) Tests(pkg string) []string {
	return slices.Sorted(maps.Keys(f.tests[pkg]))
}

// Classify reads a newline-delimited JSON event stream and returns what is
// still failing at the end of it. Blank lines are skipped. A line that is not
// a JSON object stops classification with an error wrapping ErrMalformedEvent.
func Classify(r io.Reader) (*Failures, error) {
	failures := newFailures()
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrapf(fmt.Errorf("%w: %w", errors.ErrResultLogUnreadable, readErr), "line %d", lineNo)
		}

		if len(bytes.TrimSpace(line)) > 0 {
			var event TestEvent
			if err := json.Unmarshal(line, &event); err != nil {
				return nil, errors.Wrapf(fmt.Errorf("%w: %w", errors.ErrMalformedEvent, err), "line %d", lineNo)
			}
			failures.apply(event)
		}

		if readErr == io.EOF {
			return failures, nil
		}
	}
}

// ClassifyFile classifies the result log at path.
func ClassifyFile(path string) (*Failures, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the runner or the command line
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrResultLogUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	failures, err := Classify(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return failures, nil
}
