package result

import (
	"fmt"
	"os"
	"strings"
)

// Fixed narrative lines for test results.
const (
	// MissingLogMessage is reported when the result log cannot be found, so
	// the outcome of individual tests is unknown.
	MissingLogMessage = "No result log saved, cannot determine whether tests failed or not."

	// UnresolvedFailureMessage is reported when the test command failed but the
	// log shows no failing package, which usually points at the harness itself.
	UnresolvedFailureMessage = "The test command failed, but no test failures detected in the result log."

	// TestFailuresHeading introduces the list of failing packages and tests.
	TestFailuresHeading = "Test failures:\n"
)

// TestResult is the outcome of testing one module.
type TestResult struct {
	path          string
	failed        bool
	resultLogPath string
	junitPath     string
}

// NewTestResult builds a test result for a module. failed is the exit status
// of the test command; resultLogPath is the JSON event log it wrote (empty if
// none was requested); junitPath is an optional JUnit report that is carried
// along but never read here.
func NewTestResult(path string, failed bool, resultLogPath, junitPath string) *TestResult {
	return &TestResult{
		path:          path,
		failed:        failed,
		resultLogPath: resultLogPath,
		junitPath:     junitPath,
	}
}

// Path returns the module path.
func (r *TestResult) Path() string { return r.path }

// Failed reports whether the test command failed.
func (r *TestResult) Failed() bool { return r.failed }

// Type returns "Tests".
func (r *TestResult) Type() string { return TypeTest }

// ResultLogPath returns the location of the JSON event log, if any.
func (r *TestResult) ResultLogPath() string { return r.resultLogPath }

// JUnitPath returns the location of the JUnit report, if any.
func (r *TestResult) JUnitPath() string { return r.junitPath }

func (r *TestResult) sealed() {}

func (r *TestResult) evaluate(flavor Flavor, env Env) (bool, string, error) {
	if !r.failed {
		return false, "", nil
	}

	var sb strings.Builder
	sb.WriteString(failureHeader(TypeTest, flavor, env))

	if !r.hasResultLog() {
		sb.WriteString(MissingLogMessage)
		return true, sb.String(), nil
	}

	failures, err := ClassifyFile(r.resultLogPath)
	if err != nil {
		return true, sb.String(), err
	}

	RenderFailures(&sb, failures, env)
	return true, sb.String(), nil
}

func (r *TestResult) hasResultLog() bool {
	if r.resultLogPath == "" {
		return false
	}
	_, err := os.Stat(r.resultLogPath)
	return err == nil
}

// RenderFailures writes the failing packages and tests to sb, packages and
// tests each in ascending order. When nothing is left failing it writes
// UnresolvedFailureMessage instead.
func RenderFailures(sb *strings.Builder, failures *Failures, env Env) {
	if failures.Empty() {
		sb.WriteString(UnresolvedFailureMessage)
		return
	}

	sb.WriteString(TestFailuresHeading)
	for _, pkg := range failures.Packages() {
		tests := failures.Tests(pkg)
		if len(tests) == 0 {
			fmt.Fprintf(sb, "- %s package failed due to panic / race condition\n", pkg)
			continue
		}
		for _, name := range tests {
			fmt.Fprintf(sb, "- %s %s\n", pkg, name)
			if env.InCI && env.Links != nil {
				fmt.Fprintf(sb, "  See this test name on main in Test Visibility at %s\n", env.Links.TestLink(pkg, name))
			}
		}
	}
}
