// Package result turns the raw output of lint and test runs into a pass/fail
// verdict and a human-readable failure narrative.
//
// A Result is a closed set of two variants, *LintResult and *TestResult. Both
// are built once by the code that ran the underlying tool and are read-only
// afterwards. Evaluate is the single entry point that inspects either variant.
package result

import (
	"fmt"

	"github.com/mrz1836/verdict/internal/errors"
)

// Display labels for each result variant.
const (
	TypeLint = "Linters"
	TypeTest = "Tests"
)

// Result is the outcome of running one tool against one module.
// It is implemented only by *LintResult and *TestResult.
type Result interface {
	// Path is the module path the result belongs to.
	Path() string
	// Failed reports whether the tool signaled failure.
	Failed() bool
	// Type is the display label of the result variant.
	Type() string

	sealed()
}

// LinkResolver returns a deep link to the history of one test on the mainline branch.
type LinkResolver interface {
	TestLink(pkg, test string) string
}

// Env carries the collaborators a narrative depends on.
// The zero value renders plain text with no deep links.
type Env struct {
	// InCI appends a deep link under every failing test when true.
	InCI bool
	// Links builds the deep links. Ignored when nil.
	Links LinkResolver
	// Emphasize marks a line as an error for display. Identity when nil.
	Emphasize func(string) string
}

func (e Env) emphasize(s string) string {
	if e.Emphasize == nil {
		return s
	}
	return e.Emphasize(s)
}

// Evaluate reports whether r failed for the given flavor and renders its
// failure narrative. The narrative is empty whenever failed is false.
//
// A non-nil error means the result could not be classified (for example a
// malformed line in the result log). In that case failed is true and the
// narrative holds only the failure header.
func Evaluate(r Result, flavor Flavor, env Env) (failed bool, narrative string, err error) {
	switch v := r.(type) {
	case nil:
		return false, "", nil
	case *LintResult:
		if v == nil {
			return false, "", nil
		}
		return v.evaluate(flavor, env)
	case *TestResult:
		if v == nil {
			return false, "", nil
		}
		return v.evaluate(flavor, env)
	default:
		return true, "", fmt.Errorf("%w: %T", errors.ErrUnknownResult, r)
	}
}

// failureHeader renders the uniform "<type> failed (<flavor> flavor)" line.
func failureHeader(resultType string, flavor Flavor, env Env) string {
	return env.emphasize(fmt.Sprintf("%s failed (%s flavor)", resultType, flavor)) + "\n"
}
