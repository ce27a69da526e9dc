package result

import "strings"

// LintFailuresHeading introduces the captured output of failing lint invocations.
const LintFailuresHeading = "Linter failures:\n"

// LintOutput is the captured output of one lint invocation.
type LintOutput struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
}

// LintResult is the outcome of linting one module.
type LintResult struct {
	path    string
	failed  bool
	outputs []LintOutput
}

// NewLintResult builds a lint result for a module. The result is failed
// exactly when at least one invocation exited non-zero.
func NewLintResult(path string, outputs []LintOutput) *LintResult {
	r := &LintResult{
		path:    path,
		outputs: append([]LintOutput(nil), outputs...),
	}
	for _, o := range outputs {
		if o.ExitCode != 0 {
			r.failed = true
			break
		}
	}
	return r
}

// Path returns the module path.
func (r *LintResult) Path() string { return r.path }

// Failed reports whether any lint invocation failed.
func (r *LintResult) Failed() bool { return r.failed }

// Type returns "Linters".
func (r *LintResult) Type() string { return TypeLint }

// Outputs returns a copy of the captured invocations, in run order.
func (r *LintResult) Outputs() []LintOutput {
	return append([]LintOutput(nil), r.outputs...)
}

func (r *LintResult) sealed() {}

func (r *LintResult) evaluate(flavor Flavor, env Env) (bool, string, error) {
	if !r.failed {
		return false, "", nil
	}

	var sb strings.Builder
	sb.WriteString(failureHeader(TypeLint, flavor, env))
	sb.WriteString(LintFailuresHeading)
	for _, o := range r.outputs {
		if o.ExitCode == 0 {
			continue
		}
		if o.Stdout != "" {
			sb.WriteString(o.Stdout)
			sb.WriteString("\n")
		}
		if o.Stderr != "" {
			sb.WriteString(o.Stderr)
			sb.WriteString("\n")
		}
	}
	return true, sb.String(), nil
}
