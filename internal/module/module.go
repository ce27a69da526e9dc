// Package module selects which modules of a multi-module repository a test or
// lint run covers, and which package targets inside each module it passes to
// the tools.
package module

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mrz1836/verdict/internal/errors"
)

// RootPath is the path of the repository's root module.
const RootPath = "."

// DefaultTarget selects every package below a module.
const DefaultTarget = "./..."

// Module is one Go module of the repository and the package targets the
// test and lint tools run against.
type Module struct {
	Path        string   `json:"path" yaml:"path"`
	TestTargets []string `json:"test_targets" yaml:"test_targets"`
	LintTargets []string `json:"lint_targets" yaml:"lint_targets"`
	ShouldTest  bool     `json:"should_test" yaml:"should_test"`
	ShouldLint  bool     `json:"should_lint" yaml:"should_lint"`
}

// New returns a module that is both tested and linted. Empty targets select
// every package of the module.
func New(path string, targets ...string) Module {
	m := Module{
		Path:        CleanPath(path),
		TestTargets: append([]string(nil), targets...),
		LintTargets: append([]string(nil), targets...),
		ShouldTest:  true,
		ShouldLint:  true,
	}
	return m.WithDefaults()
}

// Root is the repository's root module with every package selected.
func Root() Module {
	return New(RootPath)
}

// WithDefaults fills empty target lists with DefaultTarget.
func (m Module) WithDefaults() Module {
	if len(m.TestTargets) == 0 {
		m.TestTargets = []string{DefaultTarget}
	}
	if len(m.LintTargets) == 0 {
		m.LintTargets = []string{DefaultTarget}
	}
	return m
}

// Dir returns the module directory relative to root.
func (m Module) Dir(root string) string {
	return filepath.Join(root, filepath.FromSlash(m.Path))
}

// String returns the module path.
func (m Module) String() string {
	return m.Path
}

// CleanPath normalizes a module path: "", "./" and "." all name the root
// module and trailing slashes are dropped.
func CleanPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return RootPath
	}
	return filepath.ToSlash(filepath.Clean(path))
}

// SplitTargets splits a comma-separated target list, dropping empty entries.
func SplitTargets(targets string) []string {
	var out []string
	for _, t := range strings.Split(targets, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Resolve turns command-line selections into the modules to run:
//
//   - module and targets: that module with exactly those targets
//   - module only: the matching default module
//   - targets only: the root module with those targets
//   - neither: every default module
//
// An empty defaults list means a single root module.
func Resolve(module, targets string, defaults []Module) ([]Module, error) {
	if len(defaults) == 0 {
		defaults = []Module{Root()}
	}

	module = strings.TrimSpace(module)
	targetList := SplitTargets(targets)

	switch {
	case module != "" && len(targetList) > 0:
		return []Module{New(module, targetList...)}, nil
	case module != "":
		want := CleanPath(module)
		for _, m := range defaults {
			if CleanPath(m.Path) == want {
				return []Module{m.WithDefaults()}, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", errors.ErrModuleNotFound, module)
	case len(targetList) > 0:
		return []Module{New(RootPath, targetList...)}, nil
	default:
		out := make([]Module, 0, len(defaults))
		for _, m := range defaults {
			out = append(out, m.WithDefaults())
		}
		return out, nil
	}
}

// Testable returns the modules with ShouldTest set, keeping their order.
func Testable(modules []Module) []Module {
	return filter(modules, func(m Module) bool { return m.ShouldTest })
}

// Lintable returns the modules with ShouldLint set, keeping their order.
func Lintable(modules []Module) []Module {
	return filter(modules, func(m Module) bool { return m.ShouldLint })
}

func filter(modules []Module, keep func(Module) bool) []Module {
	out := make([]Module, 0, len(modules))
	for _, m := range modules {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
