// Package config provides configuration management for verdict with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (VERDICT_* prefix)
//  3. Project config (.verdict/config.yaml)
//  4. Global config (~/.verdict/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants, internal/errors,
// internal/module and internal/result, but nothing that runs tools.
package config

import (
	"time"

	"github.com/mrz1836/verdict/internal/module"
	"github.com/mrz1836/verdict/internal/result"
)

// Config is the root configuration structure for verdict.
type Config struct {
	// Flavor labels every narrative and selects the build tags.
	// Default: "base"
	Flavor result.Flavor `yaml:"flavor" mapstructure:"flavor"`

	// Test contains settings for running tests and locating their result logs.
	Test TestConfig `yaml:"test" mapstructure:"test"`

	// Lint contains settings for running linters.
	Lint LintConfig `yaml:"lint" mapstructure:"lint"`

	// CI contains settings for Test Visibility deep links.
	CI CIConfig `yaml:"ci" mapstructure:"ci"`

	// Tags maps a flavor name to the build tags passed to both tools.
	Tags map[string][]string `yaml:"tags,omitempty" mapstructure:"tags"`

	// Modules lists the repository's modules. Empty means the root module only.
	Modules []ModuleConfig `yaml:"modules,omitempty" mapstructure:"modules"`
}

// TestConfig contains settings for test execution.
type TestConfig struct {
	// Command is the shell command template run in each module directory.
	// Placeholders: {{json}}, {{reruns}}, {{targets}}, {{tags}}, {{junit}}.
	Command string `yaml:"command" mapstructure:"command"`

	// Timeout is the maximum duration of one module's test run.
	// Default: 60 minutes
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// RerunFails is how many times failing tests are retried.
	// Default: 2, Valid range: 0-10
	RerunFails int `yaml:"rerun_fails" mapstructure:"rerun_fails"`

	// ResultLog is the event log file name written inside each module.
	// Default: "test_output.json"
	ResultLog string `yaml:"result_log" mapstructure:"result_log"`

	// JUnit enables a per-flavor JUnit report next to the result log.
	JUnit bool `yaml:"junit" mapstructure:"junit"`
}

// LintConfig contains settings for lint execution.
type LintConfig struct {
	// Command is the shell command template run in each module directory.
	// Placeholders: {{targets}}, {{tags}}.
	Command string `yaml:"command" mapstructure:"command"`

	// Timeout is the maximum duration of one module's lint run.
	// Default: 20 minutes
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Parallelism bounds how many modules are linted at once.
	// Default: 4, Valid range: 1-64
	Parallelism int `yaml:"parallelism" mapstructure:"parallelism"`
}

// CIConfig contains settings for CI deep links.
type CIConfig struct {
	// TestVisibilityURL is the base URL of the Test Visibility explorer.
	TestVisibilityURL string `yaml:"test_visibility_url" mapstructure:"test_visibility_url"`

	// Service is the service name tests are reported under.
	Service string `yaml:"service" mapstructure:"service"`

	// Branch is the mainline branch deep links point at.
	Branch string `yaml:"branch" mapstructure:"branch"`
}

// ModuleConfig is one entry of the modules list.
type ModuleConfig struct {
	Path        string   `yaml:"path" mapstructure:"path"`
	TestTargets []string `yaml:"test_targets,omitempty" mapstructure:"test_targets"`
	LintTargets []string `yaml:"lint_targets,omitempty" mapstructure:"lint_targets"`
	SkipTest    bool     `yaml:"skip_test,omitempty" mapstructure:"skip_test"`
	SkipLint    bool     `yaml:"skip_lint,omitempty" mapstructure:"skip_lint"`
}

// Module converts the entry to a module with default targets filled in.
func (m ModuleConfig) Module() module.Module {
	return module.Module{
		Path:        module.CleanPath(m.Path),
		TestTargets: append([]string(nil), m.TestTargets...),
		LintTargets: append([]string(nil), m.LintTargets...),
		ShouldTest:  !m.SkipTest,
		ShouldLint:  !m.SkipLint,
	}.WithDefaults()
}

// DefaultModules returns the configured modules, or the root module alone
// when none are configured.
func (c *Config) DefaultModules() []module.Module {
	if len(c.Modules) == 0 {
		return []module.Module{module.Root()}
	}
	out := make([]module.Module, 0, len(c.Modules))
	for _, m := range c.Modules {
		out = append(out, m.Module())
	}
	return out
}

// BuildTags returns the build tags configured for flavor, or nil.
func (c *Config) BuildTags(flavor result.Flavor) []string {
	return c.Tags[flavor.String()]
}
