// Package constants provides centralized constant values used throughout verdict.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Result file names written by the test runner.
const (
	// DefaultResultLog is the name of the JSON event log written by gotestsum
	// (--jsonfile) inside each module directory.
	DefaultResultLog = "test_output.json"

	// DefaultJUnitFileTemplate is the JUnit report name; %s is replaced by the flavor.
	DefaultJUnitFileTemplate = "junit-out-%s.xml"
)

// Default commands. Placeholders in double braces are expanded by the runner.
const (
	// DefaultTestCommand runs the module's test targets through gotestsum so that
	// every package and test outcome, including reruns, lands in the result log.
	DefaultTestCommand = `gotestsum --format pkgname --jsonfile {{json}} --rerun-fails={{reruns}} --packages="{{targets}}" -- -tags "{{tags}}"`

	// DefaultLintCommand runs golangci-lint against the module's lint targets.
	DefaultLintCommand = `golangci-lint run --build-tags "{{tags}}" {{targets}}`
)

// Timeout configurations for tool execution.
const (
	// DefaultTestTimeout is the default maximum duration of one module's test run.
	DefaultTestTimeout = 60 * time.Minute

	// DefaultLintTimeout is the default maximum duration of one module's lint run.
	DefaultLintTimeout = 20 * time.Minute
)

// Runner defaults.
const (
	// DefaultRerunFails is how many times gotestsum reruns failing tests.
	DefaultRerunFails = 2

	// DefaultLintParallelism bounds the number of modules linted concurrently.
	DefaultLintParallelism = 4

	// MaxLintParallelism is the upper bound accepted by config validation.
	MaxLintParallelism = 64

	// MaxRerunFails is the upper bound accepted by config validation.
	MaxRerunFails = 10
)

// CI Test Visibility defaults.
const (
	// DefaultTestVisibilityURL is the base URL of the Test Visibility explorer.
	DefaultTestVisibilityURL = "https://app.datadoghq.com/ci/test-runs"

	// DefaultTestService is the service name tests are reported under.
	DefaultTestService = "datadog-agent"

	// DefaultMainBranch is the mainline branch deep links point at.
	DefaultMainBranch = "main"
)

// DefaultFlavor is the flavor used when none is requested.
const DefaultFlavor = "base"
