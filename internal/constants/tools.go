package constants

import "time"

// ToolDetectionTimeout bounds the whole `verdict doctor` probe.
const ToolDetectionTimeout = 5 * time.Second

// External tools the default commands depend on.
const (
	// ToolGo is the Go toolchain.
	ToolGo = "go"

	// ToolGotestsum wraps `go test -json` and writes the result log.
	ToolGotestsum = "gotestsum"

	// ToolGolangciLint is the lint runner.
	ToolGolangciLint = "golangci-lint"

	// ToolGit is used to name the branch deep links point at.
	ToolGit = "git"
)

// Minimum versions of required tools.
const (
	// MinVersionGo is the oldest Go release whose test2json output carries
	// every field verdict reads.
	MinVersionGo = "1.21.0"

	// MinVersionGotestsum is the first release with --rerun-fails and --packages.
	MinVersionGotestsum = "1.8.0"

	// MinVersionGolangciLint is the first v2 release.
	MinVersionGolangciLint = "2.0.0"
)

// Tool version command arguments.
const (
	// VersionFlagGo is the subcommand printing the Go version.
	VersionFlagGo = "version"

	// VersionFlagStandard is the flag most tools accept.
	VersionFlagStandard = "--version"
)
