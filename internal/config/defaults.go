package config

import (
	"github.com/mrz1836/verdict/internal/constants"
	"github.com/mrz1836/verdict/internal/result"
)

// DefaultConfig returns a new Config with the built-in defaults.
// The defaults run gotestsum and golangci-lint against every package of
// the root module.
func DefaultConfig() *Config {
	return &Config{
		Flavor: result.FlavorBase,
		Test: TestConfig{
			Command:    constants.DefaultTestCommand,
			Timeout:    constants.DefaultTestTimeout,
			RerunFails: constants.DefaultRerunFails,
			ResultLog:  constants.DefaultResultLog,
		},
		Lint: LintConfig{
			Command:     constants.DefaultLintCommand,
			Timeout:     constants.DefaultLintTimeout,
			Parallelism: constants.DefaultLintParallelism,
		},
		CI: CIConfig{
			TestVisibilityURL: constants.DefaultTestVisibilityURL,
			Service:           constants.DefaultTestService,
			Branch:            constants.DefaultMainBranch,
		},
	}
}
