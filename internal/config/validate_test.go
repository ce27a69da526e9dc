package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	verdicterrors "github.com/mrz1836/verdict/internal/errors"
)

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), verdicterrors.ErrConfigNil)
}

func TestValidate_DefaultConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown flavor", func(c *Config) { c.Flavor = "windows" }, verdicterrors.ErrUnknownFlavor},
		{"empty test command", func(c *Config) { c.Test.Command = "  " }, verdicterrors.ErrConfigInvalidTest},
		{"zero test timeout", func(c *Config) { c.Test.Timeout = 0 }, verdicterrors.ErrConfigInvalidTest},
		{"negative reruns", func(c *Config) { c.Test.RerunFails = -1 }, verdicterrors.ErrConfigInvalidTest},
		{"too many reruns", func(c *Config) { c.Test.RerunFails = 11 }, verdicterrors.ErrConfigInvalidTest},
		{"result log with directory", func(c *Config) { c.Test.ResultLog = "out/test.json" }, verdicterrors.ErrConfigInvalidTest},
		{"empty result log", func(c *Config) { c.Test.ResultLog = "" }, verdicterrors.ErrConfigInvalidTest},
		{"empty lint command", func(c *Config) { c.Lint.Command = "" }, verdicterrors.ErrConfigInvalidLint},
		{"negative lint timeout", func(c *Config) { c.Lint.Timeout = -time.Second }, verdicterrors.ErrConfigInvalidLint},
		{"zero parallelism", func(c *Config) { c.Lint.Parallelism = 0 }, verdicterrors.ErrConfigInvalidLint},
		{"huge parallelism", func(c *Config) { c.Lint.Parallelism = 65 }, verdicterrors.ErrConfigInvalidLint},
		{"relative visibility url", func(c *Config) { c.CI.TestVisibilityURL = "/ci/test-runs" }, verdicterrors.ErrConfigInvalidCI},
		{"ftp visibility url", func(c *Config) { c.CI.TestVisibilityURL = "ftp://example.com" }, verdicterrors.ErrConfigInvalidCI},
		{"empty service", func(c *Config) { c.CI.Service = "" }, verdicterrors.ErrConfigInvalidCI},
		{"empty branch", func(c *Config) { c.CI.Branch = "" }, verdicterrors.ErrConfigInvalidCI},
		{"empty module path", func(c *Config) { c.Modules = []ModuleConfig{{Path: " "}} }, verdicterrors.ErrConfigInvalidModule},
		{"absolute module path", func(c *Config) { c.Modules = []ModuleConfig{{Path: "/abs"}} }, verdicterrors.ErrConfigInvalidModule},
		{"duplicate module", func(c *Config) { c.Modules = []ModuleConfig{{Path: "pkg/a"}, {Path: "./pkg/a/"}} }, verdicterrors.ErrConfigInvalidModule},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(cfg)
			require.ErrorIs(t, Validate(cfg), tc.want)
		})
	}
}

func TestValidate_BoundaryValues(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Test.RerunFails = 0
	cfg.Test.Timeout = time.Second
	cfg.Lint.Parallelism = 64
	cfg.Modules = []ModuleConfig{{Path: "."}, {Path: "pkg/a"}}

	require.NoError(t, Validate(cfg))
}
