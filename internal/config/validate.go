package config

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/mrz1836/verdict/internal/constants"
	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/module"
	"github.com/mrz1836/verdict/internal/result"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - flavor must be a known flavor
//   - test and lint commands must not be empty, timeouts must be positive
//   - test.rerun_fails must be between 0 and 10
//   - test.result_log must be a bare file name
//   - lint.parallelism must be between 1 and 64
//   - ci.test_visibility_url must be an absolute http(s) URL
//   - module paths must be relative and unique
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if _, err := result.ParseFlavor(cfg.Flavor.String()); err != nil {
		return err
	}
	if err := validateTestConfig(&cfg.Test); err != nil {
		return err
	}
	if err := validateLintConfig(&cfg.Lint); err != nil {
		return err
	}
	if err := validateCIConfig(&cfg.CI); err != nil {
		return err
	}
	return validateModules(cfg.Modules)
}

func validateTestConfig(cfg *TestConfig) error {
	if strings.TrimSpace(cfg.Command) == "" {
		return errors.Wrap(errors.ErrConfigInvalidTest, "test.command must not be empty")
	}
	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidTest,
			"test.timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.RerunFails < 0 || cfg.RerunFails > constants.MaxRerunFails {
		return errors.Wrapf(errors.ErrConfigInvalidTest,
			"test.rerun_fails must be between 0 and %d, got %d", constants.MaxRerunFails, cfg.RerunFails)
	}
	if cfg.ResultLog == "" || filepath.Base(cfg.ResultLog) != cfg.ResultLog {
		return errors.Wrapf(errors.ErrConfigInvalidTest,
			"test.result_log must be a file name, got %q", cfg.ResultLog)
	}
	return nil
}

func validateLintConfig(cfg *LintConfig) error {
	if strings.TrimSpace(cfg.Command) == "" {
		return errors.Wrap(errors.ErrConfigInvalidLint, "lint.command must not be empty")
	}
	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLint,
			"lint.timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Parallelism < 1 || cfg.Parallelism > constants.MaxLintParallelism {
		return errors.Wrapf(errors.ErrConfigInvalidLint,
			"lint.parallelism must be between 1 and %d, got %d", constants.MaxLintParallelism, cfg.Parallelism)
	}
	return nil
}

func validateCIConfig(cfg *CIConfig) error {
	u, err := url.Parse(cfg.TestVisibilityURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Wrapf(errors.ErrConfigInvalidCI,
			"ci.test_visibility_url must be an absolute http(s) URL, got %q", cfg.TestVisibilityURL)
	}
	if cfg.Service == "" {
		return errors.Wrap(errors.ErrConfigInvalidCI, "ci.service must not be empty")
	}
	if cfg.Branch == "" {
		return errors.Wrap(errors.ErrConfigInvalidCI, "ci.branch must not be empty")
	}
	return nil
}

func validateModules(modules []ModuleConfig) error {
	seen := make(map[string]struct{}, len(modules))
	for i, m := range modules {
		if strings.TrimSpace(m.Path) == "" {
			return errors.Wrapf(errors.ErrConfigInvalidModule, "modules[%d].path must not be empty", i)
		}
		if filepath.IsAbs(m.Path) {
			return errors.Wrapf(errors.ErrConfigInvalidModule,
				"modules[%d].path must be relative to the repository root, got %q", i, m.Path)
		}
		clean := module.CleanPath(m.Path)
		if _, dup := seen[clean]; dup {
			return errors.Wrapf(errors.ErrConfigInvalidModule, "modules[%d].path %q is listed twice", i, clean)
		}
		seen[clean] = struct{}{}
	}
	return nil
}
