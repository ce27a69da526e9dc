package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/verdict/internal/constants"
	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/result"
)

// Overrides holds values taken from CLI flags. Zero values are ignored.
type Overrides struct {
	Flavor result.Flavor
}

// newViperInstance creates a Viper instance with the VERDICT_ env prefix,
// the dot-to-underscore key replacer and every default registered.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("flavor", cfg.Flavor.String()).
		Dur("test.timeout", cfg.Test.Timeout).
		Dur("lint.timeout", cfg.Lint.Timeout).
		Int("modules", len(cfg.Modules)).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides on top.
func LoadWithOverrides(ctx context.Context, overrides Overrides) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	applyOverrides(cfg, overrides)

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths.
// projectConfigPath takes precedence over globalConfigPath; either may be
// empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// loadGlobalConfig loads ~/.verdict/config.yaml if it exists.
func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil || !fileExists(path) {
		return nil //nolint:nilerr // no home directory means no global config
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig merges .verdict/config.yaml over the global config if it exists.
func loadProjectConfig(v *viper.Viper) error {
	path := ProjectConfigPath()
	if !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(filepath.Clean(path))
	return err == nil
}

// setDefaults registers every default on v. Keys must match the mapstructure
// tags so that VERDICT_* environment variables resolve.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("flavor", d.Flavor.String())

	v.SetDefault("test.command", d.Test.Command)
	v.SetDefault("test.timeout", d.Test.Timeout.String())
	v.SetDefault("test.rerun_fails", d.Test.RerunFails)
	v.SetDefault("test.result_log", d.Test.ResultLog)
	v.SetDefault("test.junit", d.Test.JUnit)

	v.SetDefault("lint.command", d.Lint.Command)
	v.SetDefault("lint.timeout", d.Lint.Timeout.String())
	v.SetDefault("lint.parallelism", d.Lint.Parallelism)

	v.SetDefault("ci.test_visibility_url", d.CI.TestVisibilityURL)
	v.SetDefault("ci.service", d.CI.Service)
	v.SetDefault("ci.branch", d.CI.Branch)

	v.SetDefault("tags", map[string][]string{})
	v.SetDefault("modules", []map[string]any{})
}

// applyOverrides merges non-zero override values into the config.
func applyOverrides(cfg *Config, overrides Overrides) {
	if overrides.Flavor != "" {
		cfg.Flavor = overrides.Flavor
	}
}

// viperDecoderOption configures mapstructure to decode durations from
// strings, flavors through their TextUnmarshaler, and comma-separated
// environment values into slices.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}
