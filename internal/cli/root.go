// Package cli provides the command-line interface for verdict.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/runner"
	"github.com/mrz1836/verdict/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// It is set during PersistentPreRunE and read through GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// It MUST only be called after the root command's PersistentPreRunE has
// executed; before that it returns a zero-value logger that discards output.
// Safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

func setLogger(logger zerolog.Logger) {
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()
}

// newRootCmd creates the root command for the verdict CLI.
// opts are passed to the runner of the test and lint commands.
func newRootCmd(flags *GlobalFlags, info BuildInfo, opts ...runner.Option) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "verdict",
		Short: "Aggregate test and lint results into one CI verdict",
		Long: `verdict runs or inspects the tests and linters of every module in a
multi-module Go repository and reduces the outcome to one pass/fail signal.

For failed test runs it reads the gotestsum JSON event log, reconciles
package and test events including reruns, and prints only the genuine
failures. In CI each failing test links to its history on the main branch.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			flags.resolve(v)

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			setLogger(InitLogger(flags.Verbose, flags.Quiet))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddReportCommand(cmd, flags)
	AddTestCommand(cmd, flags, opts...)
	AddLintCommand(cmd, flags, opts...)
	AddFlavorsCommand(cmd, flags)
	AddConfigCommand(cmd)
	AddDoctorCommand(cmd, flags)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are printed to stderr, except for failed checks whose report has
// already been printed.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(ctx)
	if err != nil && !alreadyReported(err) {
		format := flags.Output
		if !IsValidOutputFormat(format) {
			format = OutputText
		}
		tui.NewOutput(cmd.ErrOrStderr(), format).Error(err)
	}
	return err
}

// alreadyReported is true for errors whose details were printed as part of
// the command's own output.
func alreadyReported(err error) bool {
	return stderrors.Is(err, errors.ErrJSONErrorOutput) ||
		stderrors.Is(err, errors.ErrTestsFailed) ||
		stderrors.Is(err, errors.ErrLintFailed)
}
