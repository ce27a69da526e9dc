package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/verdict/internal/civis"
	"github.com/mrz1836/verdict/internal/config"
	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/report"
	"github.com/mrz1836/verdict/internal/result"
	"github.com/mrz1836/verdict/internal/tui"
)

// session bundles what every checking command needs: the effective config,
// the flavor, the output and a reporter.
type session struct {
	ctx      context.Context
	cfg      *config.Config
	flavor   result.Flavor
	flags    *GlobalFlags
	w        io.Writer
	out      tui.Output
	reporter *report.Reporter
	logger   zerolog.Logger
}

// runSummary is the JSON document printed by checking commands.
type runSummary struct {
	Success bool                   `json:"success"`
	Flavor  result.Flavor          `json:"flavor"`
	Modules []report.ModuleSummary `json:"modules"`
}

// newSession loads the configuration with the --flavor override applied.
// An unknown flavor or an invalid configuration is invalid input.
func newSession(cmd *cobra.Command, flags *GlobalFlags, w io.Writer) (*session, error) {
	tui.CheckNoColor()

	logger := GetLogger()
	ctx := logger.WithContext(cmd.Context())

	var overrides config.Overrides
	if flags.Flavor != "" {
		flavor, err := result.ParseFlavor(flags.Flavor)
		if err != nil {
			return nil, errors.NewExitCode2Error(err)
		}
		overrides.Flavor = flavor
	}

	cfg, err := config.LoadWithOverrides(ctx, overrides)
	if err != nil {
		return nil, errors.NewExitCode2Error(err)
	}

	logger = logger.With().Str("flavor", cfg.Flavor.String()).Logger()
	ctx = logger.WithContext(ctx)

	out := tui.NewOutput(w, flags.Output)
	links := civis.LinkBuilder{
		BaseURL: cfg.CI.TestVisibilityURL,
		Service: cfg.CI.Service,
		Branch:  cfg.CI.Branch,
	}

	return &session{
		ctx:      ctx,
		cfg:      cfg,
		flavor:   cfg.Flavor,
		flags:    flags,
		w:        w,
		out:      out,
		reporter: report.New(out, cfg.Flavor, report.NewEnv(civis.RunningInCI(), links)),
		logger:   logger,
	}, nil
}

// finish prints the outcome of the run. In JSON mode it prints the run
// report. In text mode a passing run prints nothing unless --verbose is set;
// a failing run prints the summary table unless --quiet is set.
// failure is returned when success is false.
func (s *session) finish(success bool, failure error) error {
	if s.flags.Output == OutputJSON {
		if err := s.out.JSON(runSummary{
			Success: success,
			Flavor:  s.flavor,
			Modules: s.reporter.Summary(),
		}); err != nil {
			return err
		}
		if !success {
			return fmt.Errorf("%w: %w", errors.ErrJSONErrorOutput, failure)
		}
		return nil
	}

	showSummary := !s.flags.Quiet && (!success || s.flags.Verbose)
	if rows := s.reporter.Rows(); len(rows) > 0 && showSummary {
		if err := tui.NewSummaryTable(rows).Render(s.w); err != nil {
			return err
		}
	}

	if !success {
		return failure
	}
	if s.flags.Verbose {
		s.out.Success("All checks passed (" + s.flavor.String() + " flavor)")
	}
	return nil
}
