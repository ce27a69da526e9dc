package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/module"
	"github.com/mrz1836/verdict/internal/result"
	"github.com/mrz1836/verdict/internal/runner"
)

// AddLintCommand adds the lint command to the root command.
func AddLintCommand(root *cobra.Command, flags *GlobalFlags, opts ...runner.Option) {
	root.AddCommand(newLintCmd(flags, opts))
}

func newLintCmd(flags *GlobalFlags, opts []runner.Option) *cobra.Command {
	sel := &SelectionFlags{}
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Lint every selected module and report failures",
		Long: `Run the configured lint command (golangci-lint by default) in every selected
module, several modules at a time, and print the output of each failing one.

Examples:
  verdict lint
  verdict lint --module pkg/util
  verdict lint --flavor heroku --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLint(cmd, flags, sel, opts, cmd.OutOrStdout())
		},
	}
	addSelectionFlags(cmd, sel)
	return cmd
}

func runLint(cmd *cobra.Command, flags *GlobalFlags, sel *SelectionFlags, opts []runner.Option, w io.Writer) error {
	s, err := newSession(cmd, flags, w)
	if err != nil {
		return err
	}

	modules, err := module.Resolve(sel.Module, sel.Targets, s.cfg.DefaultModules())
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	modules = module.Lintable(modules)

	r, release, err := newRunner(s, opts, false)
	if err != nil {
		return err
	}
	defer release()

	s.logger.Info().Int("modules", len(modules)).Int("parallelism", s.cfg.Lint.Parallelism).Msg("running linters")
	lintResults, err := r.Lint(s.ctx, modules, s.flavor)
	if err != nil {
		return err
	}

	results := make([]result.Result, 0, len(lintResults))
	for _, res := range lintResults {
		results = append(results, res)
	}

	success := s.reporter.Reduce(s.ctx, results...)
	return s.finish(success, errors.ErrLintFailed)
}
