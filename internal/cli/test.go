package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrz1836/verdict/internal/constants"
	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/flock"
	"github.com/mrz1836/verdict/internal/module"
	"github.com/mrz1836/verdict/internal/result"
	"github.com/mrz1836/verdict/internal/runner"
)

// SelectionFlags choose which modules and targets a run covers.
type SelectionFlags struct {
	// Module restricts the run to one module.
	Module string
	// Targets is a comma separated list of package targets.
	Targets string
}

func addSelectionFlags(cmd *cobra.Command, sel *SelectionFlags) {
	cmd.Flags().StringVar(&sel.Module, "module", "", "only run this module")
	cmd.Flags().StringVar(&sel.Targets, "targets", "", "comma separated package targets")
}

// AddTestCommand adds the test command to the root command.
func AddTestCommand(root *cobra.Command, flags *GlobalFlags, opts ...runner.Option) {
	root.AddCommand(newTestCmd(flags, opts))
}

func newTestCmd(flags *GlobalFlags, opts []runner.Option) *cobra.Command {
	sel := &SelectionFlags{}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the tests of every selected module and report failures",
		Long: `Run the configured test command (gotestsum by default) in every selected
module, then classify each module's result log and print the genuine failures.

Examples:
  verdict test
  verdict test --module pkg/util
  verdict test --targets ./cmd/...,./pkg/... --flavor iot`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTest(cmd, flags, sel, opts, cmd.OutOrStdout())
		},
	}
	addSelectionFlags(cmd, sel)
	return cmd
}

func runTest(cmd *cobra.Command, flags *GlobalFlags, sel *SelectionFlags, opts []runner.Option, w io.Writer) error {
	s, err := newSession(cmd, flags, w)
	if err != nil {
		return err
	}

	modules, err := module.Resolve(sel.Module, sel.Targets, s.cfg.DefaultModules())
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	modules = module.Testable(modules)

	r, release, err := newRunner(s, opts, true)
	if err != nil {
		return err
	}
	defer release()

	results := make([]result.Result, 0, len(modules))
	for _, m := range modules {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		s.logger.Info().Str("module", m.Path).Msg("running tests")
		res, err := r.Test(s.ctx, m, s.flavor)
		if err != nil {
			return errors.Wrapf(err, "test %s", m.Path)
		}
		results = append(results, res)
	}

	success := s.reporter.Reduce(s.ctx, results...)
	return s.finish(success, errors.ErrTestsFailed)
}

// newRunner creates a runner rooted at the working directory and takes the
// repository's run lock; release must be called when the run is over. Test
// output is streamed to stderr in text mode unless --quiet is set.
func newRunner(s *session, opts []runner.Option, stream bool) (r *runner.Runner, release func(), err error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get working directory")
	}

	lock, err := flock.TryLock(filepath.Join(root, constants.VerdictHome, constants.RunLockFileName))
	if err != nil {
		return nil, nil, err
	}
	release = func() {
		if err := lock.Release(); err != nil {
			s.logger.Warn().Err(err).Str("lock", lock.Path()).Msg("failed to release run lock")
		}
	}

	all := make([]runner.Option, 0, len(opts)+1)
	if stream && s.flags.Output == OutputText && !s.flags.Quiet {
		all = append(all, runner.WithLiveOutput(os.Stderr))
	}
	all = append(all, opts...)
	return runner.New(s.cfg, root, all...), release, nil
}
