package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/verdict/internal/config"
	"github.com/mrz1836/verdict/internal/constants"
	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/module"
	"github.com/mrz1836/verdict/internal/result"
)

// Runner runs the configured tools against modules of one repository.
type Runner struct {
	cfg  *config.Config
	root string

	test *Executor
	lint *Executor
}

// Option configures a Runner.
type Option func(*Runner)

// WithCommandRunner replaces the shell runner, typically with a mock.
func WithCommandRunner(cr CommandRunner) Option {
	return func(r *Runner) {
		r.test.runner = cr
		r.lint.runner = cr
	}
}

// WithLiveOutput streams test command output to w. Lint output is never
// streamed because modules are linted concurrently.
func WithLiveOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.test.SetLiveOutput(w)
	}
}

// New creates a Runner for the repository rooted at root.
func New(cfg *config.Config, root string, opts ...Option) *Runner {
	r := &Runner{
		cfg:  cfg,
		root: root,
		test: NewExecutor(nil, cfg.Test.Timeout),
		lint: NewExecutor(nil, cfg.Lint.Timeout),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResultLogPath is where the test command of m writes its event log.
func (r *Runner) ResultLogPath(m module.Module) string {
	return filepath.Join(m.Dir(r.root), r.cfg.Test.ResultLog)
}

// JUnitPath is where the test command of m writes its JUnit report, or ""
// when JUnit reports are disabled.
func (r *Runner) JUnitPath(m module.Module, flavor result.Flavor) string {
	if !r.cfg.Test.JUnit {
		return ""
	}
	return filepath.Join(m.Dir(r.root), fmt.Sprintf(constants.DefaultJUnitFileTemplate, flavor))
}

// Test runs the test command for m and returns its result.
//
// A stale result log from an earlier run is removed first so that a command
// that dies before writing one is reported as having no log. A timeout marks
// the result failed; whatever the log holds so far is still classified.
func (r *Runner) Test(ctx context.Context, m module.Module, flavor result.Flavor) (*result.TestResult, error) {
	log := zerolog.Ctx(ctx).With().Str("module", m.Path).Str("flavor", flavor.String()).Logger()
	ctx = log.WithContext(ctx)

	logPath := r.ResultLogPath(m)
	if err := os.Remove(logPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to remove stale result log %s", logPath)
	}
	junitPath := r.JUnitPath(m, flavor)

	command := Expand(r.cfg.Test.Command, Vars{
		JSON:    logPath,
		JUnit:   junitPath,
		Reruns:  r.cfg.Test.RerunFails,
		Targets: m.TestTargets,
		Tags:    r.cfg.BuildTags(flavor),
		Flavor:  flavor.String(),
	})

	execution, err := r.test.Run(ctx, command, m.Dir(r.root))
	if err != nil && !stderrors.Is(err, errors.ErrCommandTimeout) {
		return nil, err
	}
	if err != nil {
		log.Warn().Err(err).Msg("test run timed out, classifying partial result log")
	}

	return result.NewTestResult(m.Path, execution.Failed(), logPath, junitPath), nil
}

// Lint runs the lint command for every module, at most lint.parallelism at a
// time, and returns one result per module in input order. A timed-out
// module gets a failed result carrying the timeout message. The first other
// error cancels the remaining modules.
func (r *Runner) Lint(ctx context.Context, modules []module.Module, flavor result.Flavor) ([]*result.LintResult, error) {
	results := make([]*result.LintResult, len(modules))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Lint.Parallelism)

	for i, m := range modules {
		g.Go(func() error {
			res, err := r.lintModule(gCtx, m, flavor)
			if err != nil {
				return errors.Wrapf(err, "lint %s", m.Path)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) lintModule(ctx context.Context, m module.Module, flavor result.Flavor) (*result.LintResult, error) {
	log := zerolog.Ctx(ctx).With().Str("module", m.Path).Str("flavor", flavor.String()).Logger()
	ctx = log.WithContext(ctx)

	command := Expand(r.cfg.Lint.Command, Vars{
		Targets: m.LintTargets,
		Tags:    r.cfg.BuildTags(flavor),
		Flavor:  flavor.String(),
	})

	execution, err := r.lint.Run(ctx, command, m.Dir(r.root))
	if err != nil && !stderrors.Is(err, errors.ErrCommandTimeout) {
		return nil, err
	}

	output := result.LintOutput{
		ExitCode: execution.ExitCode,
		Stdout:   execution.Stdout,
		Stderr:   execution.Stderr,
	}
	if execution.TimedOut {
		if output.ExitCode == 0 {
			output.ExitCode = -1
		}
		output.Stderr = joinNonEmpty(output.Stderr, err.Error())
	}
	return result.NewLintResult(m.Path, []result.LintOutput{output}), nil
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}
