package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	verdicterrors "github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/logging"
)

// Execution is the captured outcome of one command.
type Execution struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	TimedOut bool
}

// Failed reports whether the command exited non-zero or timed out.
func (e *Execution) Failed() bool {
	return e.TimedOut || e.ExitCode != 0
}

// Executor runs commands with a per-command timeout.
type Executor struct {
	runner     CommandRunner
	timeout    time.Duration
	liveOutput io.Writer
}

// NewExecutor creates an executor. A non-positive timeout is rejected by
// config validation before it reaches here.
func NewExecutor(runner CommandRunner, timeout time.Duration) *Executor {
	if runner == nil {
		runner = &DefaultCommandRunner{}
	}
	return &Executor{runner: runner, timeout: timeout}
}

// SetLiveOutput streams command output to w while it runs, when the runner supports it.
func (e *Executor) SetLiveOutput(w io.Writer) {
	e.liveOutput = w
}

// Run executes command in workDir.
//
// A non-zero exit status is not an error: it is reported in the Execution.
// Errors are returned for a missing workDir, a timeout (together with the
// partial Execution) and cancellation of ctx.
func (e *Executor) Run(ctx context.Context, command, workDir string) (*Execution, error) {
	log := zerolog.Ctx(ctx)
	safeCommand := logging.SafeValue("command", command)

	if _, err := os.Stat(workDir); err != nil {
		log.Error().Str("work_dir", workDir).Str("command", safeCommand).Msg("module directory missing")
		return nil, fmt.Errorf("%w: %s", verdicterrors.ErrWorkDirMissing, workDir)
	}

	log.Info().Str("command", safeCommand).Str("work_dir", workDir).Msg("executing command")

	cmdCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, exitCode, runErr := e.execute(cmdCtx, command, workDir)
	execution := &Execution{
		Command:  command,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Duration: time.Since(start),
	}

	if ctx.Err() != nil {
		return execution, ctx.Err()
	}

	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		execution.TimedOut = true
		log.Error().
			Str("command", safeCommand).
			Dur("duration_ms", execution.Duration).
			Dur("timeout", e.timeout).
			Msg("command timed out")
		return execution, fmt.Errorf("%w after %s: %s", verdicterrors.ErrCommandTimeout, e.timeout, safeCommand)
	}

	if runErr != nil || exitCode != 0 {
		log.Warn().
			Str("command", safeCommand).
			Int("exit_code", exitCode).
			Dur("duration_ms", execution.Duration).
			Str("stderr", logging.FilterSensitiveValue(stderr)).
			Msg("command failed")
		return execution, nil
	}

	log.Info().
		Str("command", safeCommand).
		Dur("duration_ms", execution.Duration).
		Msg("command completed")
	return execution, nil
}

func (e *Executor) execute(ctx context.Context, command, workDir string) (stdout, stderr string, exitCode int, err error) {
	if e.liveOutput != nil {
		if live, ok := e.runner.(LiveOutputRunner); ok {
			return live.RunWithLiveOutput(ctx, workDir, command, e.liveOutput)
		}
	}
	return e.runner.Run(ctx, workDir, command)
}
