// Package runner executes the configured test and lint commands for each
// module and turns their outcome into results.
//
// SECURITY NOTE: commands come from .verdict/config.yaml or
// ~/.verdict/config.yaml and are trusted the way a Makefile is. They run
// through sh -c so that pipes and redirects work.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// CommandRunner executes one shell command.
type CommandRunner interface {
	// Run executes command in workDir and returns its captured output.
	Run(ctx context.Context, workDir, command string) (stdout, stderr string, exitCode int, err error)
}

// LiveOutputRunner is a CommandRunner that can also stream output as it is produced.
type LiveOutputRunner interface {
	CommandRunner
	// RunWithLiveOutput executes command, streaming to liveOut while capturing.
	RunWithLiveOutput(ctx context.Context, workDir, command string, liveOut io.Writer) (stdout, stderr string, exitCode int, err error)
}

// DefaultCommandRunner implements LiveOutputRunner with os/exec.
type DefaultCommandRunner struct{}

// Run executes command using sh -c.
func (r *DefaultCommandRunner) Run(ctx context.Context, workDir, command string) (stdout, stderr string, exitCode int, err error) {
	return r.runCommand(ctx, workDir, command, nil)
}

// RunWithLiveOutput executes command using sh -c and copies its output to liveOut.
func (r *DefaultCommandRunner) RunWithLiveOutput(ctx context.Context, workDir, command string, liveOut io.Writer) (stdout, stderr string, exitCode int, err error) {
	return r.runCommand(ctx, workDir, command, liveOut)
}

func (r *DefaultCommandRunner) runCommand(ctx context.Context, workDir, command string, liveOut io.Writer) (stdout, stderr string, exitCode int, err error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = workDir

	var outBuf, errBuf bytes.Buffer
	if liveOut != nil {
		cmd.Stdout = io.MultiWriter(&outBuf, liveOut)
		cmd.Stderr = io.MultiWriter(&errBuf, liveOut)
	} else {
		cmd.Stdout = &outBuf
		cmd.Stderr = &errBuf
	}

	err = cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	}

	return outBuf.String(), errBuf.String(), exitCode, err
}

var (
	_ CommandRunner    = (*DefaultCommandRunner)(nil)
	_ LiveOutputRunner = (*DefaultCommandRunner)(nil)
)
