package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/verdict/internal/runner"
)

// isolate points HOME at an empty directory, changes into a fresh repository
// root and clears CI detection. It returns the repository root.
func isolate(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"CI", "GITLAB_CI", "GITHUB_ACTIONS"} {
		t.Setenv(name, "")
	}
	t.Setenv("NO_COLOR", "1")

	root := t.TempDir()
	t.Chdir(root)
	// t.TempDir may sit behind a symlink (macOS); use the path Getwd reports.
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}

// writeProjectConfig writes .verdict/config.yaml in the current directory.
func writeProjectConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(".verdict", 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(".verdict", "config.yaml"), []byte(content), 0o600))
}

// writeLines writes a newline-terminated file.
func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
}

// runCLI executes the root command with args and returns everything it
// printed to stdout and stderr.
func runCLI(t *testing.T, opts []runner.Option, args ...string) (string, error) {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"}, opts...)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	t.Cleanup(CloseLogFile)
	return buf.String(), err
}

// fakeRunner answers commands through handler and records the directories
// they ran in.
type fakeRunner struct {
	mu      sync.Mutex
	dirs    []string
	cmds    []string
	handler func(workDir, command string) (stdout, stderr string, exitCode int, err error)
}

func (f *fakeRunner) Run(_ context.Context, workDir, command string) (string, string, int, error) {
	f.mu.Lock()
	f.dirs = append(f.dirs, workDir)
	f.cmds = append(f.cmds, command)
	f.mu.Unlock()

	if f.handler == nil {
		return "", "", 0, nil
	}
	return f.handler(workDir, command)
}

func (f *fakeRunner) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.cmds...)
}
