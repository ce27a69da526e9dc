package runner

import (
	"context"
	"sync"
	"time"
)

// mockCall records one invocation of the mock runner.
type mockCall struct {
	WorkDir string
	Command string
}

// mockCommandRunner answers every command through handler and records calls.
type mockCommandRunner struct {
	mu      sync.Mutex
	calls   []mockCall
	delay   time.Duration
	handler func(workDir, command string) (stdout, stderr string, exitCode int, err error)
}

func (m *mockCommandRunner) Run(ctx context.Context, workDir, command string) (string, string, int, error) {
	m.mu.Lock()
	m.calls = append(m.calls, mockCall{WorkDir: workDir, Command: command})
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", "signal: killed", -1, ctx.Err()
		}
	}
	if m.handler == nil {
		return "", "", 0, nil
	}
	return m.handler(workDir, command)
}

func (m *mockCommandRunner) Calls() []mockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mockCall(nil), m.calls...)
}
