package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/verdict/internal/config"
	"github.com/mrz1836/verdict/internal/errors"
)

// stubExecutor reports every tool as installed with a fixed version output,
// except those listed in missing.
type stubExecutor struct {
	missing map[string]bool
}

func (s stubExecutor) LookPath(file string) (string, error) {
	if s.missing[file] {
		return "", fmt.Errorf("%s: not found", file)
	}
	return "/usr/bin/" + file, nil
}

func (s stubExecutor) Run(_ context.Context, name string, _ ...string) (string, error) {
	switch name {
	case "go":
		return "go version go1.25.1 linux/amd64", nil
	case "git":
		return "git version 2.47.0", nil
	case "golangci-lint":
		return "golangci-lint has version 2.5.0 built with go1.25.1", nil
	default:
		return strings.TrimSpace(name + " version v1.13.0"), nil
	}
}

func runDoctorCmd(t *testing.T, output string, exec stubExecutor) (string, error) {
	t.Helper()

	cmd := newDoctorCmd(&GlobalFlags{Output: output}, config.NewToolDetectorWithExecutor(exec))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestDoctorCmd_AllInstalled(t *testing.T) {
	t.Parallel()

	out, err := runDoctorCmd(t, OutputText, stubExecutor{})

	require.NoError(t, err)
	assert.Contains(t, out, "TOOL")
	assert.Contains(t, out, "1.25.1")
	assert.Contains(t, out, "2.5.0")
	assert.Contains(t, out, "All required tools are installed")
}

func TestDoctorCmd_MissingTool(t *testing.T) {
	t.Parallel()

	out, err := runDoctorCmd(t, OutputText, stubExecutor{missing: map[string]bool{"gotestsum": true}})

	require.ErrorIs(t, err, errors.ErrMissingRequiredTools)
	assert.Contains(t, out, "gotestsum: missing")
	assert.Contains(t, out, "go install gotest.tools/gotestsum@latest")
}

func TestDoctorCmd_JSON(t *testing.T) {
	t.Parallel()

	out, err := runDoctorCmd(t, OutputJSON, stubExecutor{missing: map[string]bool{"git": true}})

	require.NoError(t, err, "git is optional")
	var detection config.ToolDetectionResult
	require.NoError(t, json.Unmarshal([]byte(out), &detection))
	require.Len(t, detection.Tools, 4)
	assert.False(t, detection.HasMissingRequired)
	assert.Equal(t, config.ToolStatusMissing, detection.Tools[3].Status)
}
