package config

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/verdict/internal/constants"
)

//nolint:gochecknoglobals // compiled once
var (
	goVersionRe      = regexp.MustCompile(`go(\d+\.\d+(?:\.\d+)?)`)
	gitVersionRe     = regexp.MustCompile(`git version (\d+\.\d+(?:\.\d+)?)`)
	genericVersionRe = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?)`)
)

// ToolStatus represents the installation status of an external tool.
//
//nolint:recvcheck // UnmarshalText requires a pointer receiver
type ToolStatus int

const (
	// ToolStatusMissing indicates the tool is not on PATH.
	ToolStatusMissing ToolStatus = iota

	// ToolStatusInstalled indicates the tool is installed and recent enough.
	ToolStatusInstalled

	// ToolStatusOutdated indicates the tool is installed but below the minimum version.
	ToolStatusOutdated
)

const maxVersionSegments = 3

// String returns a human-readable representation of the tool status.
func (s ToolStatus) String() string {
	switch s {
	case ToolStatusInstalled:
		return "installed"
	case ToolStatusMissing:
		return "missing"
	case ToolStatusOutdated:
		return "outdated"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name in JSON and YAML output.
func (s ToolStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name. Unknown names decode as missing.
func (s *ToolStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "installed":
		*s = ToolStatusInstalled
	case "outdated":
		*s = ToolStatusOutdated
	default:
		*s = ToolStatusMissing
	}
	return nil
}

// Tool is an external program one of the default commands runs.
type Tool struct {
	Name           string     `json:"name"`
	Required       bool       `json:"required"`
	MinVersion     string     `json:"min_version,omitempty"`
	CurrentVersion string     `json:"current_version,omitempty"`
	Status         ToolStatus `json:"status"`
	InstallHint    string     `json:"install_hint"`
}

// ToolDetectionResult holds the results of detecting all tools, in a fixed order.
type ToolDetectionResult struct {
	Tools              []Tool `json:"tools"`
	HasMissingRequired bool   `json:"has_missing_required"`
}

// MissingRequiredTools returns the required tools that are missing or outdated.
func (r *ToolDetectionResult) MissingRequiredTools() []Tool {
	var missing []Tool
	for _, tool := range r.Tools {
		if tool.Required && tool.Status != ToolStatusInstalled {
			missing = append(missing, tool)
		}
	}
	return missing
}

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// LookPath searches for an executable named file in the PATH.
	LookPath(file string) (string, error)

	// Run executes a command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// DefaultCommandExecutor implements CommandExecutor using os/exec.
type DefaultCommandExecutor struct{}

// LookPath searches for an executable in the PATH.
func (e *DefaultCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its combined output.
func (e *DefaultCommandExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return string(output), err
}

// ToolDetector detects whether the tools behind the default commands are installed.
type ToolDetector struct {
	executor CommandExecutor
}

// NewToolDetector creates a ToolDetector backed by os/exec.
func NewToolDetector() *ToolDetector {
	return NewToolDetectorWithExecutor(&DefaultCommandExecutor{})
}

// NewToolDetectorWithExecutor creates a ToolDetector with a custom executor.
func NewToolDetectorWithExecutor(executor CommandExecutor) *ToolDetector {
	return &ToolDetector{executor: executor}
}

type toolConfig struct {
	name        string
	versionFlag string
	minVersion  string
	required    bool
	installHint string
	parseFunc   func(output string) string
}

func toolConfigs() []toolConfig {
	return []toolConfig{
		{
			name:        constants.ToolGo,
			versionFlag: constants.VersionFlagGo,
			minVersion:  constants.MinVersionGo,
			required:    true,
			installHint: "Install Go from https://go.dev/dl/",
			parseFunc:   parseGoVersion,
		},
		{
			name:        constants.ToolGotestsum,
			versionFlag: constants.VersionFlagStandard,
			minVersion:  constants.MinVersionGotestsum,
			required:    true,
			installHint: "go install gotest.tools/gotestsum@latest",
			parseFunc:   parseGenericVersion,
		},
		{
			name:        constants.ToolGolangciLint,
			versionFlag: constants.VersionFlagStandard,
			minVersion:  constants.MinVersionGolangciLint,
			required:    true,
			installHint: "See https://golangci-lint.run/welcome/install/",
			parseFunc:   parseGenericVersion,
		},
		{
			name:        constants.ToolGit,
			versionFlag: constants.VersionFlagStandard,
			installHint: "Install Git from https://git-scm.com/downloads",
			parseFunc:   parseGitVersion,
		},
	}
}

// Detect probes every tool concurrently and returns them in a fixed order.
func (d *ToolDetector) Detect(ctx context.Context) (*ToolDetectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detectCtx, cancel := context.WithTimeout(ctx, constants.ToolDetectionTimeout)
	defer cancel()

	configs := toolConfigs()
	tools := make([]Tool, len(configs))

	g, gCtx := errgroup.WithContext(detectCtx)
	for i, cfg := range configs {
		g.Go(func() error {
			tools[i] = d.detectTool(gCtx, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to detect tools: %w", err)
	}

	result := &ToolDetectionResult{Tools: tools}
	result.HasMissingRequired = len(result.MissingRequiredTools()) > 0
	return result, nil
}

func (d *ToolDetector) detectTool(ctx context.Context, cfg toolConfig) Tool {
	tool := Tool{
		Name:        cfg.name,
		Required:    cfg.required,
		MinVersion:  cfg.minVersion,
		InstallHint: cfg.installHint,
		Status:      ToolStatusMissing,
	}

	if _, err := d.executor.LookPath(cfg.name); err != nil {
		return tool
	}

	tool.Status = ToolStatusInstalled
	tool.CurrentVersion = "unknown"

	output, err := d.executor.Run(ctx, cfg.name, cfg.versionFlag)
	if err != nil {
		return tool
	}
	version := cfg.parseFunc(output)
	if version == "" {
		return tool
	}

	tool.CurrentVersion = version
	if cfg.minVersion != "" && CompareVersions(version, cfg.minVersion) < 0 {
		tool.Status = ToolStatusOutdated
	}
	return tool
}

// parseGoVersion parses "go version go1.24.2 darwin/arm64" → "1.24.2"
func parseGoVersion(output string) string {
	return firstSubmatch(goVersionRe, output)
}

// parseGitVersion parses "git version 2.39.0" → "2.39.0"
func parseGitVersion(output string) string {
	return firstSubmatch(gitVersionRe, output)
}

// parseGenericVersion extracts the first version number in output.
func parseGenericVersion(output string) string {
	return firstSubmatch(genericVersionRe, output)
}

func firstSubmatch(re *regexp.Regexp, s string) string {
	if matches := re.FindStringSubmatch(s); len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// CompareVersions compares two semantic versions and returns -1, 0 or 1.
func CompareVersions(current, required string) int {
	currentParts := parseVersionParts(strings.TrimPrefix(current, "v"))
	requiredParts := parseVersionParts(strings.TrimPrefix(required, "v"))

	for i := 0; i < maxVersionSegments; i++ {
		if currentParts[i] < requiredParts[i] {
			return -1
		}
		if currentParts[i] > requiredParts[i] {
			return 1
		}
	}
	return 0
}

// parseVersionParts parses a version string into [major, minor, patch].
func parseVersionParts(version string) [maxVersionSegments]int {
	var parts [maxVersionSegments]int
	segments := strings.Split(version, ".")

	for i := 0; i < len(segments) && i < maxVersionSegments; i++ {
		numStr := segments[i]
		for j, c := range numStr {
			if c < '0' || c > '9' {
				numStr = numStr[:j]
				break
			}
		}
		if numStr != "" {
			parts[i], _ = strconv.Atoi(numStr)
		}
	}
	return parts
}

// FormatMissingToolsError lists missing or outdated tools with install hints.
func FormatMissingToolsError(missing []Tool) string {
	if len(missing) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Missing required tools:\n\n")
	for _, tool := range missing {
		status := "missing"
		if tool.Status == ToolStatusOutdated {
			status = fmt.Sprintf("outdated (have %s, need %s)", tool.CurrentVersion, tool.MinVersion)
		}
		fmt.Fprintf(&sb, "  • %s: %s\n", tool.Name, status)
		fmt.Fprintf(&sb, "    Install: %s\n\n", tool.InstallHint)
	}
	return sb.String()
}
