// Package civis knows about the CI environment verdict runs in and builds
// deep links into the Test Visibility explorer.
package civis

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/mrz1836/verdict/internal/constants"
)

// ciVariables are checked in order; any truthy one means we run in CI.
var ciVariables = []string{"CI", "GITLAB_CI", "GITHUB_ACTIONS"} //nolint:gochecknoglobals // fixed lookup table

// RunningInCI reports whether the current process runs on a CI runner.
func RunningInCI() bool {
	return Detect(os.Getenv)
}

// Detect reports whether the environment served by getenv is a CI runner.
func Detect(getenv func(string) string) bool {
	for _, key := range ciVariables {
		if truthy(getenv(key)) {
			return true
		}
	}
	return false
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// LinkBuilder builds Test Visibility links for tests on the mainline branch.
// Zero fields fall back to the defaults in the constants package.
type LinkBuilder struct {
	BaseURL string
	Service string
	Branch  string
}

// NewLinkBuilder returns a LinkBuilder with the default explorer, service and branch.
func NewLinkBuilder() LinkBuilder {
	return LinkBuilder{
		BaseURL: constants.DefaultTestVisibilityURL,
		Service: constants.DefaultTestService,
		Branch:  constants.DefaultMainBranch,
	}
}

// TestLink returns the explorer URL listing runs of test in suite pkg.
func (b LinkBuilder) TestLink(pkg, test string) string {
	query := fmt.Sprintf(`test_level:test @test.service:%s @git.branch:%s @test.name:"%s" @test.suite:"%s"`,
		orDefault(b.Service, constants.DefaultTestService),
		orDefault(b.Branch, constants.DefaultMainBranch),
		test, pkg)

	return orDefault(strings.TrimRight(b.BaseURL, "?"), constants.DefaultTestVisibilityURL) +
		"?" + url.Values{"query": {query}}.Encode()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
