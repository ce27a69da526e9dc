package civis

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/verdict/internal/constants"
	"github.com/mrz1836/verdict/internal/result"
)

var _ result.LinkResolver = LinkBuilder{}

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want bool
	}{
		{"nothing set", nil, false},
		{"generic CI", map[string]string{"CI": "true"}, true},
		{"gitlab", map[string]string{"GITLAB_CI": "true"}, true},
		{"github actions", map[string]string{"GITHUB_ACTIONS": "true"}, true},
		{"CI disabled explicitly", map[string]string{"CI": "false"}, false},
		{"CI zero", map[string]string{"CI": "0"}, false},
		{"any other value counts", map[string]string{"CI": "1"}, true},
		{"one of several", map[string]string{"CI": "false", "GITLAB_CI": "yes"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Detect(envOf(tc.vars)))
		})
	}
}

func TestRunningInCI(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("GITLAB_CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	assert.True(t, RunningInCI())

	t.Setenv("CI", "")
	assert.False(t, RunningInCI())
}

func TestLinkBuilder_TestLink(t *testing.T) {
	t.Parallel()

	link := NewLinkBuilder().TestLink("pkg/util/cache", "TestEviction/full")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "app.datadoghq.com", parsed.Host)
	assert.Equal(t, "/ci/test-runs", parsed.Path)
	assert.Equal(t,
		`test_level:test @test.service:datadog-agent @git.branch:main @test.name:"TestEviction/full" @test.suite:"pkg/util/cache"`,
		parsed.Query().Get("query"))
}

func TestLinkBuilder_CustomFields(t *testing.T) {
	t.Parallel()

	b := LinkBuilder{BaseURL: "https://ci.example.com/runs?", Service: "agent", Branch: "trunk"}

	parsed, err := url.Parse(b.TestLink("a", "T"))

	require.NoError(t, err)
	assert.Equal(t, "ci.example.com", parsed.Host)
	assert.Equal(t, `test_level:test @test.service:agent @git.branch:trunk @test.name:"T" @test.suite:"a"`,
		parsed.Query().Get("query"))
}

func TestLinkBuilder_ZeroValue(t *testing.T) {
	t.Parallel()

	link := LinkBuilder{}.TestLink("a", "T")

	assert.Contains(t, link, constants.DefaultTestVisibilityURL+"?query=")
	assert.Contains(t, link, "datadog-agent")
}
