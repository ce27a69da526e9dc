package constants

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCommands(t *testing.T) {
	t.Run("test command writes the result log", func(t *testing.T) {
		assert.Contains(t, DefaultTestCommand, "--jsonfile {{json}}")
		assert.Contains(t, DefaultTestCommand, "{{reruns}}")
		assert.Contains(t, DefaultTestCommand, "{{targets}}")
	})

	t.Run("lint command receives build tags", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(DefaultLintCommand, "golangci-lint"))
		assert.Contains(t, DefaultLintCommand, "{{tags}}")
	})
}

func TestTimeouts(t *testing.T) {
	assert.Equal(t, 60*time.Minute, DefaultTestTimeout)
	assert.Greater(t, DefaultTestTimeout, DefaultLintTimeout, "tests usually run longer than linters")
}

func TestRunnerBounds(t *testing.T) {
	assert.LessOrEqual(t, DefaultLintParallelism, MaxLintParallelism)
	assert.LessOrEqual(t, DefaultRerunFails, MaxRerunFails)
}
