package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verdicterrors "github.com/mrz1836/verdict/internal/errors"
)

// foreignResult satisfies Result from inside the package only.
type foreignResult struct{}

func (foreignResult) Path() string { return "x" }
func (foreignResult) Failed() bool { return true }
func (foreignResult) Type() string { return "Other" }
func (foreignResult) sealed()      {}

func TestEvaluate_NilResults(t *testing.T) {
	t.Parallel()

	var lint *LintResult
	var test *TestResult

	for _, r := range []Result{nil, lint, test} {
		failed, narrative, err := Evaluate(r, FlavorBase, Env{})
		require.NoError(t, err)
		assert.False(t, failed)
		assert.Empty(t, narrative)
	}
}

func TestEvaluate_UnknownVariant(t *testing.T) {
	t.Parallel()

	failed, _, err := Evaluate(foreignResult{}, FlavorBase, Env{})

	require.ErrorIs(t, err, verdicterrors.ErrUnknownResult)
	assert.True(t, failed)
}

func TestFailureHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Linters failed (iot flavor)\n", failureHeader(TypeLint, FlavorIoT, Env{}))
	assert.Equal(t, "[Tests failed (base flavor)]\n", failureHeader(TypeTest, FlavorBase, Env{
		Emphasize: func(s string) string { return "[" + s + "]" },
	}))
}
