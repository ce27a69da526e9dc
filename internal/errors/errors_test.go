package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verdicterrors "github.com/mrz1836/verdict/internal/errors"
)

// testError is a custom error type used to test default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrMalformedEvent", verdicterrors.ErrMalformedEvent, "malformed test event"},
		{"ErrUnknownFlavor", verdicterrors.ErrUnknownFlavor, "unknown flavor"},
		{"ErrModuleNotFound", verdicterrors.ErrModuleNotFound, "module not found"},
		{"ErrTestsFailed", verdicterrors.ErrTestsFailed, "tests failed"},
		{"ErrLintFailed", verdicterrors.ErrLintFailed, "lint failed"},
		{"ErrCommandTimeout", verdicterrors.ErrCommandTimeout, "command timeout exceeded"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	allErrors := []error{
		verdicterrors.ErrMalformedEvent,
		verdicterrors.ErrResultLogUnreadable,
		verdicterrors.ErrUnknownResult,
		verdicterrors.ErrUnknownFlavor,
		verdicterrors.ErrModuleNotFound,
		verdicterrors.ErrTestsFailed,
		verdicterrors.ErrLintFailed,
		verdicterrors.ErrCommandTimeout,
		verdicterrors.ErrRunInProgress,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, err1, err2, "%v should not match %v", err1, err2)
		}
	}
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	wrapped := verdicterrors.Wrap(verdicterrors.ErrMalformedEvent, "classify pkg/a")

	require.Error(t, wrapped)
	require.ErrorIs(t, wrapped, verdicterrors.ErrMalformedEvent)
	assert.Equal(t, "classify pkg/a: malformed test event", wrapped.Error())
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, verdicterrors.Wrap(nil, "should not appear"))
}

func TestWrap_MultipleWraps(t *testing.T) {
	wrapped := verdicterrors.Wrap(verdicterrors.Wrap(verdicterrors.ErrUnknownFlavor, "first"), "second")

	require.ErrorIs(t, wrapped, verdicterrors.ErrUnknownFlavor)
	assert.Contains(t, wrapped.Error(), "first")
	assert.Contains(t, wrapped.Error(), "second")
}

func TestWrapf_MessageFormat(t *testing.T) {
	wrapped := verdicterrors.Wrapf(verdicterrors.ErrMalformedEvent, "line %d of %s", 3, "test_output.json")

	require.ErrorIs(t, wrapped, verdicterrors.ErrMalformedEvent)
	assert.Equal(t, "line 3 of test_output.json: malformed test event", wrapped.Error())
}

func TestWrapf_NilError(t *testing.T) {
	assert.NoError(t, verdicterrors.Wrapf(nil, "line %d", 1))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"malformed", verdicterrors.ErrMalformedEvent, "not a valid test event"},
		{"flavor", verdicterrors.ErrUnknownFlavor, "flavor is not known"},
		{"module", verdicterrors.ErrModuleNotFound, "module is not configured"},
		{"wrapped", fmt.Errorf("outer: %w", verdicterrors.ErrTestsFailed), "Tests failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, verdicterrors.UserMessage(tc.err), tc.contains)
		})
	}
}

func TestUserMessage_NilError(t *testing.T) {
	assert.Empty(t, verdicterrors.UserMessage(nil))
}

func TestUserMessage_UnknownError(t *testing.T) {
	err := testError{msg: "something odd"}
	assert.Equal(t, "something odd", verdicterrors.UserMessage(err))
}

func TestActionable(t *testing.T) {
	msg, action := verdicterrors.Actionable(verdicterrors.ErrUnknownFlavor)
	assert.NotEmpty(t, msg)
	assert.Contains(t, action, "verdict flavors")

	msg, action = verdicterrors.Actionable(nil)
	assert.Empty(t, msg)
	assert.Empty(t, action)

	msg, action = verdicterrors.Actionable(testError{msg: "custom"})
	assert.Equal(t, "custom", msg)
	assert.Empty(t, action)
}

func TestExitCode2Error(t *testing.T) {
	inner := verdicterrors.ErrInvalidOutputFormat
	err := verdicterrors.NewExitCode2Error(inner)

	assert.Equal(t, inner.Error(), err.Error())
	require.ErrorIs(t, err, inner)
	assert.True(t, verdicterrors.IsExitCode2Error(err))
	assert.True(t, verdicterrors.IsExitCode2Error(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, verdicterrors.IsExitCode2Error(inner))
	assert.False(t, verdicterrors.IsExitCode2Error(nil))
}
