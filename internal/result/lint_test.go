package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLintResult_Failed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		outputs []LintOutput
		failed  bool
	}{
		{"no outputs", nil, false},
		{"all clean", []LintOutput{{ExitCode: 0}, {ExitCode: 0, Stdout: "ok"}}, false},
		{"one failure", []LintOutput{{ExitCode: 0}, {ExitCode: 1}}, true},
		{"negative exit code", []LintOutput{{ExitCode: -1}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := NewLintResult("mod", tc.outputs)
			assert.Equal(t, tc.failed, r.Failed())
			assert.Equal(t, "mod", r.Path())
			assert.Equal(t, TypeLint, r.Type())
		})
	}
}

func TestLintResult_OutputsAreCopied(t *testing.T) {
	t.Parallel()

	outputs := []LintOutput{{ExitCode: 1, Stdout: "x"}}
	r := NewLintResult("mod", outputs)

	outputs[0].Stdout = "mutated"
	got := r.Outputs()
	got[0].Stdout = "also mutated"

	assert.Equal(t, "x", r.Outputs()[0].Stdout)
}

func TestEvaluate_LintPassed(t *testing.T) {
	t.Parallel()

	failed, narrative, err := Evaluate(NewLintResult("mod", []LintOutput{{Stdout: "fine"}}), FlavorBase, Env{})

	require.NoError(t, err)
	assert.False(t, failed)
	assert.Empty(t, narrative)
}

func TestEvaluate_LintFailed(t *testing.T) {
	t.Parallel()

	r := NewLintResult("mod", []LintOutput{
		{ExitCode: 0, Stdout: "clean run", Stderr: "noise"},
		{ExitCode: 1, Stdout: "main.go:3: unused variable", Stderr: "1 issue"},
		{ExitCode: 2, Stderr: "config error"},
		{ExitCode: 3},
	})

	failed, narrative, err := Evaluate(r, FlavorDogstatsd, Env{})

	require.NoError(t, err)
	assert.True(t, failed)
	assert.Equal(t,
		"Linters failed (dogstatsd flavor)\n"+
			"Linter failures:\n"+
			"main.go:3: unused variable\n"+
			"1 issue\n"+
			"config error\n",
		narrative)
}
