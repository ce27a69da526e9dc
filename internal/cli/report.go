package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/module"
	"github.com/mrz1836/verdict/internal/result"
)

// ReportFlags holds flags specific to the report command.
type ReportFlags struct {
	// ResultLog is the gotestsum JSON event log to classify.
	ResultLog string
	// ExitCode is the exit status of the test command that wrote the log.
	ExitCode int
	// Module is the module path the log belongs to.
	Module string
	// JUnit is the JUnit report written next to the log, carried into JSON output.
	JUnit string
}

// AddReportCommand adds the report command to the root command.
func AddReportCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newReportCmd(flags, &ReportFlags{}))
}

func newReportCmd(flags *GlobalFlags, reportFlags *ReportFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report failures from an existing test result log",
		Long: `Classify a result log written by 'gotestsum --jsonfile' (or 'go test -json')
and print the genuine failures. Tests that failed and then passed on a rerun
are not reported.

Without --exit-code the test command is assumed to have failed when the log
is missing or lists a failure.

Examples:
  verdict report --result-log test_output.json
  verdict report --result-log pkg/util/test_output.json --module pkg/util --exit-code 1
  verdict report --result-log test_output.json --flavor iot --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, flags, reportFlags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&reportFlags.ResultLog, "result-log", "", "path to the JSON test event log")
	cmd.Flags().IntVar(&reportFlags.ExitCode, "exit-code", 0, "exit status of the test command")
	cmd.Flags().StringVar(&reportFlags.Module, "module", module.RootPath, "module the log belongs to")
	cmd.Flags().StringVar(&reportFlags.JUnit, "junit", "", "path to the JUnit report, if any")

	return cmd
}

func runReport(cmd *cobra.Command, flags *GlobalFlags, reportFlags *ReportFlags, w io.Writer) error {
	s, err := newSession(cmd, flags, w)
	if err != nil {
		return err
	}

	failed := reportFlags.ExitCode != 0
	if !cmd.Flags().Changed("exit-code") {
		failed = logShowsFailure(reportFlags.ResultLog)
	}

	res := result.NewTestResult(module.CleanPath(reportFlags.Module), failed, reportFlags.ResultLog, reportFlags.JUnit)
	s.logger.Debug().
		Str("module", res.Path()).
		Str("result_log", reportFlags.ResultLog).
		Bool("failed", failed).
		Msg("reporting result log")

	success := s.reporter.Reduce(s.ctx, res)
	return s.finish(success, errors.ErrTestsFailed)
}

// logShowsFailure reports whether the log at path is missing, unreadable or
// lists at least one failed package.
func logShowsFailure(path string) bool {
	if path == "" {
		return true
	}
	failures, err := result.ClassifyFile(path)
	if err != nil {
		return true
	}
	return !failures.Empty()
}
