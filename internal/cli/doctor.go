package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/verdict/internal/config"
	"github.com/mrz1836/verdict/internal/errors"
	"github.com/mrz1836/verdict/internal/tui"
)

// AddDoctorCommand adds the doctor command to the root command.
func AddDoctorCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newDoctorCmd(flags, config.NewToolDetector()))
}

func newDoctorCmd(flags *GlobalFlags, detector *config.ToolDetector) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external tools verdict runs are installed",
		Long: `Check that go, gotestsum, golangci-lint and git are installed and recent
enough for the default test and lint commands.

Examples:
  verdict doctor
  verdict doctor --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags, detector, cmd.OutOrStdout())
		},
	}
}

func runDoctor(cmd *cobra.Command, flags *GlobalFlags, detector *config.ToolDetector, w io.Writer) error {
	tui.CheckNoColor()
	logger := GetLogger()
	ctx := logger.WithContext(cmd.Context())

	detection, err := detector.Detect(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to detect tools")
	}

	out := tui.NewOutput(w, flags.Output)
	if flags.Output == OutputJSON {
		if err := out.JSON(detection); err != nil {
			return err
		}
		if detection.HasMissingRequired {
			return fmt.Errorf("%w: %w", errors.ErrJSONErrorOutput, errors.ErrMissingRequiredTools)
		}
		return nil
	}

	rows := make([][]string, 0, len(detection.Tools))
	for _, tool := range detection.Tools {
		version := tool.CurrentVersion
		if version == "" {
			version = "-"
		}
		required := "optional"
		if tool.Required {
			required = "required"
		}
		rows = append(rows, []string{tool.Name, tool.Status.String(), version, required})
	}
	out.Table([]string{"TOOL", "STATUS", "VERSION", "REQUIRED"}, rows)

	if missing := detection.MissingRequiredTools(); len(missing) > 0 {
		out.Warning(config.FormatMissingToolsError(missing))
		return errors.ErrMissingRequiredTools
	}
	out.Success("All required tools are installed")
	return nil
}
