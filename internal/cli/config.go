package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/verdict/internal/config"
	"github.com/mrz1836/verdict/internal/errors"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// OutputFormat specifies the output format (yaml or json).
	OutputFormat string
}

// AddConfigCommand adds the config command and its subcommands.
func AddConfigCommand(root *cobra.Command) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect verdict configuration",
	}
	AddConfigShowCommand(configCmd)
	root.AddCommand(configCmd)
}

// AddConfigShowCommand adds the show subcommand to the config command.
func AddConfigShowCommand(configCmd *cobra.Command) {
	flags := &ConfigShowFlags{}
	configCmd.AddCommand(newConfigShowCmd(flags))
}

func newConfigShowCmd(flags *ConfigShowFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective verdict configuration after merging:
  - built-in defaults
  - global: ~/.verdict/config.yaml
  - project: .verdict/config.yaml
  - env: VERDICT_* environment variables

Examples:
  verdict config show
  verdict config show --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.OutputFormat, "format", "yaml", "output format (yaml or json)")

	return cmd
}

func runConfigShow(cmd *cobra.Command, w io.Writer, flags *ConfigShowFlags) error {
	logger := GetLogger()
	cfg, err := config.Load(logger.WithContext(cmd.Context()))
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	return writeConfig(w, cfg, flags.OutputFormat)
}

func writeConfig(w io.Writer, cfg *config.Config, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "failed to encode config")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return errors.NewExitCode2Error(fmt.Errorf("%w: %q must be yaml or json", errors.ErrInvalidOutputFormat, format))
	}
}
