package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/verdict/internal/config"
	"github.com/mrz1836/verdict/internal/result"
	"github.com/mrz1836/verdict/internal/tui"
)

// flavorInfo describes one flavor in JSON output.
type flavorInfo struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// AddFlavorsCommand adds the flavors command to the root command.
func AddFlavorsCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(&cobra.Command{
		Use:   "flavors",
		Short: "List the known build flavors and their build tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFlavors(cmd, flags, cmd.OutOrStdout())
		},
	})
}

func runFlavors(cmd *cobra.Command, flags *GlobalFlags, w io.Writer) error {
	tui.CheckNoColor()
	logger := GetLogger()

	cfg, err := config.Load(logger.WithContext(cmd.Context()))
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	infos := make([]flavorInfo, 0, len(result.Flavors()))
	for _, flavor := range result.Flavors() {
		infos = append(infos, flavorInfo{Name: flavor.String(), Tags: cfg.BuildTags(flavor)})
	}

	out := tui.NewOutput(w, flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name
		if result.Flavor(name) == cfg.Flavor {
			name += " (default)"
		}
		rows = append(rows, []string{name, joinTags(info.Tags)})
	}
	out.Table([]string{"FLAVOR", "TAGS"}, rows)
	return nil
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	joined := tags[0]
	for _, tag := range tags[1:] {
		joined += "," + tag
	}
	return joined
}
