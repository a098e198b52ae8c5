package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kohaku-dev/animbatch/internal/naming"
)

var resolveAssetKey string

var resolveCmd = &cobra.Command{
	Use:   "resolve <animation-name>...",
	Short: "Show how animation names canonicalize under the current config",
	Long: `Resolve runs the canonicalization engine on the given raw animation
names and prints the resulting specs. Useful when tuning a naming
manifest: the output shows exactly which category, action, variant,
direction and timing each name ends up with.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		cfg, err := settings.ToExportConfig()
		if err != nil {
			return err
		}

		resolver := naming.NewResolver(cfg.Naming)

		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Raw Name", "Canonical", "Direction", "Timing", "View"})
		for _, raw := range args {
			spec := resolver.Resolve(resolveAssetKey, raw)
			tw.AppendRow(table.Row{raw, spec.CanonicalName, spec.Direction, spec.Timing, spec.View})
		}
		fmt.Println(tw.Render())
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveAssetKey, "asset-key", "", "asset key for manifest lookups")
}
