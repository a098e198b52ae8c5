package main

import (
	"github.com/spf13/cobra"

	"github.com/kohaku-dev/animbatch/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "animbatch",
	Short: "Batch-export skeletal-animation assets to video and sprite deliverables",
	Long: `animbatch turns pre-rendered skeletal-animation frame dumps into
standardized deliverables: canonical-named sprite sequences, packed
texture atlases, or preview videos, bundled into a single archive.

For interactive mode, use: animbatch-tui`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to settings file (JSON)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(manifestCmd)
}

// loadSettings loads the configured settings file, or defaults when no
// --config was given.
func loadSettings() (*config.Settings, error) {
	if configPath == "" {
		return config.DefaultSettings(), nil
	}
	return config.Load(configPath)
}
