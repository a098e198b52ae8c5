package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kohaku-dev/animbatch/internal/config"
	"github.com/kohaku-dev/animbatch/internal/export"
	"github.com/kohaku-dev/animbatch/internal/model"
	"github.com/kohaku-dev/animbatch/internal/render"
)

var (
	exportFramesRoot string
	exportOutput     string
	exportFormat     string
	exportSpriteMode string
	exportManifest   string
	exportWorkers    int
	exportFPS        int
	exportNoNaming   bool
	exportVerbose    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <asset-key>...",
	Short: "Run a batch export for the selected assets",
	Long: `Export expands every selected asset into per-animation render tasks,
runs them concurrently, and writes one archive with the results.

Asset keys are directories under the frames root, each holding one
subdirectory of numbered frame files per animation:

  <frames-root>/<asset-key>/<animation>/0000.png ...`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		applyExportFlags(cmd, settings)

		cfg, err := settings.ToExportConfig()
		if err != nil {
			return err
		}

		assets := make([]*model.AnimationAsset, len(args))
		for i, key := range args {
			assets[i] = &model.AnimationAsset{
				ID:       key,
				Name:     filepath.Base(key),
				AssetKey: key,
				Status:   model.StatusIdle,
			}
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			fmt.Println("\nInterrupted, cancelling...")
			cancel()
		}()

		engine := render.NewPool(render.NewDirEngine(settings.FramesRoot), settings.Workers)
		manager := export.NewManager(cfg, engine, export.Callbacks{
			OnProgress: func(completed, total int, label string) {
				fmt.Printf("[%d/%d] %s\n", completed, total, label)
			},
			OnEvent: func(event export.ProgressEvent) {
				if event.Level == export.LevelVerbose && !exportVerbose {
					return
				}
				fmt.Println(event.Message)
			},
		})

		result, err := manager.Run(ctx, assets)
		if err != nil {
			return err
		}

		if err := os.WriteFile(settings.OutputPath, result.Archive, 0644); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}

		fmt.Println()
		fmt.Println(assetResultTable(result))
		fmt.Printf("\nWrote %s (%d bytes, %d/%d tasks, run %s)\n",
			settings.OutputPath, result.ArchiveSize, result.CompletedTasks, result.TotalTasks, result.RunID)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFramesRoot, "frames-root", "", "directory holding pre-rendered frame dumps")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "archive output path")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "output format: video or frames")
	exportCmd.Flags().StringVar(&exportSpriteMode, "sprite-mode", "", "frame packaging: sequence or atlas")
	exportCmd.Flags().StringVar(&exportManifest, "manifest", "", "naming manifest file (YAML or JSON)")
	exportCmd.Flags().IntVar(&exportWorkers, "workers", 0, "render concurrency (0 = auto)")
	exportCmd.Flags().IntVar(&exportFPS, "fps", 0, "frame rate")
	exportCmd.Flags().BoolVar(&exportNoNaming, "no-naming", false, "use the flat legacy archive layout")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "show verbose output")
}

// applyExportFlags overlays explicitly-set flags onto the settings.
func applyExportFlags(cmd *cobra.Command, settings *config.Settings) {
	if cmd.Flags().Changed("frames-root") {
		settings.FramesRoot = exportFramesRoot
	}
	if cmd.Flags().Changed("output") {
		settings.OutputPath = exportOutput
	}
	if cmd.Flags().Changed("format") {
		settings.Format = exportFormat
	}
	if cmd.Flags().Changed("sprite-mode") {
		settings.SpriteMode = exportSpriteMode
	}
	if cmd.Flags().Changed("manifest") {
		settings.ManifestPath = exportManifest
	}
	if cmd.Flags().Changed("workers") {
		settings.Workers = exportWorkers
	}
	if cmd.Flags().Changed("fps") {
		settings.FPS = exportFPS
	}
	if exportNoNaming {
		settings.NamingEnabled = false
	}
}
