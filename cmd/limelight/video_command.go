package main

import (
	"github.com/spf13/cobra"

	"github.com/glowmark/limelight/internal/check"
	"github.com/glowmark/limelight/internal/display"
	"github.com/glowmark/limelight/internal/pipeline"
)

func newVideoCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "video",
		Short: "Encode a title card into an alpha fade video",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := state.bootstrap()
			if err != nil {
				return err
			}
			defer log.Close()

			display.PrintBanner()
			if cfg.DryRun {
				log.Warn("DRY RUN — no files will be written")
			} else if err := check.VideoDeps(cfg); err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			var stats pipeline.RunStats
			return pipeline.RunVideo(ctx, cfg, log, &stats)
		},
	}
}
