package main

import (
	"github.com/spf13/cobra"

	"github.com/glowmark/limelight/internal/check"
	"github.com/glowmark/limelight/internal/display"
	"github.com/glowmark/limelight/internal/pipeline"
)

func newCardCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "card",
		Short: "Render highlighted title card variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := state.bootstrap()
			if err != nil {
				return err
			}
			defer log.Close()

			display.PrintBanner()
			if cfg.DryRun {
				log.Warn("DRY RUN — no files will be written")
			} else if err := check.CardDeps(); err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			var stats pipeline.RunStats
			return pipeline.RunCards(ctx, cfg, log, &stats)
		},
	}
}
