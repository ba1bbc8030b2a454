package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/glowmark/limelight/internal/check"
	"github.com/glowmark/limelight/internal/display"
	"github.com/glowmark/limelight/internal/pipeline"
)

func newRunCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Render cards, then encode the fade video",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := state.bootstrap()
			if err != nil {
				return err
			}
			defer log.Close()

			display.PrintBanner()
			if cfg.DryRun {
				log.Warn("DRY RUN — no files will be written")
			} else {
				if err := check.CardDeps(); err != nil {
					return err
				}
				if err := check.VideoDeps(cfg); err != nil {
					return err
				}
			}

			ctx, cancel := signalContext()
			defer cancel()

			stats := pipeline.Run(ctx, cfg, log)
			if !stats.OK() {
				return errors.New("pipeline finished with errors")
			}
			return nil
		},
	}
}
