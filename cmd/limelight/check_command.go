package main

import (
	"github.com/spf13/cobra"

	"github.com/glowmark/limelight/internal/check"
	"github.com/glowmark/limelight/internal/display"
)

func newCheckCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ImageMagick, the pango delegate, ffmpeg, and encoders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := state.bootstrap()
			if err != nil {
				return err
			}
			defer log.Close()

			display.PrintBanner()
			check.RunCheck(cfg, log)
			return nil
		},
	}
}
