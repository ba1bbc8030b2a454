// Command limelight renders highlighted title cards and fade videos.
//
// It builds Pango markup for a sentence with one highlighted phrase,
// rasterizes styling variants through ImageMagick, and synthesizes the
// ffmpeg invocation that turns a card into an alpha fade video.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "limelight: %v\n", err)
		}
		os.Exit(1)
	}
}
