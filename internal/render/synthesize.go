// Package render synthesizes the ffmpeg invocation that turns a rendered
// title card into a fade-in/hold/fade-out video clip: source resolution,
// timing math, filter-graph assembly, and codec selection. Aside from
// read-only filesystem queries during source resolution, everything here
// is a pure function of the configuration.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/glowmark/limelight/internal/config"
)

// ErrSourceAssetNotFound is returned when neither the configured PNG path
// nor any discovered candidate under the output root exists.
var ErrSourceAssetNotFound = errors.New("source card not found")

// Source is the resolved input asset for the video step.
type Source struct {
	Path       string
	Discovered bool // True when the path came from discovery, not config.
}

// ResolveSource returns the card PNG to encode. The configured path wins
// when it exists; otherwise discovery searches the output root for the
// expected card filename (the base name of the configured path) and takes
// the newest match.
func ResolveSource(cfg *config.Config) (Source, error) {
	if _, err := os.Stat(cfg.PNGPath); err == nil {
		return Source{Path: cfg.PNGPath}, nil
	}

	name := expectedCardName(cfg)
	found, err := DiscoverLatest(cfg.OutputRoot, name)
	if err != nil {
		return Source{}, fmt.Errorf("discovery under %s: %w", cfg.OutputRoot, err)
	}
	if found == "" {
		return Source{}, fmt.Errorf("%w: %s missing and no %s under %s",
			ErrSourceAssetNotFound, cfg.PNGPath, name, cfg.OutputRoot)
	}
	return Source{Path: found, Discovered: true}, nil
}

// expectedCardName is the fixed filename discovery looks for.
func expectedCardName(cfg *config.Config) string {
	return filepath.Base(cfg.PNGPath)
}

// Synthesize resolves the source card and builds the complete ffmpeg
// argument list for the fade clip.
func Synthesize(cfg *config.Config) ([]string, Source, error) {
	src, err := ResolveSource(cfg)
	if err != nil {
		return nil, Source{}, err
	}
	return BuildArgs(cfg, src.Path), src, nil
}

// BuildArgs constructs the ffmpeg argument list in the tool-mandated order:
// overwrite, input loop, input, duration limit, filter graph, codec,
// pixel format, frame rate, output. The pixel format is fixed to the
// alpha-capable yuva420p so fades cut through to transparency.
func BuildArgs(cfg *config.Config, pngPath string) []string {
	return []string{
		"ffmpeg",
		"-y",
		"-loop", "1",
		"-i", pngPath,
		"-t", formatSeconds(cfg.TotalDuration),
		"-vf", BuildFadeFilter(cfg),
		"-c:v", SelectCodec(cfg.Codec, cfg.HWAccel),
		"-pix_fmt", "yuva420p",
		"-r", strconv.Itoa(cfg.FPS),
		cfg.OutputVideo,
	}
}
