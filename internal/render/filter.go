package render

import (
	"strconv"
	"strings"

	"github.com/glowmark/limelight/internal/config"
)

// BuildFadeFilter constructs the comma-joined ffmpeg video filter chain:
// scale to the target dimensions, alpha fade-in from t=0, alpha fade-out
// ending on the clip boundary. Scale must come first so the fades operate
// on output-sized frames.
//
// Some ffmpeg builds lack the curve option on the fade filter, so it is
// omitted for broad compatibility and fades default to linear; the resolved
// curves from [NormalizeEasing] are reported in debug logging instead.
func BuildFadeFilter(cfg *config.Config) string {
	parts := []string{
		"scale=" + strconv.Itoa(cfg.Width) + ":" + strconv.Itoa(cfg.Height),
		"fade=t=in:st=0:d=" + formatSeconds(cfg.FadeInDuration) + ":alpha=1",
		"fade=t=out:st=" + formatSeconds(FadeOutStart(cfg)) + ":d=" + formatSeconds(cfg.FadeOutDuration) + ":alpha=1",
	}
	return strings.Join(parts, ",")
}

// FadeOutStart returns the fade-out start offset: one frame interval before
// total-fadeOut, so the last encoded frame reaches full transparency instead
// of the fade overshooting the clip boundary.
func FadeOutStart(cfg *config.Config) float64 {
	return cfg.TotalDuration - cfg.FadeOutDuration - 1.0/float64(cfg.FPS)
}

// HoldDuration returns the fully-opaque middle section length. It may be
// negative when the fades exceed the total duration; callers warn but the
// value is passed through unclamped.
func HoldDuration(cfg *config.Config) float64 {
	return cfg.TotalDuration - cfg.FadeInDuration - cfg.FadeOutDuration
}

// formatSeconds renders a duration value the way ffmpeg expects: shortest
// decimal form, no exponent for the magnitudes in play here.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
