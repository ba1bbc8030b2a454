// Package check provides system diagnostics (the check command) and
// pre-run dependency validation for ImageMagick's pango delegate and the
// ffmpeg encoders the video step can select.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/glowmark/limelight/internal/config"
	"github.com/glowmark/limelight/internal/render"
)

// Sentinel errors returned when a required tool or encoder is missing.
var (
	ErrMagickNotFound   = errors.New("magick not found on PATH (install ImageMagick)")
	ErrPangoUnsupported = errors.New("ImageMagick build lacks the pango delegate")
	ErrFfmpegNotFound   = errors.New("ffmpeg not found on PATH")
	ErrEncoderFailed    = errors.New("selected video encoder failed a test encode")
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive check flow: prints availability of magick,
// the pango delegate, ffmpeg, HEVC encoders, and the encoder the current
// config would select. Informational only; it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkMagick(log)
	checkFfmpeg(log)
	checkHEVCEncoders(log)
	checkSelectedEncoder(cfg, log)
}

// checkMagick verifies magick is on PATH and that its build can rasterize
// pango: input.
func checkMagick(log Logger) {
	if _, err := exec.LookPath("magick"); err != nil {
		log.Error("magick not found")
		return
	}
	out, err := exec.Command("magick", "-version").Output()
	if err != nil {
		log.Warn("magick found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("magick: %s", firstLine)

	if hasPangoDelegate() {
		log.Success("pango delegate available")
	} else {
		log.Error("pango delegate missing (rebuild ImageMagick with pango support)")
	}
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return
	}
	out, err := exec.Command("ffmpeg", "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
}

// checkHEVCEncoders lists HEVC and VP9 encoders reported by ffmpeg.
func checkHEVCEncoders(log Logger) {
	log.Info("Relevant encoders:")
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "hevc") || strings.Contains(lower, "265") ||
			strings.Contains(lower, "vp9") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkSelectedEncoder test-encodes with whatever encoder the current
// config resolves to.
func checkSelectedEncoder(cfg *config.Config, log Logger) {
	codec := render.SelectCodec(cfg.Codec, cfg.HWAccel)
	log.Info("Testing encoder %s...", codec)
	if runSilent("ffmpeg", encoderTestArgs(codec)...) {
		log.Success("%s works", codec)
	} else {
		log.Error("%s test encode failed", codec)
	}
}

// CardDeps validates the card path prerequisites: magick on PATH with a
// pango-capable build. Returns a sentinel error on failure.
func CardDeps() error {
	if _, err := exec.LookPath("magick"); err != nil {
		return ErrMagickNotFound
	}
	if !hasPangoDelegate() {
		return ErrPangoUnsupported
	}
	return nil
}

// VideoDeps validates the video path prerequisites: ffmpeg on PATH and a
// working test encode with the encoder the config resolves to.
func VideoDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	codec := render.SelectCodec(cfg.Codec, cfg.HWAccel)
	if !runSilent("ffmpeg", encoderTestArgs(codec)...) {
		return ErrEncoderFailed
	}
	return nil
}

// --- internal helpers ---

// hasPangoDelegate reports whether the installed ImageMagick lists PANGO
// among its supported formats.
func hasPangoDelegate() bool {
	out, err := exec.Command("magick", "-list", "format").Output()
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "PANGO") {
			return true
		}
	}
	return false
}

// encoderTestArgs returns ffmpeg arguments for a minimal test encode with
// the given encoder. No pixel format is forced; the point is only to prove
// the encoder exists and runs.
func encoderTestArgs(codec string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", codec,
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
