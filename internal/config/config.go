// Package config holds runtime configuration: defaults, YAML file loading,
// and validation. Defaults match the legacy Python scripts for parity.
package config

import (
	"errors"
	"fmt"

	"github.com/glowmark/limelight/internal/color"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [Load], and then mutated by CLI flag bindings
// before being passed (by pointer) to packages that need it. Nothing else
// mutates it after startup.
type Config struct {
	// Text inputs. CLI flags take precedence over file values.
	Sentence  string `yaml:"sentence"`
	Highlight string `yaml:"highlight"`
	Basename  string `yaml:"basename"`

	// Canvas and typography for the title card.
	CanvasWidth           int       `yaml:"canvas_width"`  // Default: 1920.
	CanvasHeight          int       `yaml:"canvas_height"` // Default: 1080.
	WrapRatio             float64   `yaml:"wrap_ratio"`    // Fraction of canvas width used for line wrapping. Default: 0.92.
	BackgroundColor       color.RGB `yaml:"background_color"`
	TextColor             color.RGB `yaml:"text_color"`
	DefaultHighlightColor color.RGB `yaml:"default_highlight_color"`
	BaseFontFamily        string    `yaml:"base_font_family"`  // Default: "Arial".
	BaseFontSizePt        float64   `yaml:"base_font_size_pt"` // Default: 100.

	// Video timing and encoding.
	PNGPath         string  `yaml:"png_path"` // Source card; discovery kicks in when missing.
	OutputVideo     string  `yaml:"output_video"`
	TotalDuration   float64 `yaml:"total_duration"`    // Seconds. Default: 10.
	FadeInDuration  float64 `yaml:"fade_in_duration"`  // Default: 1.5.
	FadeOutDuration float64 `yaml:"fade_out_duration"` // Default: 1.5.
	EasingIn        string  `yaml:"easing_in"`         // Default: "linear".
	EasingOut       string  `yaml:"easing_out"`
	Width           int     `yaml:"width"` // Output video dimensions.
	Height          int     `yaml:"height"`
	FPS             int     `yaml:"fps"`      // Default: 30.
	Codec           string  `yaml:"codec"`    // Default: "libx265".
	HWAccel         bool    `yaml:"hw_accel"` // Substitute hevc_videotoolbox for libx265.

	// Output layout.
	OutputRoot string `yaml:"output_root"` // Root for card output and PNG discovery. Default: "output".

	// Styling variants for the card step. Order is preserved from the file;
	// when empty the built-in demo set is used.
	Variants VariantList `yaml:"variants"`

	// Display and logging (CLI flags only, never from the file).
	DryRun    bool      `yaml:"-"`
	Verbose   bool      `yaml:"-"`
	ColorMode ColorMode `yaml:"-"`
	LogFile   string    `yaml:"-"`
}

// DefaultConfig returns a Config with all defaults matching the legacy
// pango_feature_demos.py and video_pipeline.py behavior.
func DefaultConfig() Config {
	return Config{
		Basename:              "demo",
		CanvasWidth:           1920,
		CanvasHeight:          1080,
		WrapRatio:             0.92,
		BackgroundColor:       color.RGB{R: 0.2, G: 0.2, B: 0.2},
		TextColor:             color.RGB{R: 1, G: 1, B: 1},
		DefaultHighlightColor: color.RGB{R: 0, G: 0.6, B: 1},
		BaseFontFamily:        "Arial",
		BaseFontSizePt:        100,
		PNGPath:               "output/demo_color.png",
		OutputVideo:           "output/fade.mp4",
		TotalDuration:         10,
		FadeInDuration:        1.5,
		FadeOutDuration:       1.5,
		EasingIn:              "linear",
		EasingOut:             "linear",
		Width:                 1920,
		Height:                1080,
		FPS:                   30,
		Codec:                 "libx265",
		HWAccel:               false,
		OutputRoot:            "output",
		ColorMode:             ColorAuto,
	}
}

// WrapWidth returns the pixel width available for line wrapping on the card.
func (c *Config) WrapWidth() int {
	return int(float64(c.CanvasWidth) * c.WrapRatio)
}

// Validate checks numeric ranges and enum fields. Suspicious-but-tolerated
// conditions (fade durations exceeding the total) are not rejected here;
// the video path warns about them instead.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas dimensions must be positive (got %dx%d)", c.CanvasWidth, c.CanvasHeight)
	}
	if c.WrapRatio <= 0 || c.WrapRatio > 1 {
		return fmt.Errorf("wrap_ratio must be in (0, 1] (got %v)", c.WrapRatio)
	}
	if c.BaseFontSizePt <= 0 {
		return fmt.Errorf("base_font_size_pt must be positive (got %v)", c.BaseFontSizePt)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("video dimensions must be positive (got %dx%d)", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive (got %d)", c.FPS)
	}
	if c.TotalDuration <= 0 {
		return fmt.Errorf("total_duration must be positive (got %v)", c.TotalDuration)
	}
	if c.FadeInDuration < 0 || c.FadeOutDuration < 0 {
		return errors.New("fade durations must not be negative")
	}
	if c.Codec == "" {
		return errors.New("codec must not be empty")
	}
	return nil
}

// RequireText ensures sentence and highlight text are present (from flags
// or the config file) before the card pipeline runs.
func (c *Config) RequireText() error {
	if c.Sentence == "" {
		return errors.New("no sentence given (use --sentence or the 'sentence' config key)")
	}
	if c.Highlight == "" {
		return errors.New("no highlight phrase given (use --highlight or the 'highlight' config key)")
	}
	return nil
}
