// Package pipeline orchestrates the card and video steps: markup building,
// rasterization of every variant, video synthesis, and batch reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glowmark/limelight/internal/config"
	"github.com/glowmark/limelight/internal/display"
	"github.com/glowmark/limelight/internal/logging"
	"github.com/glowmark/limelight/internal/magick"
	"github.com/glowmark/limelight/internal/markup"
	"github.com/glowmark/limelight/internal/render"
)

// Run executes the full pipeline: cards first, then the fade video. The
// video step resolves its source through the normal configured-path-then-
// discovery policy, so freshly written cards are picked up automatically.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	if err := RunCards(ctx, cfg, log, &stats); err != nil {
		log.Error("%v", err)
		stats.Failed++
		return stats
	}
	if ctx.Err() != nil {
		log.Warn("Interrupted")
		return stats
	}
	if err := RunVideo(ctx, cfg, log, &stats); err != nil {
		log.Error("%v", err)
		stats.Failed++
	}
	return stats
}

// RunCards builds one markup document per variant and rasterizes each into
// a timestamped directory under the output root. In dry-run mode it prints
// the variant table instead of rendering.
func RunCards(ctx context.Context, cfg *config.Config, log *logging.Logger, stats *RunStats) error {
	if err := cfg.RequireText(); err != nil {
		return err
	}

	base := markup.BaseStyle{
		FontFamily: cfg.BaseFontFamily,
		SizePt:     cfg.BaseFontSizePt,
		Foreground: cfg.TextColor,
	}
	variants := markup.VariantsFromConfig(cfg)

	docs, err := markup.BuildAll(cfg.Sentence, cfg.Highlight, base, variants)
	if err != nil {
		return err
	}
	log.Info("Sentence: %s", cfg.Sentence)
	log.Info("Highlight: %q (%d variant(s))", cfg.Highlight, len(docs))

	if cfg.DryRun {
		rows := make([][]string, 0, len(variants))
		for _, v := range variants {
			rows = append(rows, []string{v.Suffix, v.Overrides.String()})
		}
		fmt.Println(display.VariantTable(rows))
		log.Success("[DRY] Would render %d card(s)", len(docs))
		return nil
	}

	outDir, err := MakeCardDir(cfg.OutputRoot, time.Now())
	if err != nil {
		return err
	}
	log.Info("Card directory: %s", outDir)

	for _, doc := range docs {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return nil
		}
		outPath := filepath.Join(outDir, cfg.Basename+"_"+doc.Suffix+".png")
		if err := magick.RenderCard(ctx, cfg, doc.Markup, outPath); err != nil {
			return err
		}
		stats.Cards++
		log.Render("Card: %s", filepath.Base(outPath))
	}
	log.Success("%d card(s) written", stats.Cards)
	return nil
}

// RunVideo synthesizes the ffmpeg invocation and executes it. In dry-run
// mode it prints the plan and the command without encoding.
func RunVideo(ctx context.Context, cfg *config.Config, log *logging.Logger, stats *RunStats) error {
	if hold := render.HoldDuration(cfg); hold < 0 {
		log.Warn("fade_in + fade_out exceed total_duration (hold = %s); output will never reach full opacity",
			display.FormatSeconds(hold))
	}

	args, src, err := render.Synthesize(cfg)
	if err != nil {
		return err
	}
	if src.Discovered {
		log.Warn("Configured card missing; using discovered %s", src.Path)
	}
	log.Debug(cfg.Verbose, "Fade curves: in=%s out=%s (curve option omitted for encoder compatibility)",
		render.NormalizeEasing(cfg.EasingIn), render.NormalizeEasing(cfg.EasingOut))

	if cfg.DryRun {
		fmt.Println(display.PlanTable(planRows(cfg, src.Path)))
		log.Success("[DRY] Would run: %s", commandLine(args))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.OutputVideo), 0o755); err != nil {
		return fmt.Errorf("create video output directory: %w", err)
	}

	log.Render("Encoding %s -> %s", filepath.Base(src.Path), cfg.OutputVideo)
	log.Debug(cfg.Verbose, "Command: %s", commandLine(args))

	res := render.Execute(ctx, cfg, args)
	if res.Err != nil {
		return fmt.Errorf("ffmpeg failed: %w (stderr: %s)", res.Err, tail(res.Stderr, 400))
	}

	stats.Videos++
	if fi, err := os.Stat(cfg.OutputVideo); err == nil {
		log.Success("Video written: %s (%s)", cfg.OutputVideo, display.FormatBytes(fi.Size()))
	} else {
		log.Success("Video written: %s", cfg.OutputVideo)
	}
	return nil
}

// planRows summarizes the video invocation for dry-run display.
func planRows(cfg *config.Config, source string) [][]string {
	return [][]string{
		{"Source", source},
		{"Output", cfg.OutputVideo},
		{"Dimensions", fmt.Sprintf("%dx%d @ %d fps", cfg.Width, cfg.Height, cfg.FPS)},
		{"Duration", display.FormatSeconds(cfg.TotalDuration)},
		{"Fade in / out", display.FormatSeconds(cfg.FadeInDuration) + " / " + display.FormatSeconds(cfg.FadeOutDuration)},
		{"Hold", display.FormatSeconds(render.HoldDuration(cfg))},
		{"Codec", render.SelectCodec(cfg.Codec, cfg.HWAccel)},
	}
}

// commandLine joins an argument list for log display.
func commandLine(args []string) string {
	return strings.Join(args, " ")
}

// tail returns at most the last n bytes of s, for compact error reporting.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
