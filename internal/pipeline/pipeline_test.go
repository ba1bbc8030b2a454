package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glowmark/limelight/internal/config"
	"github.com/glowmark/limelight/internal/logging"
	"github.com/glowmark/limelight/internal/markup"
	"github.com/glowmark/limelight/internal/render"
)

// --- Helper builders ---

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func dryRunCfg(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Sentence = "Growth comes from stepping out of the comfort zone."
	cfg.Highlight = "comfort zone"
	cfg.OutputRoot = t.TempDir()
	cfg.DryRun = true
	cfg.ColorMode = config.ColorNever
	return &cfg
}

func TestMakeCardDir(t *testing.T) {
	root := t.TempDir()
	now := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	dir, err := MakeCardDir(root, now)
	if err != nil {
		t.Fatalf("MakeCardDir() = %v", err)
	}
	if filepath.Base(dir) != "20260828-150405" {
		t.Errorf("dir = %q, want timestamped name", dir)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}

func TestRunCards_DryRunRendersNothing(t *testing.T) {
	cfg := dryRunCfg(t)
	log := testLogger(t)

	var stats RunStats
	if err := RunCards(context.Background(), cfg, log, &stats); err != nil {
		t.Fatalf("RunCards() = %v", err)
	}
	if stats.Cards != 0 {
		t.Errorf("dry run wrote %d cards", stats.Cards)
	}
	entries, _ := os.ReadDir(cfg.OutputRoot)
	if len(entries) != 0 {
		t.Errorf("dry run created output entries: %v", entries)
	}
}

func TestRunCards_MissingText(t *testing.T) {
	cfg := dryRunCfg(t)
	cfg.Sentence = ""
	log := testLogger(t)

	var stats RunStats
	if err := RunCards(context.Background(), cfg, log, &stats); err == nil {
		t.Error("missing sentence should fail")
	}
}

func TestRunCards_PhraseNotFound(t *testing.T) {
	cfg := dryRunCfg(t)
	cfg.Highlight = "not in the sentence at all"
	log := testLogger(t)

	var stats RunStats
	err := RunCards(context.Background(), cfg, log, &stats)
	if !errors.Is(err, markup.ErrPhraseNotFound) {
		t.Errorf("err = %v, want ErrPhraseNotFound", err)
	}
}

func TestRunVideo_DryRunWithExistingSource(t *testing.T) {
	cfg := dryRunCfg(t)
	src := filepath.Join(t.TempDir(), "demo_color.png")
	if err := os.WriteFile(src, []byte("\x89PNG\r\n\x1a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.PNGPath = src
	cfg.OutputVideo = filepath.Join(t.TempDir(), "fade.mp4")
	log := testLogger(t)

	var stats RunStats
	if err := RunVideo(context.Background(), cfg, log, &stats); err != nil {
		t.Fatalf("RunVideo() = %v", err)
	}
	if stats.Videos != 0 {
		t.Errorf("dry run encoded %d videos", stats.Videos)
	}
	if _, err := os.Stat(cfg.OutputVideo); !os.IsNotExist(err) {
		t.Error("dry run must not write the output video")
	}
}

func TestRunVideo_SourceMissing(t *testing.T) {
	cfg := dryRunCfg(t)
	cfg.PNGPath = filepath.Join(cfg.OutputRoot, "missing.png")
	log := testLogger(t)

	var stats RunStats
	err := RunVideo(context.Background(), cfg, log, &stats)
	if !errors.Is(err, render.ErrSourceAssetNotFound) {
		t.Errorf("err = %v, want ErrSourceAssetNotFound", err)
	}
}

func TestTail(t *testing.T) {
	if got := tail("short", 10); got != "short" {
		t.Errorf("tail() = %q", got)
	}
	long := "0123456789abcdef"
	if got := tail(long, 4); got != "...cdef" {
		t.Errorf("tail() = %q", got)
	}
}
