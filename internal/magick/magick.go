// Package magick renders markup documents to PNG title cards through
// ImageMagick's pango delegate. It owns the argument assembly and process
// invocation; the markup itself comes from the markup package.
package magick

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/glowmark/limelight/internal/config"
)

// BuildArgs constructs the magick invocation: a solid background canvas at
// full size, the pango-rendered text at wrap width as a second image, and
// a centered composite of the two. Wrap width is height-auto ("1766x") so
// Pango handles the line breaking.
func BuildArgs(cfg *config.Config, markupPath, outputPath string) []string {
	canvas := strconv.Itoa(cfg.CanvasWidth) + "x" + strconv.Itoa(cfg.CanvasHeight)
	return []string{
		"magick",
		"-size", canvas,
		"xc:" + cfg.BackgroundColor.Hex(),
		"(",
		"-size", strconv.Itoa(cfg.WrapWidth()) + "x",
		"-background", "none",
		"pango:@" + markupPath,
		")",
		"-gravity", "center",
		"-composite",
		outputPath,
	}
}

// RenderCard writes the markup to a scratch file and runs magick to
// produce outputPath. The markup goes through a file rather than the
// command line because the pango delegate mishandles inline arguments
// containing spaces.
func RenderCard(ctx context.Context, cfg *config.Config, doc, outputPath string) error {
	markupPath, cleanup, err := writeMarkupFile(doc)
	if err != nil {
		return err
	}
	defer cleanup()

	args := BuildArgs(cfg, markupPath, outputPath)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("magick render of %s failed: %w (stderr: %s)",
			filepath.Base(outputPath), err, bytes.TrimSpace(stderrBuf.Bytes()))
	}
	return nil
}

// writeMarkupFile stores the document in the system temp directory and
// returns the path plus a cleanup func.
func writeMarkupFile(doc string) (string, func(), error) {
	f, err := os.CreateTemp("", "limelight-markup-*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("create markup scratch file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.WriteString(doc); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write markup scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close markup scratch file: %w", err)
	}
	return path, cleanup, nil
}
