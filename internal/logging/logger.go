// Package logging provides the leveled logger used across the CLI:
// timestamped lines, semantic colors from the term package, errors to
// stderr, and an optional append-only file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/glowmark/limelight/internal/config"
	"github.com/glowmark/limelight/internal/term"
)

// Logger provides leveled, optionally colored logging with an optional
// file sink. The file sink always receives plain (uncolored) lines.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	filePath string
}

// NewLogger configures terminal colors from cfg and opens cfg.LogFile when
// set. Call Close when done if a log file was requested.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{}
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	plain := ts + " [" + level + "] " + text + "\n"
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if term.Enabled() {
		_, _ = io.WriteString(out, ts+" "+style.Render("["+level+"]")+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Info, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Success, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Warn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, routed to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Error, fmt.Sprintf(format, args...))
}

// Render logs at RENDER level, used for card and video production lines.
func (l *Logger) Render(format string, args ...interface{}) {
	l.line("RENDER", term.Render, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Debug, fmt.Sprintf(format, args...))
}
