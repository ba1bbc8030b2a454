package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glowmark/limelight/internal/config"
	"github.com/glowmark/limelight/internal/logging"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// cliState carries the persistent flag values shared by every subcommand.
// Flag values overlay the config file, which overlays the defaults.
type cliState struct {
	root *cobra.Command

	configPath string
	sentence   string
	highlight  string
	basename   string
	dryRun     bool
	verbose    bool
	forceColor bool
	noColor    bool
	logFile    string
}

func newRootCommand() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "limelight",
		Short:         "Highlighted title cards and fade videos",
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	state.root = rootCmd

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&state.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&state.sentence, "sentence", "s", "", "Sentence to render")
	pf.StringVar(&state.highlight, "highlight", "", "Phrase within the sentence to highlight")
	pf.StringVar(&state.basename, "basename", "", "Base name for rendered card files")
	pf.BoolVarP(&state.dryRun, "dry-run", "n", false, "Show what would run without writing files")
	pf.BoolVarP(&state.verbose, "verbose", "v", false, "Verbose (debug) output")
	pf.BoolVar(&state.forceColor, "color", false, "Force ANSI colors on")
	pf.BoolVar(&state.noColor, "no-color", false, "Disable ANSI colors")
	pf.StringVar(&state.logFile, "log", "", "Append plain-text log output to this file")
	rootCmd.MarkFlagsMutuallyExclusive("color", "no-color")

	rootCmd.AddCommand(newCardCommand(state))
	rootCmd.AddCommand(newVideoCommand(state))
	rootCmd.AddCommand(newRunCommand(state))
	rootCmd.AddCommand(newCheckCommand(state))

	return rootCmd
}

// bootstrap builds the effective config (defaults, then file, then flags)
// and a logger. Errors before the logger exists surface through cobra
// directly on stderr.
func (s *cliState) bootstrap() (*config.Config, *logging.Logger, error) {
	cfg := config.DefaultConfig()
	if s.configPath != "" {
		if err := config.Load(s.configPath, &cfg); err != nil {
			return nil, nil, err
		}
	}
	s.applyFlags(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, log, nil
}

// applyFlags overlays flag values onto cfg. Only flags the user actually
// set override the file, so a config file sentence survives a bare
// "limelight card --config demo.yaml".
func (s *cliState) applyFlags(cfg *config.Config) {
	pf := s.root.PersistentFlags()
	if pf.Changed("sentence") {
		cfg.Sentence = s.sentence
	}
	if pf.Changed("highlight") {
		cfg.Highlight = s.highlight
	}
	if pf.Changed("basename") {
		cfg.Basename = s.basename
	}
	cfg.DryRun = s.dryRun
	cfg.Verbose = s.verbose
	cfg.LogFile = s.logFile
	switch {
	case s.forceColor:
		cfg.ColorMode = config.ColorAlways
	case s.noColor:
		cfg.ColorMode = config.ColorNever
	}
}

// signalContext returns a context cancelled on SIGINT/SIGTERM so the
// pipeline can stop between steps without leaving partial output.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
