// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// common-followers shows the GitHub accounts that follow both of two
// users.
//
// Two modes of operation:
//
// Interactive (default): a terminal UI with two username fields. The
// intersection is fetched as soon as both are filled in; edits to the
// second field are debounced.
//
// Print mode (--print, --json, or two usernames with stdout not a
// terminal): fetches once, writes one login per line (or the JSON
// document the HTTP service returns), and exits 1 with
// "error: User not found" when either user cannot be fetched.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/commonfollowers/lib/bootstrap"
	"github.com/bureau-foundation/commonfollowers/lib/config"
	"github.com/bureau-foundation/commonfollowers/lib/followerui"
	"github.com/bureau-foundation/commonfollowers/lib/process"
	"github.com/bureau-foundation/commonfollowers/lib/version"
)

const binaryName = "common-followers"

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

type options struct {
	configPath string
	token      string
	debounce   time.Duration
	printMode  bool
	jsonMode   bool
	noColor    bool
	logOutput  string
	version    bool
}

func run() error {
	var opts options

	flagSet := pflag.NewFlagSet(binaryName, pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "path to YAML config (default: $"+config.EnvConfigPath+")")
	flagSet.StringVar(&opts.token, "token", "", "GitHub token (default: config github.token, then $"+config.EnvToken+")")
	flagSet.DurationVar(&opts.debounce, "debounce", 0, "quiet period before applying second-username edits (default: config viewer.debounce)")
	flagSet.BoolVar(&opts.printMode, "print", false, "print common followers and exit instead of starting the UI")
	flagSet.BoolVar(&opts.jsonMode, "json", false, "print the result as JSON (implies --print)")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&opts.version, "version", false, "print version information and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if opts.version {
		version.Print(os.Stdout, binaryName)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 2 {
		return fmt.Errorf("expected at most two usernames, got %d", len(args))
	}

	printMode := opts.printMode || opts.jsonMode ||
		(len(args) == 2 && !term.IsTerminal(int(os.Stdout.Fd())))
	if printMode && len(args) != 2 {
		return fmt.Errorf("print mode needs two usernames: %s [flags] FIRST SECOND", binaryName)
	}

	if opts.noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.token != "" {
		cfg.GitHub.Token = opts.token
	}
	if flagSet.Changed("debounce") {
		cfg.Viewer.Debounce = opts.debounce
	}

	logger, closeLog, err := newLogger(opts.logOutput, printMode)
	if err != nil {
		return err
	}
	defer closeLog()

	runtime, err := bootstrap.Start(cfg, bootstrap.Options{Binary: binaryName, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if err := runtime.Close(); err != nil {
			logger.Warn("saving etag cache failed", "error", err)
		}
	}()

	if printMode {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		output := termenv.NewOutput(os.Stderr)
		if opts.noColor {
			output = termenv.NewOutput(os.Stderr, termenv.WithProfile(termenv.Ascii))
		}
		return printCommon(ctx, printConfig{
			stdout:  os.Stdout,
			stderr:  output,
			fetcher: runtime.Fetcher,
			first:   args[0],
			second:  args[1],
			json:    opts.jsonMode,
		})
	}

	var initialFirst, initialSecond string
	if len(args) > 0 {
		initialFirst = args[0]
	}
	if len(args) > 1 {
		initialSecond = args[1]
	}

	// Zero means "use the default" to the model; an explicit zero
	// debounce from config or flags means "apply immediately".
	debounce := cfg.Viewer.Debounce
	if debounce == 0 {
		debounce = -1
	}

	model := followerui.NewModel(followerui.Config{
		Fetcher:       runtime.Fetcher,
		Debounce:      debounce,
		RateLimit:     runtime.Client.RateLimit,
		InitialFirst:  initialFirst,
		InitialSecond: initialSecond,
		Logger:        logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// newLogger builds the process logger. The UI owns the terminal, so
// without --log-output its logs are discarded; print mode logs
// warnings to stderr.
func newLogger(logOutput string, printMode bool) (*slog.Logger, func(), error) {
	if logOutput != "" {
		handler, closeFile, err := openFileLogHandler(logOutput)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", logOutput, err)
		}
		return slog.New(handler), closeFile, nil
	}
	if printMode {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `common-followers: find the GitHub users who follow both of two accounts.

With no arguments, opens an interactive terminal UI. Usernames given
as arguments prefill the UI. With --print or --json, or when stdout is
not a terminal and two usernames are given, prints the result and
exits.

Usage:
  common-followers [flags] [FIRST [SECOND]]

Examples:
  # Interactive
  common-followers

  # One login per line
  common-followers --print torvalds gregkh

  # JSON, as served by common-followers-service
  common-followers --json torvalds gregkh | jq .count

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
