// Package main is the entry point for the glint viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/glint/internal/app"
	"github.com/dshills/glint/internal/config"
	"github.com/dshills/glint/internal/engine/buffer"
	"github.com/dshills/glint/internal/input/keymap"
	"github.com/dshills/glint/internal/renderer"
	"github.com/dshills/glint/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// newBackend builds the terminal gateway named by ui.backend.
var newBackend = func(name string) (backend.Backend, error) {
	switch name {
	case config.BackendANSI:
		return backend.NewANSITerminal(), nil
	default:
		return backend.NewTerminal()
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath string
	logLevel   string
	logFile    string
	backend    string
	file       string
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code, done := parseFlags(args, stdout, stderr)
	if done {
		return code
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	logCfg := cfg.Logging()
	logger, closer, err := app.OpenLogFile(logCfg.File, app.ParseLogLevel(logCfg.Level))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer closer.Close()
	app.SetLogger(logger)
	logger.Info("glint %s (commit %s, built %s), config %s", version, commit, date, cfg.Path())

	buf := buffer.New()
	if opts.file != "" {
		if buf, err = buffer.Load(opts.file); err != nil {
			logger.Error("%v", err)
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	km, err := buildKeymap(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	ui := cfg.UI()
	term, err := newBackend(ui.Backend)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return exitError
	}

	application, err := app.New(app.Options{
		Backend: term,
		Buffer:  buf,
		Keymap:  km,
		View: renderer.ViewOptions{
			Product:     ui.Product,
			Version:     version,
			Placeholder: ui.Placeholder,
		},
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return exitError
	}

	// Run restores the terminal before returning, so errors can go to stderr.
	if err := application.Run(); err != nil {
		var perr *app.RecoveredPanicError
		if errors.As(err, &perr) {
			logger.Error("%v\n%s", perr, perr.Stack)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// loadConfig loads the configuration file and environment, then applies
// command line overrides on top.
func loadConfig(opts options) (*config.Config, error) {
	var copts []config.Option
	if opts.configPath != "" {
		copts = append(copts, config.WithPath(opts.configPath))
	}
	cfg := config.New(copts...)
	if err := cfg.Load(); err != nil {
		return nil, err
	}

	overrides := map[string]string{
		"logging.level": opts.logLevel,
		"logging.file":  opts.logFile,
		"ui.backend":    opts.backend,
	}
	for path, value := range overrides {
		if value == "" {
			continue
		}
		if err := cfg.Set(path, value); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildKeymap returns the default keymap with any configured overrides.
func buildKeymap(cfg *config.Config) (*keymap.Keymap, error) {
	overrides, err := cfg.Keymap()
	if err != nil {
		return nil, err
	}
	km := keymap.Default()
	if err := km.Apply(overrides); err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return km, nil
}

// parseFlags parses args. When done is true the caller should exit with code.
func parseFlags(args []string, stdout, stderr io.Writer) (opts options, code int, done bool) {
	var showVersion bool
	var showHelp bool

	fs := flag.NewFlagSet("glint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	fs.StringVar(&opts.backend, "backend", "", "Terminal backend (tcell, ansi)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "glint - minimal terminal text viewer\n\n")
		fmt.Fprintf(stderr, "Usage: glint [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Arrows, Home, End, PgUp, PgDn   Move the cursor\n")
		fmt.Fprintf(stderr, "  Ctrl+Q                          Quit\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, exitOK, true
		}
		return opts, exitUsage, true
	}

	if showHelp {
		fs.Usage()
		return opts, exitOK, true
	}

	if showVersion {
		fmt.Fprintf(stdout, "glint %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, exitOK, true
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: expected at most one file, got %d\n", fs.NArg())
		fs.Usage()
		return opts, exitUsage, true
	}

	return opts, exitOK, false
}
