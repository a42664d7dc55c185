// Package main is the entry point for the edit text editor.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jstene/edit/internal/app"
	"github.com/jstene/edit/internal/config"
	"github.com/jstene/edit/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// newBackend creates the terminal driver named by ui.backend.
var newBackend = func(name string) (backend.Backend, error) {
	switch name {
	case config.BackendRaw:
		return backend.NewRaw(), nil
	default:
		return backend.NewTerminal()
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// flags holds command-line overrides.
type flags struct {
	configPath string
	logLevel   string
	backend    string
	noColor    bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var f flags

	root := &cobra.Command{
		Use:   "edit <filename>",
		Short: "A minimal full-screen text editor",
		Long: `edit opens one file in a full-screen terminal editor.

Type to insert text. Arrow keys, Home and End move the cursor.
Commands are prefixed with Escape:

  Esc s   save
  Esc e   save and exit
  Esc x   exit without saving

Ctrl-C saves and exits.`,
		Version:       version + " (" + commit + ")",
		Args:          exactlyOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(args[0], f)
		},
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (%v)", app.ErrUsage, err)
	})

	fl := root.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "config file path (default $XDG_CONFIG_HOME/edit/config.toml)")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fl.StringVar(&f.backend, "backend", "", "terminal backend: tcell or raw")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colors")

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "edit: %v\n", err)
	}
	return exitCode(err)
}

func exactlyOneFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return app.ErrUsage
	}
	return nil
}

// exitCode maps an error from the root command to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, app.ErrUsage):
		return exitUsage
	default:
		return exitError
	}
}

// loadConfig resolves the settings and applies flag overrides.
func loadConfig(f flags) (*config.Config, error) {
	opts := []config.Option{}
	if f.configPath != "" {
		opts = append(opts, config.WithConfigFile(f.configPath))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, &app.InitError{Component: "config", Err: err}
	}

	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.backend != "" {
		cfg.UI.Backend = f.backend
	}
	if f.noColor {
		cfg.UI.Colors = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, &app.InitError{Component: "config", Err: err}
	}
	return cfg, nil
}

// edit runs one session on path. The file is read before the terminal is
// touched, so open failures leave the terminal alone.
func edit(path string, f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	logger, closer := app.NewFileLogger(cfg.Logging)
	defer closer.Close()

	sess, err := app.OpenSession(path, app.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	b, err := newBackend(cfg.UI.Backend)
	if err != nil {
		logger.WithComponent("backend").Error("create %s: %v", cfg.UI.Backend, err)
		return &app.InitError{Component: "backend", Err: err}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer func() {
		signal.Stop(sigs)
		close(sigs)
	}()

	go func() {
		for sig := range sigs {
			logger.Info("received %v", sig)
			sess.Interrupt()
		}
	}()

	return sess.Run(b)
}
