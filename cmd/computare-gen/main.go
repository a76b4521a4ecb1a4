// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// computare-gen is the build helper of the Computare line counter.
//
// Usage:
//
//	computare-gen generate default_config.json src/config_generator.cpp
//	computare-gen embed --template src/main.cpp.in --config src/default_config.yml --output build/main.cpp
//	computare-gen prebuild && cmake --build build && computare-gen postbuild
//	computare-gen run --watch
//
// Exit codes:
//   - 0: success
//   - 1: the command failed (invalid document, I/O error, ...)
//   - 2: usage error (bad arguments or flags)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/computare/computare-gen/internal/config"
	xglog "github.com/computare/computare-gen/internal/log"
	"github.com/computare/computare-gen/internal/version"
	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	xglog.Configure(xglog.Config{Output: stderr, Format: "console", Version: version.Version})

	root := newRootCmd(&app{stdout: stdout, stderr: stderr})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	code := exitCode(err)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if code == exitUsage {
			_, _ = fmt.Fprintf(stderr, "Run 'computare-gen --help' for usage.\n")
		}
	}
	return code
}

// app carries the state shared by all subcommands.
type app struct {
	stdout, stderr io.Writer

	toolConfig string
	logLevel   string

	cfg config.AppConfig
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "computare-gen",
		Short:         "Build helpers for the Computare line counter",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate(version.String() + "\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&a.toolConfig, "tool-config", "",
		"path to computare-gen.yaml (default: $COMPUTARE_CONFIG or ./computare-gen.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newGenerateCmd(a),
		newValidateCmd(a),
		newEmbedCmd(a),
		newPrebuildCmd(a),
		newPostbuildCmd(a),
		newRunCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads .env and the tool configuration, then reconfigures logging.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv("."); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.NewLoader(config.ResolvePath(a.toolConfig, ".")).Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	xglog.Configure(xglog.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  a.stderr,
		Version: version.Version,
	})
	logger := xglog.WithComponent("cli")
	logger.Debug().
		Str(xglog.FieldCommand, cmd.Name()).
		Str(xglog.FieldPath, cfg.ConfigPath).
		Msg("configuration loaded")
	return nil
}

// usageError marks errors that should exit with exitUsage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// usageArgs wraps a positional-argument validator so its failures exit with exitUsage.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		return exitUsage
	}
	return exitFailure
}
