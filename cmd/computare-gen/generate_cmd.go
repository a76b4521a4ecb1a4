// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"fmt"

	"github.com/computare/computare-gen/internal/codegen"
	xglog "github.com/computare/computare-gen/internal/log"
	"github.com/computare/computare-gen/internal/watch"
	"github.com/spf13/cobra"
)

type codegenFlags struct {
	namespace  string
	collisions string
	legacy     bool
	strict     bool
}

func (f *codegenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.namespace, "namespace", "", "C++ namespace of GenerateDefaultConfig (default from config)")
	cmd.Flags().StringVar(&f.collisions, "collisions", "", "identifier collision policy: suffix or fail (default from config)")
	cmd.Flags().BoolVar(&f.legacy, "legacy", false, "emit ignore patterns unquoted like the historic generator")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject unknown keys in the document")
}

// options layers explicitly set flags over the tool configuration.
func (f *codegenFlags) options(cmd *cobra.Command, a *app) (codegen.Options, bool, error) {
	opts := a.cfg.CodegenOptions()
	if cmd.Flags().Changed("namespace") {
		if err := codegen.ValidateNamespace(f.namespace); err != nil {
			return codegen.Options{}, false, usageError{err}
		}
		opts.Namespace = f.namespace
	}
	if cmd.Flags().Changed("collisions") {
		pol, err := codegen.ParseCollisionPolicy(f.collisions)
		if err != nil {
			return codegen.Options{}, false, usageError{err}
		}
		opts.Collisions = pol
	}
	if f.legacy {
		opts.Escaping = codegen.EscapeLegacy
	}
	return opts, a.cfg.Strict || f.strict, nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		flags    codegenFlags
		watching bool
	)
	cmd := &cobra.Command{
		Use:   "generate <document> <output>",
		Short: "Write the C++ source of GenerateDefaultConfig() for a configuration document",
		Long: `Reads a JSON or YAML configuration document and replaces <output> with the
C++ definition of GenerateDefaultConfig(). Nothing is written when the
document is invalid.`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, strict, err := flags.options(cmd, a)
			if err != nil {
				return err
			}
			req := codegen.FileRequest{Input: args[0], Output: args[1], Strict: strict, Options: opts}

			gen := func(ctx context.Context) error {
				res, err := codegen.GenerateFile(ctx, req)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(a.stdout, "wrote %s (%d languages, %d ignore entries)\n", req.Output, res.Languages, res.Ignored)
				return nil
			}

			ctx := cmd.Context()
			if !watching {
				return gen(ctx)
			}
			if err := gen(ctx); err != nil {
				logger := xglog.WithComponent("cli")
				logger.Error().Err(err).Str(xglog.FieldEvent, "generate.failed").Msg("initial generation failed")
			}
			return watch.Run(ctx, []string{req.Input}, watch.DefaultDebounce, func(ctx context.Context, _ []string) error {
				return gen(ctx)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "regenerate whenever the document changes")
	return cmd
}
