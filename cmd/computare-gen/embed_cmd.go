// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"fmt"

	"github.com/computare/computare-gen/internal/embed"
	"github.com/spf13/cobra"
)

// escapeMode resolves --escape against the tool configuration.
func escapeMode(cmd *cobra.Command, a *app, flag string) (embed.Mode, error) {
	if !cmd.Flags().Changed("escape") {
		return a.cfg.EmbedMode(), nil
	}
	mode, err := embed.ParseMode(flag)
	if err != nil {
		return "", usageError{err}
	}
	return mode, nil
}

func newEmbedCmd(a *app) *cobra.Command {
	var (
		req    embed.RenderRequest
		escape string
	)
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Render a template with the default configuration text substituted",
		Long: `Reads --template, replaces every placeholder with the escaped contents of
--config and atomically writes --output. The template is never modified.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range []struct{ name, value string }{
				{"template", req.Template},
				{"config", req.Config},
				{"output", req.Output},
			} {
				if f.value == "" {
					return usageErrorf("--%s is required", f.name)
				}
			}
			mode, err := escapeMode(cmd, a, escape)
			if err != nil {
				return err
			}
			req.Mode = mode

			res, err := embed.Render(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "wrote %s (%d placeholder(s) replaced)\n", req.Output, res.Replaced)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Template, "template", "", "source file containing the placeholder")
	cmd.Flags().StringVar(&req.Config, "config", "", "configuration text to embed")
	cmd.Flags().StringVarP(&req.Output, "output", "o", "", "file to write")
	cmd.Flags().StringVar(&req.Placeholder, "placeholder", embed.DefaultPlaceholder, "token to replace")
	cmd.Flags().StringVar(&escape, "escape", "", "escape mode: cpp or legacy (default from config)")
	return cmd
}
