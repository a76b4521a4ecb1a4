// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"fmt"

	"github.com/computare/computare-gen/internal/embed"
	"github.com/spf13/cobra"
)

func newPrebuildCmd(a *app) *cobra.Command {
	var (
		layout embed.Layout
		escape string
	)
	cmd := &cobra.Command{
		Use:   "prebuild",
		Short: "Substitute the default config into src/main.cpp, keeping src/.raw_main",
		Long: `Copies src/main.cpp to src/.raw_main and rewrites src/main.cpp with the
placeholder replaced by the escaped contents of src/default_config.yml.
Run postbuild afterwards to restore the original. Refuses to run while
src/.raw_main exists.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := escapeMode(cmd, a, escape)
			if err != nil {
				return err
			}
			layout.Mode = mode

			res, err := embed.Prebuild(cmd.Context(), layout)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "substituted %s (%d placeholder(s) replaced, backup in %s)\n", embed.MainPath, res.Replaced, embed.BackupPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&layout.Root, "root", ".", "project directory containing src/")
	cmd.Flags().StringVar(&layout.Placeholder, "placeholder", embed.DefaultPlaceholder, "token to replace")
	cmd.Flags().StringVar(&escape, "escape", "", "escape mode: cpp or legacy (default from config)")
	return cmd
}

func newPostbuildCmd(a *app) *cobra.Command {
	var layout embed.Layout
	cmd := &cobra.Command{
		Use:   "postbuild",
		Short: "Restore src/main.cpp from src/.raw_main",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := embed.Postbuild(cmd.Context(), layout); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "restored %s\n", embed.MainPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&layout.Root, "root", ".", "project directory containing src/")
	return cmd
}
