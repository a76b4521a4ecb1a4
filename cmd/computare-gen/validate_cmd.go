// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"fmt"

	"github.com/computare/computare-gen/internal/codegen"
	"github.com/computare/computare-gen/internal/document"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var flags codegenFlags
	cmd := &cobra.Command{
		Use:   "validate <document>",
		Short: "Check a configuration document without writing anything",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, strict, err := flags.options(cmd, a)
			if err != nil {
				return err
			}
			path := args[0]

			doc, err := document.Load(path, document.Options{Strict: strict})
			if err != nil {
				return err
			}
			ids, err := codegen.AssignIdentifiers(doc.Languages, opts.Collisions, opts.Namespace)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			_, _ = fmt.Fprintf(a.stdout, "✓ %s is valid (%d languages, %d ignore entries)\n", path, len(doc.Languages), len(doc.Ignore))
			for i, lang := range doc.Languages {
				_, _ = fmt.Fprintf(a.stdout, "  %-20s -> %s\n", lang.DisplayName(i), ids[i])
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
