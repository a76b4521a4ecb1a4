// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package embed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/computare/computare-gen/internal/fsutil"
	xglog "github.com/computare/computare-gen/internal/log"
)

// RenderRequest describes one template + config -> output rendering.
type RenderRequest struct {
	Template    string
	Config      string
	Output      string
	Placeholder string
	Mode        Mode
}

// Result summarises a substitution.
type Result struct {
	Replaced int
	Bytes    int
}

// Render writes Output as Template with the placeholder replaced by the
// escaped contents of Config. The template is only read, and Output is
// replaced atomically, so an interrupted build leaves no half-written state.
func Render(ctx context.Context, req RenderRequest) (Result, error) {
	logger := xglog.WithComponentFromContext(ctx, "embed")

	if err := rejectSelfOverwrite(req.Template, req.Output); err != nil {
		return Result{}, err
	}

	// #nosec G304 -- build tool, paths provided by the operator
	tmpl, err := os.ReadFile(req.Template)
	if err != nil {
		return Result{}, fmt.Errorf("read template: %w", err)
	}
	// #nosec G304 -- build tool, paths provided by the operator
	cfg, err := os.ReadFile(req.Config)
	if err != nil {
		return Result{}, fmt.Errorf("read config: %w", err)
	}

	out, n, err := Substitute(string(tmpl), placeholderOrDefault(req.Placeholder), EscapeConfig(string(cfg), req.Mode))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", req.Template, err)
	}

	if err := fsutil.WriteFileAtomic(ctx, req.Output, []byte(out), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", req.Output, err)
	}

	res := Result{Replaced: n, Bytes: len(out)}
	logger.Info().
		Str(xglog.FieldEvent, "embed.rendered").
		Str(xglog.FieldTemplate, req.Template).
		Str(xglog.FieldInput, req.Config).
		Str(xglog.FieldOutput, req.Output).
		Int(xglog.FieldReplaced, res.Replaced).
		Int(xglog.FieldBytes, res.Bytes).
		Msg("rendered template")
	return res, nil
}

func placeholderOrDefault(p string) string {
	if p == "" {
		return DefaultPlaceholder
	}
	return p
}

func rejectSelfOverwrite(template, output string) error {
	absTmpl, err := filepath.Abs(template)
	if err != nil {
		return fmt.Errorf("resolve template: %w", err)
	}
	absOut, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolve output: %w", err)
	}
	if absTmpl == absOut {
		return fmt.Errorf("%w: %s", ErrOutputIsTemplate, output)
	}

	tInfo, tErr := os.Stat(absTmpl)
	oInfo, oErr := os.Stat(absOut)
	if tErr == nil && oErr == nil && os.SameFile(tInfo, oInfo) {
		return fmt.Errorf("%w: %s", ErrOutputIsTemplate, output)
	}
	return nil
}
