// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/computare/computare-gen/internal/document"
	"github.com/computare/computare-gen/internal/fsutil"
	xglog "github.com/computare/computare-gen/internal/log"
)

// FileRequest describes one document -> source generation.
type FileRequest struct {
	Input   string
	Output  string
	Strict  bool
	Options Options
}

// Result summarises a successful generation.
type Result struct {
	Languages int
	Ignored   int
	Bytes     int
}

// GenerateFile loads the document at req.Input and replaces req.Output with
// the generated source. Nothing is written unless loading and generation both
// succeed, and the replacement itself is atomic.
func GenerateFile(ctx context.Context, req FileRequest) (Result, error) {
	logger := xglog.WithComponentFromContext(ctx, "codegen")

	doc, err := document.Load(req.Input, document.Options{Strict: req.Strict})
	if err != nil {
		return Result{}, err
	}

	opts := req.Options
	if opts.SourceName == "" {
		opts.SourceName = filepath.Base(req.Input)
	}

	src, err := Generate(doc, opts)
	if err != nil {
		return Result{}, fmt.Errorf("generate from %s: %w", req.Input, err)
	}

	if err := fsutil.WriteFileAtomic(ctx, req.Output, src, 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", req.Output, err)
	}

	res := Result{
		Languages: len(doc.Languages),
		Ignored:   len(doc.Ignore),
		Bytes:     len(src),
	}
	logger.Info().
		Str(xglog.FieldEvent, "codegen.written").
		Str(xglog.FieldInput, req.Input).
		Str(xglog.FieldOutput, req.Output).
		Int(xglog.FieldLanguages, res.Languages).
		Int(xglog.FieldIgnored, res.Ignored).
		Int(xglog.FieldBytes, res.Bytes).
		Msg("generated default config source")
	return res, nil
}
