// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package embed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/computare/computare-gen/internal/fsutil"
	xglog "github.com/computare/computare-gen/internal/log"
)

// Prebuild saves src/main.cpp to src/.raw_main and rewrites src/main.cpp with
// the placeholder replaced by the escaped src/default_config.yml.
//
// The pair is not transactional: until Postbuild runs, the working tree holds
// the substituted main.cpp. A leftover backup from an interrupted build is
// never overwritten; Prebuild fails with ErrBackupExists instead.
func Prebuild(ctx context.Context, layout Layout) (Result, error) {
	logger := xglog.WithComponentFromContext(ctx, "embed")

	paths, err := layout.resolve()
	if err != nil {
		return Result{}, err
	}

	if _, err := os.Lstat(paths.backup); err == nil {
		return Result{}, staleBackup()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("check backup: %w", err)
	}

	// #nosec G304 -- fixed layout path
	src, err := os.ReadFile(paths.main)
	if err != nil {
		return Result{}, fmt.Errorf("read main source: %w", err)
	}
	// #nosec G304 -- fixed layout path
	cfg, err := os.ReadFile(paths.config)
	if err != nil {
		return Result{}, fmt.Errorf("read default config: %w", err)
	}

	out, n, err := Substitute(string(src), placeholderOrDefault(layout.Placeholder), EscapeConfig(string(cfg), layout.Mode))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", MainPath, err)
	}

	if err := fsutil.CopyFileExclusive(paths.main, paths.backup); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Result{}, staleBackup()
		}
		return Result{}, fmt.Errorf("back up main source: %w", err)
	}

	if err := fsutil.WriteFileAtomic(ctx, paths.main, []byte(out), 0o644); err != nil {
		if rmErr := os.Remove(paths.backup); rmErr != nil {
			logger.Warn().Err(rmErr).Str(xglog.FieldBackup, paths.backup).Msg("remove backup after failed write")
		}
		return Result{}, fmt.Errorf("write main source: %w", err)
	}

	res := Result{Replaced: n, Bytes: len(out)}
	logger.Info().
		Str(xglog.FieldEvent, "embed.prebuild").
		Str(xglog.FieldPath, paths.main).
		Str(xglog.FieldBackup, paths.backup).
		Int(xglog.FieldReplaced, res.Replaced).
		Msg("substituted default config into main source")
	return res, nil
}

func staleBackup() error {
	return fmt.Errorf("%w: %s (run postbuild first)", ErrBackupExists, BackupPath)
}

// Postbuild deletes the substituted src/main.cpp and moves src/.raw_main back
// in its place.
func Postbuild(ctx context.Context, layout Layout) error {
	logger := xglog.WithComponentFromContext(ctx, "embed")

	paths, err := layout.resolve()
	if err != nil {
		return err
	}

	if err := fsutil.IsRegularFile(paths.backup); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrBackupMissing, BackupPath)
		}
		return fmt.Errorf("check backup: %w", err)
	}

	if err := os.Remove(paths.main); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove main source: %w", err)
	}
	if err := os.Rename(paths.backup, paths.main); err != nil {
		return fmt.Errorf("restore main source: %w", err)
	}

	logger.Info().
		Str(xglog.FieldEvent, "embed.postbuild").
		Str(xglog.FieldPath, paths.main).
		Msg("restored main source")
	return nil
}
