// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

//go:build !windows

package fsutil

import (
	"context"
	"fmt"
	"io/fs"

	xglog "github.com/computare/computare-gen/internal/log"
	"github.com/google/renameio/v2"
)

// WriteFileAtomic replaces path with data. renameio writes a temp file in the
// same directory, fsyncs it and renames it over the target, so readers see
// either the old or the new content and a failed write leaves the old file
// in place.
func WriteFileAtomic(ctx context.Context, path string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := xglog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// No-op once CloseAtomicallyReplace succeeded.
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str(xglog.FieldPath, path).Msg("cleanup pending file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}

	logger.Debug().Str(xglog.FieldPath, path).Int(xglog.FieldBytes, len(data)).Msg("wrote file")
	return nil
}
