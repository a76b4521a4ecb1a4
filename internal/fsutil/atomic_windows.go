// SPDX-License-Identifier: MIT

//go:build windows

package fsutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	xglog "github.com/computare/computare-gen/internal/log"
)

// WriteFileAtomic replaces path with data using temp file + rename.
// Note: Windows doesn't support atomic rename with fsync like Unix.
func WriteFileAtomic(ctx context.Context, path string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := xglog.FromContext(ctx)

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".computare-gen-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	// Close before rename (Windows requires this)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", path, err)
	}

	logger.Debug().Str(xglog.FieldPath, path).Int(xglog.FieldBytes, len(data)).Msg("wrote file")
	return nil
}
