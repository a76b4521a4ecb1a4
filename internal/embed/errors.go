// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package embed

import "errors"

var (
	// ErrPlaceholderNotFound means the source has no occurrence of the placeholder.
	ErrPlaceholderNotFound = errors.New("placeholder not found")
	// ErrBackupExists means a previous prebuild was never followed by postbuild.
	ErrBackupExists = errors.New("backup already exists")
	// ErrBackupMissing means postbuild found nothing to restore.
	ErrBackupMissing = errors.New("backup missing")
	// ErrOutputIsTemplate rejects a render that would overwrite its own template.
	ErrOutputIsTemplate = errors.New("output path is the template")
)
