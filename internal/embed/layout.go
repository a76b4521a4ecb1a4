// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package embed

import (
	"fmt"

	"github.com/computare/computare-gen/internal/fsutil"
)

// Fixed project-relative paths used by Prebuild and Postbuild.
const (
	MainPath   = "src/main.cpp"
	BackupPath = "src/.raw_main"
	ConfigPath = "src/default_config.yml"
)

// Layout locates the Computare source tree.
type Layout struct {
	// Root is the project directory; empty means the working directory.
	Root string
	// Placeholder defaults to DefaultPlaceholder.
	Placeholder string
	Mode        Mode
}

type resolvedLayout struct {
	main, backup, config string
}

func (l Layout) resolve() (resolvedLayout, error) {
	root := l.Root
	if root == "" {
		root = "."
	}

	var r resolvedLayout
	for _, p := range []struct {
		rel string
		dst *string
	}{
		{MainPath, &r.main},
		{BackupPath, &r.backup},
		{ConfigPath, &r.config},
	} {
		abs, err := fsutil.ConfineRelPath(root, p.rel)
		if err != nil {
			return resolvedLayout{}, fmt.Errorf("resolve %s: %w", p.rel, err)
		}
		*p.dst = abs
	}
	return r, nil
}
