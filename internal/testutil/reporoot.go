// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/mod/modfile"
)

// ModulePath is the import path declared by the computare-gen go.mod.
const ModulePath = "github.com/computare/computare-gen"

// ErrRepoRootNotFound is returned when no ancestor of this package declares
// ModulePath.
var ErrRepoRootNotFound = errors.New("computare-gen go.mod not found")

// RepoRoot returns the computare-gen checkout this package was compiled from.
// Nested modules are skipped; only a go.mod declaring ModulePath ends the walk.
func RepoRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot determine caller")
	}
	return findModuleRoot(filepath.Dir(file), ModulePath)
}

func findModuleRoot(dir, module string) (string, error) {
	for {
		// #nosec G304 -- walks the checkout's own parent directories
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		switch {
		case err == nil:
			if modfile.ModulePath(data) == module {
				return dir, nil
			}
		case !errors.Is(err, os.ErrNotExist):
			return "", fmt.Errorf("read %s: %w", filepath.Join(dir, "go.mod"), err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (module %s)", ErrRepoRootNotFound, module)
		}
		dir = parent
	}
}

// MustRepoRoot is RepoRoot for tests that read the checkout's own files.
func MustRepoRoot(t *testing.T) string {
	t.Helper()
	root, err := RepoRoot()
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}
	return root
}

// Testdata returns the path of a file in a package's testdata directory,
// e.g. Testdata(t, "internal/codegen", "default_config.golden.cpp").
func Testdata(t *testing.T, pkg, name string) string {
	t.Helper()
	p := filepath.Join(MustRepoRoot(t), filepath.FromSlash(pkg), "testdata", name)
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("testdata %s: %v", p, err)
	}
	return p
}
