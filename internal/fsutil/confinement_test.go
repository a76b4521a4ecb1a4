// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfineRelPath(t *testing.T) {
	tmpDir := t.TempDir()

	srcDir := filepath.Join(tmpDir, "src")
	if err := os.Mkdir(srcDir, 0o750); err != nil {
		t.Fatal(err)
	}

	mainFile := filepath.Join(srcDir, "main.cpp")
	if err := os.WriteFile(mainFile, []byte("int main() {}"), 0o600); err != nil {
		t.Fatal(err)
	}

	// "escape" links to the parent of the root.
	if err := os.Symlink("..", filepath.Join(tmpDir, "escape")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		target   string
		wantErr  bool
		wantPath string // if not empty, checks suffix
	}{
		{
			name:     "existing file",
			target:   "src/main.cpp",
			wantPath: filepath.Join("src", "main.cpp"),
		},
		{
			name:     "missing file in existing dir",
			target:   "src/.raw_main",
			wantPath: filepath.Join("src", ".raw_main"),
		},
		{
			name:    "traversal attempt ..",
			target:  "../outside.txt",
			wantErr: true,
		},
		{
			name:    "absolute path",
			target:  "/etc/passwd",
			wantErr: true,
		},
		{
			name:    "backslash",
			target:  `src\main.cpp`,
			wantErr: true,
		},
		{
			name:    "symlink escape",
			target:  "escape/foo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfineRelPath(tmpDir, tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfineRelPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !strings.HasSuffix(got, tt.wantPath) {
				t.Errorf("ConfineRelPath() got = %v, want suffix %v", got, tt.wantPath)
			}
		})
	}
}

func TestConfineRelPath_SymlinkEscapeIsClassified(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Symlink("..", filepath.Join(tmpDir, "escape")); err != nil {
		t.Fatal(err)
	}

	_, err := ConfineRelPath(tmpDir, "escape/foo")
	if !errors.Is(err, ErrOutsideRoot) {
		t.Fatalf("expected ErrOutsideRoot, got %v", err)
	}
}

func TestIsRegularFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := IsRegularFile(file); err != nil {
		t.Errorf("IsRegularFile(file) = %v, want nil", err)
	}
	if err := IsRegularFile(tmpDir); err == nil {
		t.Error("IsRegularFile(dir) = nil, want error")
	}
	if err := IsRegularFile(filepath.Join(tmpDir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("IsRegularFile(missing) = %v, want not-exist", err)
	}
}
