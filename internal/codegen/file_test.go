// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/computare/computare-gen/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "langs.yml")
	out := filepath.Join(dir, "src", "config_generator.cpp")
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
	require.NoError(t, os.WriteFile(in, []byte("ignoreHidden: true\nignore: [\"!vendor\"]\nlanguages:\n  - name: Go\n    extensions: [.go]\n"), 0o600))

	res, err := GenerateFile(context.Background(), FileRequest{Input: in, Output: out, Strict: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Languages)
	assert.Equal(t, 1, res.Ignored)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, res.Bytes, len(data))
	assert.Contains(t, string(data), "edit the `langs.yml` file")
	assert.Contains(t, string(data), `config->AddIgnored("vendor", false);`)
	assert.Contains(t, string(data), "config->AddLanguage(Go);")
}

func TestGenerateFile_InvalidInputKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.json")
	out := filepath.Join(dir, "out.cpp")
	require.NoError(t, os.WriteFile(in, []byte(`{"languages": [{"extensions": [".x"]}]}`), 0o600))
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	_, err := GenerateFile(context.Background(), FileRequest{Input: in, Output: out})
	require.ErrorIs(t, err, document.ErrMissingField)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestGenerateFile_StrictRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "typo.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"blokSize": 4096}`), 0o600))

	_, err := GenerateFile(context.Background(), FileRequest{Input: in, Output: filepath.Join(dir, "out.cpp"), Strict: true})
	require.ErrorIs(t, err, document.ErrUnknownField)

	_, err = GenerateFile(context.Background(), FileRequest{Input: in, Output: filepath.Join(dir, "out.cpp")})
	require.NoError(t, err)
}

func TestGenerateFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := GenerateFile(context.Background(), FileRequest{Input: filepath.Join(dir, "nope.json"), Output: filepath.Join(dir, "out.cpp")})
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, filepath.Join(dir, "out.cpp"))
}
