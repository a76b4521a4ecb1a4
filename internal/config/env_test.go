// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	const key = "COMPUTARE_TEST_STRING"

	assert.Equal(t, "def", ParseString(key, "def"))

	t.Setenv(key, "")
	assert.Equal(t, "def", ParseString(key, "def"))

	t.Setenv(key, "val")
	assert.Equal(t, "val", ParseString(key, "def"))
}

func TestParseBool(t *testing.T) {
	const key = "COMPUTARE_TEST_BOOL"

	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{value: "true", want: true},
		{value: "YES", want: true},
		{value: "1", want: true},
		{value: "false", def: true, want: false},
		{value: "no", def: true, want: false},
		{value: "0", def: true, want: false},
		{value: "maybe", def: true, want: true},
		{value: "", def: true, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(key, tt.value)
			assert.Equal(t, tt.want, ParseBool(key, tt.def))
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(dir), "missing .env is not an error")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("COMPUTARE_TEST_DOTENV=from-file\nCOMPUTARE_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("COMPUTARE_TEST_PRESET", "from-env")
	// Registered so t.Setenv's cleanup restores the unset state afterwards.
	t.Setenv("COMPUTARE_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("COMPUTARE_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "from-file", os.Getenv("COMPUTARE_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("COMPUTARE_TEST_PRESET"), "set variables win")
}
