// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestStrictConfig_FailsOnUnknownFields verifies that strict mode
// correctly rejects configuration files with unknown fields.
func TestStrictConfig_FailsOnUnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "computare-gen.yaml")

	// "namepsace" is a typo of "namespace"
	yamlContent := `
logLevel: debug
namepsace: Computare
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := NewLoader(configPath).Load()

	if err == nil {
		t.Fatal("expected error due to unknown field in strict mode, got nil")
	}
	if !errors.Is(err, ErrUnknownConfigField) {
		t.Fatalf("expected ErrUnknownConfigField, got: %v", err)
	}
	if !strings.Contains(err.Error(), "field namepsace not found") {
		t.Errorf("expected error to mention unknown field, got: %v", err)
	}
}

func TestStrictConfig_UnknownJobField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "computare-gen.yml")

	yamlContent := `
jobs:
  - kind: generate
    input: default_config.json
    output: src/config_generator.cpp
    outptu: typo.cpp
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := NewLoader(configPath).Load(); !errors.Is(err, ErrUnknownConfigField) {
		t.Fatalf("expected ErrUnknownConfigField, got: %v", err)
	}
}

func TestStrictConfig_RejectsMultipleDocuments(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "computare-gen.yaml")

	if err := os.WriteFile(configPath, []byte("logLevel: info\n---\nlogLevel: debug\n"), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := NewLoader(configPath).Load()
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple documents error, got: %v", err)
	}
}

func TestStrictConfig_RejectsNonYAMLExtension(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "computare-gen.json")

	if err := os.WriteFile(configPath, []byte("{}"), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := NewLoader(configPath).Load()
	if err == nil || !strings.Contains(err.Error(), "unsupported config format") {
		t.Fatalf("expected unsupported format error, got: %v", err)
	}
}
