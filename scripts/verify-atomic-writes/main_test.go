// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/computare/computare-gen/internal/testutil"
)

func TestAnalyzer(t *testing.T) {
	wd, _ := filepath.Abs(".")
	testDataPath := filepath.Join(wd, "testdata", "violation.go")

	violations, err := Analyze("file=" + testDataPath)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	expectedViolations := []string{
		"forbidden call os.WriteFile",
		"forbidden call os.Create",
	}
	for _, expected := range expectedViolations {
		found := false
		for _, v := range violations {
			if strings.Contains(v, expected) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected violation containing %q, but not found. Got: %v", expected, violations)
		}
	}
	if len(violations) != 2 {
		t.Errorf("Expected 2 violations, got %d: %v", len(violations), violations)
	}
}

func TestRepositoryHasNoAdHocWrites(t *testing.T) {
	if testing.Short() {
		t.Skip("loads every package in the module")
	}
	root := testutil.MustRepoRoot(t)

	violations, err := Analyze(filepath.Join(root, "internal") + "/...")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(violations) > 0 {
		t.Errorf("non-atomic writes:\n%s", strings.Join(violations, "\n"))
	}
}
