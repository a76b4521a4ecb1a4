// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// verify-atomic-writes fails when production code writes files without going
// through internal/fsutil, whose writers replace targets atomically.
//
// Usage:
//
//	go run ./scripts/verify-atomic-writes [pattern]
package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// forbidden lists the os functions that create or truncate files.
var forbidden = map[string]bool{
	"WriteFile":  true,
	"Create":     true,
	"CreateTemp": true,
	"OpenFile":   true,
}

func main() {
	pattern := "./..."
	if len(os.Args) > 1 {
		pattern = os.Args[1]
	}

	violations, err := Analyze(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}

	if len(violations) > 0 {
		fmt.Fprintln(os.Stderr, "❌ non-atomic file writes found (use fsutil.WriteFileAtomic):")
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, v)
		}
		os.Exit(1)
	}
}

// Analyze reports every call of a forbidden os function outside tests,
// internal/fsutil and internal/testutil.
func Analyze(pattern string) ([]string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedName,
		Dir:  ".",
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var violations []string
	for _, pkg := range pkgs {
		if exempt(pkg.PkgPath) {
			continue
		}
		for _, file := range pkg.Syntax {
			filename := pkg.Fset.Position(file.Pos()).Filename
			if strings.HasSuffix(filename, "_test.go") {
				continue
			}

			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				if name, bad := forbiddenCall(sel, pkg.TypesInfo); bad {
					violations = append(violations, formatViolation(pkg.Fset, call.Pos(), fmt.Sprintf("forbidden call os.%s", name)))
				}
				return true
			})
		}
	}
	return violations, nil
}

func exempt(pkgPath string) bool {
	return strings.HasSuffix(pkgPath, "/internal/fsutil") || strings.HasSuffix(pkgPath, "/internal/testutil")
}

func forbiddenCall(sel *ast.SelectorExpr, info *types.Info) (string, bool) {
	if info == nil {
		return "", false
	}
	fn, ok := info.ObjectOf(sel.Sel).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "os" {
		return "", false
	}
	return fn.Name(), forbidden[fn.Name()]
}

func formatViolation(fset *token.FileSet, pos token.Pos, msg string) string {
	p := fset.Position(pos)
	filename := p.Filename
	// Attempt to get relative path for cleaner output, fall back to abs
	if rel, err := filepath.Rel(".", filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d: %s", filename, p.Line, msg)
}
