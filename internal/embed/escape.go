// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package embed

import (
	"fmt"
	"strings"

	"github.com/computare/computare-gen/internal/codegen"
)

// Mode selects how the configuration text is escaped before substitution.
type Mode string

const (
	// ModeCpp escapes the text for use inside a C++ string literal.
	ModeCpp Mode = "cpp"
	// ModeLegacy only turns newlines into the two characters `\n`, exactly
	// like the historic prebuild script.
	ModeLegacy Mode = "legacy"
)

// ParseMode validates a mode name; the empty string selects ModeCpp.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeCpp:
		return ModeCpp, nil
	case ModeLegacy:
		return ModeLegacy, nil
	default:
		return "", fmt.Errorf("unknown escape mode %q (want %q or %q)", s, ModeCpp, ModeLegacy)
	}
}

// EscapeConfig prepares text for substitution into a string literal.
func EscapeConfig(text string, mode Mode) string {
	if mode == ModeLegacy {
		return strings.ReplaceAll(text, "\n", `\n`)
	}
	return codegen.CppEscape(text)
}
