// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"fmt"
	"strings"
)

// CppEscape escapes s for use between the quotes of a C++ narrow string
// literal. Bytes >= 0x80 pass through unchanged (the generated file is UTF-8).
// Control bytes use three-digit octal escapes, which unlike \x cannot swallow
// a following hex digit.
func CppEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '?' && i+1 < len(s) && s[i+1] == '?':
			// "??x" is a trigraph before C++17.
			b.WriteString(`\?`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CppString renders s as a quoted C++ string literal.
func CppString(s string) string {
	return `"` + CppEscape(s) + `"`
}

// Escaping selects how string values are turned into C++ literals.
type Escaping string

const (
	// EscapeCpp routes every literal through CppString.
	EscapeCpp Escaping = "cpp"
	// EscapeLegacy reproduces the historic Python generator: values are
	// wrapped in quotes verbatim, ignore patterns are emitted without quotes
	// and only a lone `"` string delimiter is escaped. Input containing quotes,
	// backslashes or newlines produces C++ that does not compile.
	EscapeLegacy Escaping = "legacy"
)

// ParseEscaping validates an escaping name; the empty string selects EscapeCpp.
func ParseEscaping(s string) (Escaping, error) {
	switch Escaping(strings.ToLower(strings.TrimSpace(s))) {
	case "", EscapeCpp:
		return EscapeCpp, nil
	case EscapeLegacy:
		return EscapeLegacy, nil
	default:
		return "", fmt.Errorf("unknown escaping %q (want %q or %q)", s, EscapeCpp, EscapeLegacy)
	}
}

func (e Escaping) str(s string) string {
	if e == EscapeLegacy {
		return `"` + s + `"`
	}
	return CppString(s)
}

func (e Escaping) delimiter(s string) string {
	if e == EscapeLegacy {
		if s == `"` {
			return `"\""`
		}
		return `"` + s + `"`
	}
	return CppString(s)
}

func (e Escaping) pattern(s string) string {
	if e == EscapeLegacy {
		return s
	}
	return CppString(s)
}
