// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCppEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: `"`, want: `\"`},
		{in: `a\b`, want: `a\\b`},
		{in: "line\nbreak", want: `line\nbreak`},
		{in: "cr\rtab\t", want: `cr\rtab\t`},
		{in: "\x01f", want: `\001f`},
		{in: "\x7f", want: `\177`},
		{in: "what??!", want: `what\??!`},
		{in: "single?", want: "single?"},
		{in: "Français", want: "Français"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CppEscape(tt.in))
		})
	}
}

func TestCppString(t *testing.T) {
	assert.Equal(t, `"\""`, CppString(`"`))
	assert.Equal(t, `"//"`, CppString("//"))
}

func TestEscaping_Legacy(t *testing.T) {
	assert.Equal(t, `"C++"`, EscapeLegacy.str("C++"))
	assert.Equal(t, `"\""`, EscapeLegacy.delimiter(`"`))
	assert.Equal(t, `"'"`, EscapeLegacy.delimiter("'"))
	assert.Equal(t, "build", EscapeLegacy.pattern("build"))
	assert.Equal(t, `"build"`, EscapeCpp.pattern("build"))
}

func TestParseEscaping(t *testing.T) {
	got, err := ParseEscaping("")
	require.NoError(t, err)
	assert.Equal(t, EscapeCpp, got)

	got, err = ParseEscaping(" Legacy ")
	require.NoError(t, err)
	assert.Equal(t, EscapeLegacy, got)

	_, err = ParseEscaping("raw")
	require.Error(t, err)
}
