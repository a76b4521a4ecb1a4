// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeConfig(t *testing.T) {
	text := "ignoreHidden: true\nname: \"C++\"\n"

	assert.Equal(t, `ignoreHidden: true\nname: "C++"\n`, EscapeConfig(text, ModeLegacy))
	assert.Equal(t, `ignoreHidden: true\nname: \"C++\"\n`, EscapeConfig(text, ModeCpp))
	assert.Equal(t, EscapeConfig(text, ModeCpp), EscapeConfig(text, ""))
}

func TestEscapeConfig_LegacyOnlyTouchesNewlines(t *testing.T) {
	text := "a\\b\tc\r\n"
	assert.Equal(t, "a\\b\tc\r\\n", EscapeConfig(text, ModeLegacy))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeCpp, m)

	m, err = ParseMode("LEGACY")
	require.NoError(t, err)
	assert.Equal(t, ModeLegacy, m)

	_, err = ParseMode("base64")
	require.Error(t, err)
}
