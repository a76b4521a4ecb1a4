// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package embed

import (
	"fmt"
	"strings"
)

// DefaultPlaceholder is the token the C++ entry point carries in place of the
// default configuration text.
const DefaultPlaceholder = "{{ default_config }}"

// Substitute replaces every occurrence of placeholder in source with value and
// reports how many were replaced. value is inserted verbatim; the result is
// never rescanned.
func Substitute(source, placeholder, value string) (string, int, error) {
	if placeholder == "" {
		return "", 0, fmt.Errorf("%w: empty placeholder", ErrPlaceholderNotFound)
	}
	n := strings.Count(source, placeholder)
	if n == 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrPlaceholderNotFound, placeholder)
	}
	return strings.ReplaceAll(source, placeholder, value), n, nil
}
