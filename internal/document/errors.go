// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package document

import "errors"

var (
	// ErrMissingField is returned when a required field (a language's name or
	// extensions) is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is returned when a field is present but unusable.
	ErrInvalidField = errors.New("invalid field")

	// ErrUnknownField classifies strict parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownField) instead of string matching.
	ErrUnknownField = errors.New("unknown document field")
)
