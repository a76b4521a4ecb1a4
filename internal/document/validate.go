// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package document

import (
	"errors"
	"fmt"
)

// Validate checks required fields and value ranges. All problems are reported
// together; use errors.Is with ErrMissingField / ErrInvalidField to classify.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidField)
	}

	var errs []error

	if doc.BlockSize != nil && *doc.BlockSize < 0 {
		errs = append(errs, fmt.Errorf("%w: blockSize must not be negative, got %d", ErrInvalidField, *doc.BlockSize))
	}

	for i, entry := range doc.Ignore {
		if entry == "" {
			errs = append(errs, fmt.Errorf("%w: ignore[%d] is empty", ErrInvalidField, i))
			continue
		}
		if entry == NegationMarker {
			errs = append(errs, fmt.Errorf("%w: ignore[%d] has a negation marker but no pattern", ErrInvalidField, i))
		}
	}

	for i, lang := range doc.Languages {
		if lang.Name == nil {
			errs = append(errs, fmt.Errorf("%w: languages[%d].name", ErrMissingField, i))
		}
		if lang.Extensions == nil {
			errs = append(errs, fmt.Errorf("%w: languages[%d].extensions (%s)", ErrMissingField, i, lang.DisplayName(i)))
		}
	}

	return errors.Join(errs...)
}
