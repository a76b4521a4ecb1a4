// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options controls document decoding.
type Options struct {
	// Strict rejects keys the document schema does not know about.
	Strict bool
}

// Load reads, parses and validates the document at path.
func Load(path string, opts Options) (*Document, error) {
	path = filepath.Clean(path)

	// #nosec G304 -- build tool, path provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Input whose first non-space byte opens a JSON
// object or array is decoded as JSON, falling back to YAML when it is not
// JSON syntax (a YAML flow mapping). Anything else is decoded as YAML. No
// validation beyond decoding is performed.
func Parse(data []byte, opts Options) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidField)
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		doc, err := parseJSON(data, opts)
		var syntaxErr *json.SyntaxError
		if !errors.As(err, &syntaxErr) {
			return doc, err
		}
	}
	return parseYAML(data, opts)
}

func parseJSON(data []byte, opts Options) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if opts.Strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, ErrInvalidField) {
			return nil, err
		}
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return nil, fmt.Errorf("%w: %w", ErrUnknownField, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: document has trailing content", ErrInvalidField)
	}
	return &doc, nil
}

func parseYAML(data []byte, opts Options) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(opts.Strict)

	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidField)
		}
		if errors.Is(err, ErrInvalidField) {
			return nil, err
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %w", ErrUnknownField, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	// A document is a single object; trailing YAML documents are rejected.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: document contains multiple documents or trailing content", ErrInvalidField)
	}

	return &doc, nil
}
