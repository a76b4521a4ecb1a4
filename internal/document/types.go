// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// NegationMarker flips an ignore entry from "ignore" to "do not ignore".
const NegationMarker = "!"

// Document is the parsed configuration document. Nil pointers mean the key was
// absent (or null) in the source file.
type Document struct {
	IgnoreHidden *bool      `json:"ignoreHidden" yaml:"ignoreHidden"`
	BlockSize    *BlockSize `json:"blockSize" yaml:"blockSize"`
	Ignore       []string   `json:"ignore" yaml:"ignore"`
	Languages    []Language `json:"languages" yaml:"languages"`
}

// Language describes how the counter recognises one programming language.
type Language struct {
	Name              *string   `json:"name" yaml:"name"`
	Extensions        *[]string `json:"extensions" yaml:"extensions"`
	LineComment       *string   `json:"lineComment" yaml:"lineComment"`
	BlockCommentBegin *string   `json:"blockCommentBegin" yaml:"blockCommentBegin"`
	BlockCommentEnd   *string   `json:"blockCommentEnd" yaml:"blockCommentEnd"`
	StringDelimiters  *[]string `json:"stringDelimiters" yaml:"stringDelimiters"`
}

// DisplayName returns the language name, or a positional placeholder when the
// name is missing. Used in diagnostics only.
func (l Language) DisplayName(index int) string {
	if l.Name != nil {
		return *l.Name
	}
	return fmt.Sprintf("languages[%d]", index)
}

// IgnoreRule is one ignore entry with the negation marker resolved.
type IgnoreRule struct {
	Pattern string
	// Ignored is false for entries that carried the negation marker.
	Ignored bool
}

// ParseIgnore resolves the negation marker of a single ignore entry.
func ParseIgnore(entry string) IgnoreRule {
	if pattern, ok := strings.CutPrefix(entry, NegationMarker); ok {
		return IgnoreRule{Pattern: pattern, Ignored: false}
	}
	return IgnoreRule{Pattern: entry, Ignored: true}
}

// IgnoreRules returns the document's ignore entries in input order.
func (d *Document) IgnoreRules() []IgnoreRule {
	rules := make([]IgnoreRule, 0, len(d.Ignore))
	for _, entry := range d.Ignore {
		rules = append(rules, ParseIgnore(entry))
	}
	return rules
}

// BlockSize is the processing chunk size. It accepts integers, integral or
// fractional numbers (truncated toward zero) and decimal strings.
type BlockSize int64

// UnmarshalJSON implements json.Unmarshaler.
func (b *BlockSize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: blockSize is empty", ErrInvalidField)
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: blockSize: %v", ErrInvalidField, err)
		}
		return b.setString(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			*b = BlockSize(n)
			return nil
		}
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("%w: blockSize %s is not a number", ErrInvalidField, data)
		}
		return b.setFloat(f)
	default:
		return fmt.Errorf("%w: blockSize must be a number, got %s", ErrInvalidField, data)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *BlockSize) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: blockSize must be a number (line %d)", ErrInvalidField, value.Line)
	}

	var raw any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("%w: blockSize: %v", ErrInvalidField, err)
	}

	switch v := raw.(type) {
	case int:
		*b = BlockSize(v)
	case int64:
		*b = BlockSize(v)
	case uint64:
		if v > math.MaxInt64 {
			return fmt.Errorf("%w: blockSize %d overflows", ErrInvalidField, v)
		}
		*b = BlockSize(v)
	case float64:
		return b.setFloat(v)
	case string:
		return b.setString(v)
	default:
		return fmt.Errorf("%w: blockSize has unsupported type %T (line %d)", ErrInvalidField, raw, value.Line)
	}
	return nil
}

func (b *BlockSize) setFloat(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt64 {
		return fmt.Errorf("%w: blockSize %v is not a finite integer", ErrInvalidField, v)
	}
	*b = BlockSize(math.Trunc(v))
	return nil
}

func (b *BlockSize) setString(v string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: blockSize %q is not an integer", ErrInvalidField, v)
	}
	*b = BlockSize(n)
	return nil
}
