// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/computare/computare-gen/internal/document"
)

// ErrIdentifierCollision is returned under CollisionFail when two languages
// derive the same identifier.
var ErrIdentifierCollision = errors.New("identifier collision")

// ErrInvalidOption is returned when an option would not produce valid C++.
var ErrInvalidOption = errors.New("invalid option")

var (
	// One or more C++ identifiers joined by "::".
	reNamespace = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)
	// Relative slash-separated path segments; no quotes, spaces or "..".
	reIncludePrefix = regexp.MustCompile(`^[A-Za-z0-9_+-][A-Za-z0-9_.+-]*(/[A-Za-z0-9_+-][A-Za-z0-9_.+-]*)*$`)
)

// ValidateNamespace reports whether ns can be pasted into the generated
// source as a namespace name.
func ValidateNamespace(ns string) error {
	if !reNamespace.MatchString(ns) {
		return fmt.Errorf("%w: namespace %q is not a C++ namespace name", ErrInvalidOption, ns)
	}
	return nil
}

// ValidateIncludePrefix reports whether prefix can be pasted into the
// generated #include lines.
func ValidateIncludePrefix(prefix string) error {
	if !reIncludePrefix.MatchString(prefix) {
		return fmt.Errorf("%w: include prefix %q is not a relative header directory", ErrInvalidOption, prefix)
	}
	return nil
}

const indent = "    "

// Options controls the shape of the generated source.
type Options struct {
	// Namespace is the C++ namespace that declares GenerateDefaultConfig.
	Namespace string
	// IncludePrefix is the directory prefix of the project headers.
	IncludePrefix string
	// SourceName is the document file name quoted in the header comment.
	SourceName string
	// Collisions decides how duplicate identifiers are handled.
	Collisions CollisionPolicy
	// Escaping decides how string values become C++ literals.
	Escaping Escaping
}

// DefaultOptions matches the Computare source tree.
func DefaultOptions() Options {
	return Options{
		Namespace:     "Computare",
		IncludePrefix: "computare",
		SourceName:    "default_config.json",
		Collisions:    CollisionSuffix,
		Escaping:      EscapeCpp,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Namespace == "" {
		o.Namespace = def.Namespace
	}
	if o.IncludePrefix == "" {
		o.IncludePrefix = def.IncludePrefix
	}
	if o.SourceName == "" {
		o.SourceName = def.SourceName
	}
	if o.Collisions == "" {
		o.Collisions = def.Collisions
	}
	if o.Escaping == "" {
		o.Escaping = def.Escaping
	}
	return o
}

// Generate renders the C++ definition of <Namespace>::GenerateDefaultConfig()
// for doc. Statements follow document order for ignore entries and languages;
// within a language the field order is fixed. Absent fields emit nothing.
func Generate(doc *document.Document, opts Options) ([]byte, error) {
	if err := document.Validate(doc); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if err := errors.Join(ValidateNamespace(opts.Namespace), ValidateIncludePrefix(opts.IncludePrefix)); err != nil {
		return nil, err
	}

	ids, err := AssignIdentifiers(doc.Languages, opts.Collisions, opts.Namespace)
	if err != nil {
		return nil, err
	}

	e := &emitter{esc: opts.Escaping}
	e.preamble(opts)
	e.scalars(doc)
	e.ignores(doc.IgnoreRules())
	for i, lang := range doc.Languages {
		e.language(ids[i], lang)
	}
	e.blank()
	e.line("return config;")
	e.b.WriteString("}\n")

	return []byte(e.b.String()), nil
}

type emitter struct {
	b   strings.Builder
	esc Escaping
}

func (e *emitter) line(format string, args ...any) {
	e.b.WriteString(indent)
	fmt.Fprintf(&e.b, format, args...)
	e.b.WriteByte('\n')
}

func (e *emitter) blank() {
	e.b.WriteByte('\n')
}

func (e *emitter) preamble(opts Options) {
	fmt.Fprintf(&e.b, `/**
This file is generated by computare-gen for creating a default configuration.

Do not edit this file by hand! If you want to change the default config, edit the %s file.
*/

#include "%s/pch.hpp"

#include "%s/config_generator.hpp"
#include "%s/config.hpp"

using namespace %s;

std::shared_ptr<Config> %s::GenerateDefaultConfig()
{
`, "`"+opts.SourceName+"`", opts.IncludePrefix, opts.IncludePrefix, opts.IncludePrefix, opts.Namespace, opts.Namespace)
	e.line("std::shared_ptr<Config> config = std::make_shared<Config>();")
}

func (e *emitter) scalars(doc *document.Document) {
	if doc.IgnoreHidden == nil && doc.BlockSize == nil {
		return
	}
	e.blank()
	if doc.IgnoreHidden != nil {
		e.line("config->SetIgnoreHidden(%s);", cppBool(*doc.IgnoreHidden))
	}
	if doc.BlockSize != nil {
		e.line("config->SetBlockSize(%s);", strconv.FormatInt(int64(*doc.BlockSize), 10))
	}
}

func (e *emitter) ignores(rules []document.IgnoreRule) {
	if len(rules) == 0 {
		return
	}
	e.blank()
	for _, rule := range rules {
		e.line("config->AddIgnored(%s, %s);", e.esc.pattern(rule.Pattern), cppBool(rule.Ignored))
	}
}

func (e *emitter) language(id string, lang document.Language) {
	e.blank()
	e.line("std::shared_ptr<Language> %s = std::make_shared<Language>();", id)
	e.blank()
	e.line("%s->name = %s;", id, e.esc.str(*lang.Name))
	e.list(id+"->extensions", *lang.Extensions, e.esc.str)

	if lang.LineComment != nil {
		e.line("%s->lineComment = %s;", id, e.esc.str(*lang.LineComment))
	}
	if lang.BlockCommentBegin != nil {
		e.line("%s->blockCommentBegin = %s;", id, e.esc.str(*lang.BlockCommentBegin))
	}
	if lang.BlockCommentEnd != nil {
		e.line("%s->blockCommentEnd = %s;", id, e.esc.str(*lang.BlockCommentEnd))
	}
	if lang.StringDelimiters != nil {
		e.list(id+"->stringDelimiters", *lang.StringDelimiters, e.esc.delimiter)
	}

	e.blank()
	e.line("config->AddLanguage(%s);", id)
}

// list emits `target = { "a", "b" };` one element per line, no trailing comma.
func (e *emitter) list(target string, items []string, literal func(string) string) {
	if len(items) == 0 {
		e.line("%s = {};", target)
		return
	}
	e.line("%s = {", target)
	for i, item := range items {
		sep := ","
		if i == len(items)-1 {
			sep = ""
		}
		e.line("%s%s%s", indent, literal(item), sep)
	}
	e.line("};")
}

func cppBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
