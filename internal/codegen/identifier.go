// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/computare/computare-gen/internal/document"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CollisionPolicy decides what happens when two languages derive the same
// C++ identifier.
type CollisionPolicy string

const (
	// CollisionSuffix appends _2, _3, ... to later duplicates.
	CollisionSuffix CollisionPolicy = "suffix"
	// CollisionFail rejects the document with ErrIdentifierCollision.
	CollisionFail CollisionPolicy = "fail"
)

// ParseCollisionPolicy validates a policy name; the empty string selects CollisionSuffix.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CollisionSuffix:
		return CollisionSuffix, nil
	case CollisionFail:
		return CollisionFail, nil
	default:
		return "", fmt.Errorf("unknown collision policy %q (want %q or %q)", s, CollisionSuffix, CollisionFail)
	}
}

const identifierFallback = "lang"

var (
	reNonWord    = regexp.MustCompile(`\W+`)
	reWhitespace = regexp.MustCompile(`\s+`)

	// Identifiers that would not compile or would shadow names used by the
	// generated function body.
	reservedIdentifiers = map[string]struct{}{
		"config": {}, "Config": {}, "Language": {}, "std": {},
		"alignas": {}, "alignof": {}, "and": {}, "and_eq": {}, "asm": {}, "auto": {},
		"bitand": {}, "bitor": {}, "bool": {}, "break": {}, "case": {}, "catch": {},
		"char": {}, "char8_t": {}, "char16_t": {}, "char32_t": {}, "class": {},
		"compl": {}, "concept": {}, "const": {}, "consteval": {}, "constexpr": {},
		"constinit": {}, "const_cast": {}, "continue": {}, "co_await": {},
		"co_return": {}, "co_yield": {}, "decltype": {}, "default": {}, "delete": {},
		"do": {}, "double": {}, "dynamic_cast": {}, "else": {}, "enum": {},
		"explicit": {}, "export": {}, "extern": {}, "false": {}, "float": {},
		"for": {}, "friend": {}, "goto": {}, "if": {}, "inline": {}, "int": {},
		"long": {}, "mutable": {}, "namespace": {}, "new": {}, "noexcept": {},
		"not": {}, "not_eq": {}, "nullptr": {}, "operator": {}, "or": {}, "or_eq": {},
		"private": {}, "protected": {}, "public": {}, "register": {},
		"reinterpret_cast": {}, "requires": {}, "return": {}, "short": {},
		"signed": {}, "sizeof": {}, "static": {}, "static_assert": {},
		"static_cast": {}, "struct": {}, "switch": {}, "template": {}, "this": {},
		"thread_local": {}, "throw": {}, "true": {}, "try": {}, "typedef": {},
		"typeid": {}, "typename": {}, "union": {}, "unsigned": {}, "using": {},
		"virtual": {}, "void": {}, "volatile": {}, "wchar_t": {}, "while": {},
		"xor": {}, "xor_eq": {},
	}
)

// Identifier derives a C++ variable name from a language name: accents are
// folded to ASCII ("Français" -> "Francais"), every non-word character is
// stripped ("C++" -> "C", "Objective C" -> "ObjectiveC") and whitespace runs
// would collapse to "_". Names that end up empty, start with a digit or hit a
// reserved word get a "lang" prefix.
func Identifier(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	id := reNonWord.ReplaceAllString(folded, "")
	id = reWhitespace.ReplaceAllString(id, "_")

	switch {
	case id == "":
		return identifierFallback
	case id[0] >= '0' && id[0] <= '9':
		return identifierFallback + "_" + id
	}
	if _, reserved := reservedIdentifiers[id]; reserved {
		return identifierFallback + "_" + id
	}
	return id
}

// AssignIdentifiers derives one identifier per language, in input order, and
// resolves duplicates according to policy. namespace is reserved as well
// because it is referenced unqualified in the generated signature.
func AssignIdentifiers(languages []document.Language, policy CollisionPolicy, namespace string) ([]string, error) {
	owners := make(map[string]string, len(languages))
	if namespace != "" {
		owners[namespace] = "namespace " + namespace
	}

	ids := make([]string, 0, len(languages))
	for i, lang := range languages {
		display := lang.DisplayName(i)
		base := identifierFallback
		if lang.Name != nil {
			base = Identifier(*lang.Name)
		}

		id := base
		if owner, taken := owners[id]; taken {
			if policy == CollisionFail {
				return nil, fmt.Errorf("%w: %q and %q both map to %q", ErrIdentifierCollision, owner, display, id)
			}
			for n := 2; ; n++ {
				id = fmt.Sprintf("%s_%d", base, n)
				if _, taken := owners[id]; !taken {
					break
				}
			}
		}

		owners[id] = display
		ids = append(ids, id)
	}
	return ids, nil
}
