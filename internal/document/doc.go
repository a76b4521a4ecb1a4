// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package document loads the Computare configuration document: the JSON (or
// YAML) file describing the default settings that get compiled into the
// native binary.
//
// Field presence is significant. Every optional field is decoded into a
// pointer so the code generator can tell "absent" apart from "present but
// empty or false"; absent fields never produce generated statements.
//
// Ignore entries use a leading negation marker:
//
//	"build"  -> IgnoreRule{Pattern: "build", Ignored: true}
//	"!src"   -> IgnoreRule{Pattern: "src",   Ignored: false}
package document
