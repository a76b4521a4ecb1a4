// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService = "service"
	FieldVersion = "version"
	FieldJobID   = "job_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldCommand   = "command"

	// Path fields
	FieldPath     = "path"
	FieldInput    = "input"
	FieldOutput   = "output"
	FieldTemplate = "template"
	FieldBackup   = "backup"

	// Generation fields
	FieldLanguages  = "languages"
	FieldIgnored    = "ignored"
	FieldBytes      = "bytes"
	FieldReplaced   = "replaced"
	FieldIdentifier = "identifier"
)
