// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package config loads the computare-gen tool configuration.
//
// Precedence is ENV > file > defaults. The optional YAML file is decoded
// strictly: unknown keys fail with ErrUnknownConfigField. A .env file in the
// working directory is merged into the process environment first without
// overriding variables that are already set.
package config
