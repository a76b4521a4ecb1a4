// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package codegen turns a configuration document into the C++ source of
// Computare::GenerateDefaultConfig(), the function the native binary calls
// when no user config file is present.
package codegen
