// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package embed splices the default configuration text into the C++ entry
// point. Render does it in one step from a template; Prebuild and Postbuild
// keep the older in-place rewrite with a hidden backup of src/main.cpp.
package embed
