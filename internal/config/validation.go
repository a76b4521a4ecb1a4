// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/computare/computare-gen/internal/codegen"
	"github.com/rs/zerolog"
)

// Validate checks a resolved configuration. All problems are reported at
// once; each wraps ErrInvalidConfig.
func Validate(cfg AppConfig) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		fail("logLevel %q", cfg.LogLevel)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json", "console":
	default:
		fail("logFormat %q (want json or console)", cfg.LogFormat)
	}
	if err := codegen.ValidateNamespace(cfg.Namespace); err != nil {
		fail("%v", err)
	}
	if err := codegen.ValidateIncludePrefix(cfg.IncludePrefix); err != nil {
		fail("includePrefix: %v", err)
	}
	if _, err := codegen.ParseEscaping(cfg.EscapeMode); err != nil {
		fail("escapeMode: %v", err)
	}
	if _, err := codegen.ParseCollisionPolicy(cfg.Collisions); err != nil {
		fail("collisions: %v", err)
	}

	outputs := make(map[string]string, len(cfg.Jobs))
	for i, job := range cfg.Jobs {
		where := fmt.Sprintf("jobs[%d] (%s)", i, job.ID())
		switch job.Kind {
		case JobGenerate:
			if job.Template != "" || job.Placeholder != "" {
				fail("%s: template and placeholder only apply to embed jobs", where)
			}
		case JobEmbed:
			if job.Template == "" {
				fail("%s: template is required", where)
			}
		default:
			fail("%s: kind %q (want %q or %q)", where, job.Kind, JobGenerate, JobEmbed)
		}
		if job.Input == "" {
			fail("%s: input is required", where)
		}
		if job.Output == "" {
			fail("%s: output is required", where)
			continue
		}

		out := filepath.Clean(job.Output)
		if out == filepath.Clean(job.Input) || (job.Template != "" && out == filepath.Clean(job.Template)) {
			fail("%s: output overwrites an input", where)
		}
		if prev, dup := outputs[out]; dup {
			fail("%s: output %s is also written by %s", where, job.Output, prev)
			continue
		}
		outputs[out] = job.ID()
	}

	return errors.Join(errs...)
}
