// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"github.com/computare/computare-gen/internal/codegen"
	"github.com/computare/computare-gen/internal/embed"
)

// JobKind names what a job produces.
type JobKind string

const (
	// JobGenerate turns a configuration document into GenerateDefaultConfig() source.
	JobGenerate JobKind = "generate"
	// JobEmbed renders a template with the configuration text substituted.
	JobEmbed JobKind = "embed"
)

// Job is one unit of work for `computare-gen run`.
type Job struct {
	Name string  `yaml:"name"`
	Kind JobKind `yaml:"kind"`
	// Input is the configuration document (generate) or the text to embed (embed).
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Template string `yaml:"template,omitempty"`
	// Placeholder overrides embed.DefaultPlaceholder.
	Placeholder string `yaml:"placeholder,omitempty"`
}

// ID returns the job name, or a kind/output pair when the name is empty.
func (j Job) ID() string {
	if j.Name != "" {
		return j.Name
	}
	return string(j.Kind) + ":" + j.Output
}

// PlaceholderOrDefault returns the job's placeholder or embed.DefaultPlaceholder.
func (j Job) PlaceholderOrDefault() string {
	if j.Placeholder == "" {
		return embed.DefaultPlaceholder
	}
	return j.Placeholder
}

// FileConfig is the on-disk shape of computare-gen.yaml.
type FileConfig struct {
	LogLevel      string `yaml:"logLevel,omitempty"`
	LogFormat     string `yaml:"logFormat,omitempty"`
	Namespace     string `yaml:"namespace,omitempty"`
	IncludePrefix string `yaml:"includePrefix,omitempty"`
	EscapeMode    string `yaml:"escapeMode,omitempty"`
	Collisions    string `yaml:"collisions,omitempty"`
	Strict        *bool  `yaml:"strict,omitempty"`
	Jobs          []Job  `yaml:"jobs,omitempty"`
}

// AppConfig is the resolved configuration after defaults, file and
// environment have been merged.
type AppConfig struct {
	LogLevel  string
	LogFormat string

	Namespace     string
	IncludePrefix string
	EscapeMode    string
	Collisions    string
	Strict        bool

	Jobs []Job

	// ConfigPath is the file the configuration was read from, if any.
	ConfigPath string
}

// CodegenOptions returns the generator options for cfg. It assumes cfg passed
// Validate. SourceName is left empty so each job names its own input file.
func (cfg AppConfig) CodegenOptions() codegen.Options {
	opts := codegen.DefaultOptions()
	opts.SourceName = ""
	opts.Namespace = cfg.Namespace
	opts.IncludePrefix = cfg.IncludePrefix
	if esc, err := codegen.ParseEscaping(cfg.EscapeMode); err == nil {
		opts.Escaping = esc
	}
	if pol, err := codegen.ParseCollisionPolicy(cfg.Collisions); err == nil {
		opts.Collisions = pol
	}
	return opts
}

// EmbedMode returns the substitution escape mode for cfg.
func (cfg AppConfig) EmbedMode() embed.Mode {
	mode, err := embed.ParseMode(cfg.EscapeMode)
	if err != nil {
		return embed.ModeCpp
	}
	return mode
}
