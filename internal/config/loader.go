// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/computare/computare-gen/internal/codegen"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "computare-gen.yaml"

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader. An empty configPath means
// defaults and environment only.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath:      configPath,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envBool(key string, defaultVal bool) bool {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseBool(key, defaultVal)
}

// Defaults returns the configuration used when neither file nor environment
// set a value.
func Defaults() AppConfig {
	opts := codegen.DefaultOptions()
	return AppConfig{
		LogLevel:      "info",
		LogFormat:     "console",
		Namespace:     opts.Namespace,
		IncludePrefix: opts.IncludePrefix,
		EscapeMode:    string(opts.Escaping),
		Collisions:    string(opts.Collisions),
	}
}

// Load loads configuration with precedence: ENV > File > Defaults
// It enforces Strict Validated Order: Parse File (Strict) -> Apply Env -> Validate
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
		cfg.ConfigPath = filepath.Clean(l.configPath)
		resolveJobPaths(cfg.Jobs, filepath.Dir(cfg.ConfigPath))
	}

	l.mergeEnvConfig(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadFile loads configuration from a YAML file with STRICT parsing.
// Unknown fields will cause a fatal error to prevent misconfiguration.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parseFileConfig(data)
}

func parseFileConfig(data []byte) (*FileConfig, error) {
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}
	return &fileCfg, nil
}

func mergeFileConfig(dst *AppConfig, src *FileConfig) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&dst.LogLevel, src.LogLevel)
	setString(&dst.LogFormat, src.LogFormat)
	setString(&dst.Namespace, src.Namespace)
	setString(&dst.IncludePrefix, src.IncludePrefix)
	setString(&dst.EscapeMode, src.EscapeMode)
	setString(&dst.Collisions, src.Collisions)
	if src.Strict != nil {
		dst.Strict = *src.Strict
	}
	if len(src.Jobs) > 0 {
		dst.Jobs = append([]Job(nil), src.Jobs...)
	}
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = l.envString(EnvLogFormat, cfg.LogFormat)
	cfg.Namespace = l.envString(EnvNamespace, cfg.Namespace)
	cfg.IncludePrefix = l.envString(EnvIncludePrefix, cfg.IncludePrefix)
	cfg.EscapeMode = l.envString(EnvEscapeMode, cfg.EscapeMode)
	cfg.Collisions = l.envString(EnvCollisions, cfg.Collisions)
	cfg.Strict = l.envBool(EnvStrict, cfg.Strict)
}

// resolveJobPaths makes relative job paths relative to the config file.
func resolveJobPaths(jobs []Job, base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, filepath.FromSlash(p))
	}
	for i := range jobs {
		jobs[i].Input = abs(jobs[i].Input)
		jobs[i].Output = abs(jobs[i].Output)
		jobs[i].Template = abs(jobs[i].Template)
	}
}

// ResolvePath returns explicit if set, then $COMPUTARE_CONFIG, then
// DefaultFileName in dir when it exists. The empty string means no file.
func ResolvePath(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	candidate := filepath.Join(dir, DefaultFileName)
	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		return candidate
	}
	return ""
}
