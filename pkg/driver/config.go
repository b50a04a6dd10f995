// Package driver loads lambda.yml configuration and YAML scenario suites.
package driver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "lambda.yml"

// ErrConfigNotFound is returned by FindConfig when no lambda.yml exists in the
// start directory or any of its parents.
var ErrConfigNotFound = errors.New(ConfigFileName + " not found")

// Config holds the evaluator settings read from lambda.yml.
type Config struct {
	Path          string
	LogLevel      string
	LogFormat     string
	Color         bool
	MaxSteps      uint64
	MaxStackBytes int
	HistoryFile   string
}

type configFile struct {
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	Color         *bool  `yaml:"color"`
	MaxSteps      uint64 `yaml:"max_steps"`
	MaxStackBytes int    `yaml:"max_stack_bytes"`
	HistoryFile   string `yaml:"history_file"`
}

// ValidationError aggregates configuration and suite validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func (e *ValidationError) add(format string, args ...any) {
	e.Issues = append(e.Issues, fmt.Sprintf(format, args...))
}

func (e *ValidationError) errOrNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// DefaultConfig returns the settings used when no lambda.yml is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "warn",
		LogFormat:   "text",
		Color:       true,
		HistoryFile: "~/.lambda_history",
	}
}

// LoadConfig parses lambda.yml from disk. Omitted keys keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := DefaultConfig()
	cfg.Path = absPath
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}
	if raw.LogFormat != "" {
		cfg.LogFormat = raw.LogFormat
	}
	if raw.Color != nil {
		cfg.Color = *raw.Color
	}
	cfg.MaxSteps = raw.MaxSteps
	cfg.MaxStackBytes = raw.MaxStackBytes
	if raw.HistoryFile != "" {
		cfg.HistoryFile = raw.HistoryFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and numeric bounds.
func (c *Config) Validate() error {
	var errs ValidationError
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		errs.add("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs.add("log_format must be text or json (got %q)", c.LogFormat)
	}
	if c.MaxStackBytes < 0 {
		errs.add("max_stack_bytes must not be negative")
	}
	return errs.errOrNil()
}

// FindConfig walks up from start looking for lambda.yml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}

// ResolveConfig loads path when given, otherwise the nearest lambda.yml above
// start, otherwise the defaults.
func ResolveConfig(path, start string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	found, err := FindConfig(start)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return LoadConfig(found)
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelWarn
}

// NewLogger builds the structured logger described by the config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// HistoryPath expands a leading "~" in HistoryFile. It returns "" when history
// is disabled or the home directory is unknown.
func (c *Config) HistoryPath() string {
	path := c.HistoryFile
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
