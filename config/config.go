package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chidiwilliams/lm/parse"
)

// FileName is the name of the config file looked up in the home directory
const FileName = ".lm.yaml"

// Config holds the driver settings
type Config struct {
	// Prompt is the REPL prompt
	Prompt string `yaml:"prompt"`
	// HistoryFile is where the REPL keeps its line history.
	// A relative path is taken relative to the home directory.
	HistoryFile string `yaml:"history_file"`
	// MaxDepth limits nested unary and grouping expressions
	MaxDepth int `yaml:"max_depth"`
	// PrintAST prints each parsed statement before running it
	PrintAST bool `yaml:"print_ast"`
	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no config file is present
func Default() Config {
	return Config{
		Prompt:      "> ",
		HistoryFile: ".lm_history",
		MaxDepth:    parse.DefaultMaxDepth,
		LogLevel:    "warn",
	}
}

// ValidationError aggregates config validation failures
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("config: invalid ")
	b.WriteString(e.Path)
	b.WriteString(":")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads the YAML config at path on top of the defaults.
// An empty file yields the defaults.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	return Decode(path, file)
}

// Decode reads a YAML config from r on top of the defaults.
// name identifies the source in error messages.
func Decode(name string, r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", name, err)
	}

	if err := cfg.validate(name); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault loads $HOME/.lm.yaml if it exists and
// returns the defaults otherwise
func LoadDefault() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(home, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// HistoryPath returns the absolute history file path, or ""
// if history is disabled
func (c Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.HistoryFile)
}

func (c Config) validate(name string) error {
	var errs ValidationError
	if c.MaxDepth < 1 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_depth must be positive, got %d", c.MaxDepth))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}

	if len(errs.Issues) > 0 {
		errs.Path = name
		return &errs
	}
	return nil
}
