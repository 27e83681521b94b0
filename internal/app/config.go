package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/allpairs/core"
	"github.com/katalvlaran/allpairs/loader"
)

// Edit operations accepted in Config.Edits.
const (
	OpInsert = "insert"
	OpRemove = "remove"
)

// Query asks for one source→destination path report.
type Query struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Edit is an edge mutation applied after the first report.
type Edit struct {
	Op     string `yaml:"op"`
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Config holds everything a run needs.
type Config struct {
	InputPath   string `yaml:"input"`
	Format      string `yaml:"format"` // text, yaml, or empty to guess from InputPath
	LogFormat   string `yaml:"log_format"`
	LogLevel    string `yaml:"log_level"`
	LegacyScan  bool   `yaml:"legacy_scan"`
	MaxVertices int    `yaml:"max_vertices"`
	SkipTable   bool   `yaml:"skip_table"`

	Queries []Query `yaml:"queries"`
	Edits   []Edit  `yaml:"edits"`
}

// LoadConfigFile reads a YAML config file. Unknown keys are rejected.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("input path is required")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.MaxVertices == 0 {
		cfg.MaxVertices = core.DefaultMaxVertices
	}

	switch cfg.Format {
	case "", loader.FormatText, loader.FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q: must be %q or %q", cfg.Format, loader.FormatText, loader.FormatYAML)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if cfg.MaxVertices < 1 {
		return nil, fmt.Errorf("invalid max-vertices %d: must be positive", cfg.MaxVertices)
	}
	for i, e := range cfg.Edits {
		if e.Op != OpInsert && e.Op != OpRemove {
			return nil, fmt.Errorf("edit %d: unknown op %q", i+1, e.Op)
		}
	}

	return &cfg, nil
}
