// Package config loads the songbook project configuration from a YAML
// file. Every field has a sensible default so a missing config file is
// not an error for read-only commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jvesely/go-songtex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidTuning  = errors.New("invalid tuning value")
)

// DefaultPath is where the CLI looks for the project config.
const DefaultPath = "songbook.yaml"

// Config holds all configuration for one songbook project.
type Config struct {
	Library LibraryConfig `yaml:"library"`
	Output  OutputConfig  `yaml:"output"`
	Tuning  TuningConfig  `yaml:"tuning"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Sorter  SorterConfig  `yaml:"sorter"`
}

// LibraryConfig locates the scraped song records.
type LibraryConfig struct {
	Path string `yaml:"path"` // JSON file with the scraped songs
}

// OutputConfig locates the generated artefacts.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // per-song .tex files
	Book    string `yaml:"book"`    // master document
	Catalog string `yaml:"catalog"` // assembly-state database
}

// TuningConfig overrides the join-marker reach heuristics; zero values
// keep the defaults.
type TuningConfig struct {
	MinReach     int `yaml:"minReach"`
	QualityBonus int `yaml:"qualityBonus"`
}

// FetchConfig tunes the acquisition boundary.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// SorterConfig configures the manual reordering UI.
type SorterConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Library: LibraryConfig{Path: "song_with_chords.json"},
		Output: OutputConfig{
			Dir:     "songs",
			Book:    "main.tex",
			Catalog: "songbook.sqlite",
		},
		Fetch:  FetchConfig{TimeoutSeconds: 30},
		Sorter: SorterConfig{Addr: "localhost:8007"},
	}
}

// Load reads and validates the config at path, filling unset fields
// with defaults. A missing file returns ErrConfigNotFound so callers
// can fall back to Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot work with.
func (c Config) Validate() error {
	if c.Tuning.MinReach < 0 {
		return fmt.Errorf("%w: minReach %d", ErrInvalidTuning, c.Tuning.MinReach)
	}
	if c.Tuning.QualityBonus < 0 {
		return fmt.Errorf("%w: qualityBonus %d", ErrInvalidTuning, c.Tuning.QualityBonus)
	}
	return nil
}

// FetchTimeout returns the acquisition timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}
