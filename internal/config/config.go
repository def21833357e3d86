// Package config loads and validates the TOML configuration for the
// completion engine's host layer. A missing config file is not an error;
// defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the loader looks when no path is given.
const DefaultPath = ".idcomplete.toml"

// Config is the root configuration.
type Config struct {
	Completer Completer `toml:"completer"`
	Wordlist  Wordlist  `toml:"wordlist"`
}

// Completer configures ranking behavior.
type Completer struct {
	// MaxResults caps completions per query; 0 means unlimited.
	MaxResults int `toml:"max_results"`
	// CaseSensitive selects strict smart-case matching.
	CaseSensitive bool `toml:"case_sensitive"`
	// Workers bounds scoring parallelism; 0 means one per CPU.
	Workers int `toml:"workers"`
	// MinIdentifierLength drops identifiers shorter than this.
	MinIdentifierLength int `toml:"min_identifier_length"`
}

// Wordlist configures identifier list loading.
type Wordlist struct {
	// Patterns are doublestar globs selecting identifier list files.
	Patterns []string `toml:"patterns"`
	// Watch reloads word lists when their files change.
	Watch bool `toml:"watch"`
	// DebounceMs coalesces bursts of file change events.
	DebounceMs int `toml:"debounce_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Completer: Completer{
			MaxResults:          0,
			CaseSensitive:       true,
			Workers:             0,
			MinIdentifierLength: 2,
		},
		Wordlist: Wordlist{
			DebounceMs: 200,
		},
	}
}

// Load reads the config file at path, or the defaults when the file does
// not exist. Values absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot honor.
func (c *Config) Validate() error {
	if c.Completer.MaxResults < 0 {
		return fmt.Errorf("completer.max_results must not be negative, got %d", c.Completer.MaxResults)
	}
	if c.Completer.Workers < 0 {
		return fmt.Errorf("completer.workers must not be negative, got %d", c.Completer.Workers)
	}
	if c.Completer.MinIdentifierLength < 1 {
		return fmt.Errorf("completer.min_identifier_length must be at least 1, got %d", c.Completer.MinIdentifierLength)
	}
	if c.Wordlist.DebounceMs < 0 {
		return fmt.Errorf("wordlist.debounce_ms must not be negative, got %d", c.Wordlist.DebounceMs)
	}
	return nil
}
