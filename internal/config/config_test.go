package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Completer.CaseSensitive)
	assert.Equal(t, 2, cfg.Completer.MinIdentifierLength)
	assert.Equal(t, 200, cfg.Wordlist.DebounceMs)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idcomplete.toml")
	content := `
[completer]
max_results = 25
case_sensitive = false
workers = 4

[wordlist]
patterns = ["tags/**/*.txt"]
watch = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Completer.MaxResults)
	assert.False(t, cfg.Completer.CaseSensitive)
	assert.Equal(t, 4, cfg.Completer.Workers)
	assert.Equal(t, []string{"tags/**/*.txt"}, cfg.Wordlist.Patterns)
	assert.True(t, cfg.Wordlist.Watch)
	// Values absent from the file keep their defaults.
	assert.Equal(t, 2, cfg.Completer.MinIdentifierLength)
	assert.Equal(t, 200, cfg.Wordlist.DebounceMs)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("completer = [not toml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative max_results", func(c *Config) { c.Completer.MaxResults = -1 }, false},
		{"negative workers", func(c *Config) { c.Completer.Workers = -2 }, false},
		{"zero min length", func(c *Config) { c.Completer.MinIdentifierLength = 0 }, false},
		{"negative debounce", func(c *Config) { c.Wordlist.DebounceMs = -100 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
