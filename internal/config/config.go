// Package config loads the TOML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/nikbrunner/emj/internal/asset"
	"github.com/nikbrunner/emj/internal/catalog"
	"github.com/nikbrunner/emj/internal/debounce"
	"github.com/nikbrunner/emj/internal/probe"
	"github.com/nikbrunner/emj/internal/render"
	"github.com/nikbrunner/emj/internal/session"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Size             int    `toml:"size" comment:"Asset size in pixels: 32, 64, 128 or 512"`
	Format           string `toml:"format" comment:"Asset format: png, webp, gif or picture"`
	BatchSize        int    `toml:"batch_size" comment:"Cards materialized per batch"`
	PrefetchMargin   int    `toml:"prefetch_margin" comment:"Rows before the last card at which the next batch loads"`
	DebounceMS       int    `toml:"debounce_ms" comment:"Quiet period after typing before the list is filtered"`
	ProbeAssets      bool   `toml:"probe_assets" comment:"Check that rendered assets exist and fall back to static png"`
	ProbeConcurrency int    `toml:"probe_concurrency"`
	ProbeTimeoutMS   int    `toml:"probe_timeout_ms"`
	History          bool   `toml:"history" comment:"Record copied URLs and markup"`

	Feeds  Feeds  `toml:"feeds"`
	Assets Assets `toml:"assets"`
}

// Feeds holds the catalog source locations.
type Feeds struct {
	AnimationURL string `toml:"animation_url"`
	NamesURL     string `toml:"names_url"`
}

// Assets holds the asset host settings.
type Assets struct {
	BaseURL string `toml:"base_url"`
	Version string `toml:"version"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Size:             int(asset.DefaultSize),
		Format:           string(asset.DefaultFormat),
		BatchSize:        render.DefaultBatchSize,
		PrefetchMargin:   session.DefaultPrefetchMargin,
		DebounceMS:       int(debounce.DefaultDelay / time.Millisecond),
		ProbeAssets:      true,
		ProbeConcurrency: probe.DefaultConcurrency,
		ProbeTimeoutMS:   int(probe.DefaultTimeout / time.Millisecond),
		History:          true,
		Feeds: Feeds{
			AnimationURL: catalog.DefaultAnimationURL,
			NamesURL:     catalog.DefaultNamesURL,
		},
		Assets: Assets{
			BaseURL: asset.DefaultBaseURL,
			Version: asset.DefaultVersion,
		},
	}
}

// Load reads config from the TOML file.
// Creates the file with defaults if it doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = Save(path, &config)
			return &config, nil
		}
		return nil, err
	}

	// Fields absent from the file keep their defaults
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	config.fillDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// fillDefaults replaces zero values that are never valid.
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.Size == 0 {
		c.Size = defaults.Size
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaults.BatchSize
	}
	if c.PrefetchMargin <= 0 {
		c.PrefetchMargin = defaults.PrefetchMargin
	}
	if c.DebounceMS <= 0 {
		c.DebounceMS = defaults.DebounceMS
	}
	if c.ProbeConcurrency <= 0 {
		c.ProbeConcurrency = defaults.ProbeConcurrency
	}
	if c.ProbeTimeoutMS <= 0 {
		c.ProbeTimeoutMS = defaults.ProbeTimeoutMS
	}
	if c.Feeds.AnimationURL == "" {
		c.Feeds.AnimationURL = defaults.Feeds.AnimationURL
	}
	if c.Feeds.NamesURL == "" {
		c.Feeds.NamesURL = defaults.Feeds.NamesURL
	}
	if c.Assets.BaseURL == "" {
		c.Assets.BaseURL = defaults.Assets.BaseURL
	}
	if c.Assets.Version == "" {
		c.Assets.Version = defaults.Assets.Version
	}
}

// Validate checks that size and format are selectable.
func (c *Config) Validate() error {
	if !asset.Size(c.Size).Valid() {
		return fmt.Errorf("%w: size %d", ErrInvalidConfig, c.Size)
	}
	if _, err := asset.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// AssetSize returns the configured size.
func (c *Config) AssetSize() asset.Size {
	return asset.Size(c.Size)
}

// AssetFormat returns the configured format.
func (c *Config) AssetFormat() asset.Format {
	f, err := asset.ParseFormat(c.Format)
	if err != nil {
		return asset.DefaultFormat
	}
	return f
}

// DebounceDelay returns the search debounce delay.
func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// ProbeTimeout returns the per-asset probe timeout.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMS) * time.Millisecond
}

// Save writes config to the TOML file.
// Creates the directory if it doesn't exist.
func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(config); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// DefaultPath returns the default config path: ~/.config/emj/config.toml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "emj", "config.toml"), nil
}
