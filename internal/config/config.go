// Package config loads the tiledeck configuration file.
//
// Configuration lives in a TOML file at ~/.config/tiledeck/config.toml
// (or $XDG_CONFIG_HOME/tiledeck/config.toml). Everything has a default;
// a missing file is normal and a malformed file degrades to defaults with
// a warning, matching the fail-soft posture of the layout engine itself.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mlandgraf/tiledeck/pkg/errors"
)

// appName is the application name used for config directories.
const appName = "tiledeck"

// Storage backend names accepted in the config file.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the root configuration document.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Site    SiteConfig    `toml:"site"`
	Grid    GridConfig    `toml:"grid"`
}

// StorageConfig selects and tunes the persistence backend.
type StorageConfig struct {
	// Backend is one of "file" (default), "memory", or "redis".
	Backend string `toml:"backend"`

	// Dir overrides the file backend's state directory.
	Dir string `toml:"dir"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SiteConfig describes the sensor site.
type SiteConfig struct {
	// Solar indicates the site has solar/UV sensors; without it,
	// solar-gated tiles are hidden from the add-tile picker.
	Solar bool `toml:"solar"`
}

// GridConfig tunes the responsive grid.
type GridConfig struct {
	// GapPx is the gutter between grid columns, in pixels.
	GapPx float64 `toml:"gap_px"`

	// CompactThresholdPx is the tile pixel width below which the compact
	// rendering variant is used on desktop viewports.
	CompactThresholdPx float64 `toml:"compact_threshold_px"`

	// MobileBreakpointPx is the viewport width below which the device is
	// treated as mobile.
	MobileBreakpointPx float64 `toml:"mobile_breakpoint_px"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Site: SiteConfig{Solar: false},
		Grid: GridConfig{
			GapPx:              16,
			CompactThresholdPx: 380,
			MobileBreakpointPx: 700,
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, layering it over the defaults.
// A missing file returns the defaults with no error. A malformed or
// invalid file returns the defaults and an error the caller may log;
// the returned Config is always usable.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks field values the TOML decoder can't.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendMemory, BackendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown storage backend %q", c.Storage.Backend)
	}

	if c.Storage.Backend == BackendRedis && c.Storage.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis backend requires storage.redis.addr")
	}

	if c.Grid.GapPx < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.gap_px cannot be negative")
	}
	if c.Grid.CompactThresholdPx < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.compact_threshold_px cannot be negative")
	}
	if c.Grid.MobileBreakpointPx < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.mobile_breakpoint_px cannot be negative")
	}
	return nil
}
