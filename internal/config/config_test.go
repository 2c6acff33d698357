package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mlandgraf/tiledeck/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, BackendFile)
	}
	if cfg.Grid.GapPx != 16 {
		t.Errorf("GapPx = %v, want 16", cfg.Grid.GapPx)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "redis"

[storage.redis]
addr = "10.0.0.5:6379"
db = 2

[site]
solar = true

[grid]
gap_px = 12.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.Backend != BackendRedis {
		t.Errorf("Backend = %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Redis.Addr != "10.0.0.5:6379" || cfg.Storage.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Storage.Redis)
	}
	if !cfg.Site.Solar {
		t.Error("Solar should be true")
	}
	if cfg.Grid.GapPx != 12 {
		t.Errorf("GapPx = %v, want 12", cfg.Grid.GapPx)
	}
	// Unset values keep their defaults.
	if cfg.Grid.CompactThresholdPx != 380 {
		t.Errorf("CompactThresholdPx = %v, want default 380", cfg.Grid.CompactThresholdPx)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "this is not toml = = =")

	cfg, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
	// The returned config is still usable.
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("malformed file should fall back to defaults, got %+v", cfg.Storage)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"memory backend", func(c *Config) { c.Storage.Backend = BackendMemory }, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "carrier-pigeon" }, true},
		{"redis without addr", func(c *Config) {
			c.Storage.Backend = BackendRedis
			c.Storage.Redis.Addr = ""
		}, true},
		{"negative gap", func(c *Config) { c.Grid.GapPx = -1 }, true},
		{"negative threshold", func(c *Config) { c.Grid.CompactThresholdPx = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
