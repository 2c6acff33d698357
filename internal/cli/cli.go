// Package cli implements the tiledeck command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mlandgraf/tiledeck/internal/config"
	"github.com/mlandgraf/tiledeck/pkg/buildinfo"
	"github.com/mlandgraf/tiledeck/pkg/catalog"
	"github.com/mlandgraf/tiledeck/pkg/layout"
	"github.com/mlandgraf/tiledeck/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "tiledeck"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the config file location (--config).
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Tiledeck arranges live-sensor dashboards",
		Long:         `Tiledeck is a dashboard of live-sensor tiles that can be reordered, resized, added, and removed, with the arrangement persisted across sessions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: ~/.config/tiledeck/config.toml)")

	// Register all subcommands
	root.AddCommand(c.dashboardCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.tilesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Engine Factory
// =============================================================================

// engine bundles everything a command needs to drive the layout engine.
type engine struct {
	cfg     config.Config
	catalog *catalog.Catalog
	backend store.Store
	store   *layout.Store
	geom    layout.Geometry
	adapter *layout.Adapter
}

// newEngine loads configuration and wires up the store, catalog, geometry,
// and interaction adapter. Config problems degrade to defaults with a
// warning; only an unusable storage backend is a hard error.
func (c *CLI) newEngine(ctx context.Context) (*engine, error) {
	path := c.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("No config path available", "err", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		c.Logger.Warn("Config unusable, using defaults", "err", err)
	}

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize storage backend: %w", err)
	}

	cat := catalog.Default()
	st := layout.NewStore(backend, cat, c.Logger)
	geom := layout.Geometry{
		GapPx:              cfg.Grid.GapPx,
		CompactThresholdPx: cfg.Grid.CompactThresholdPx,
	}

	return &engine{
		cfg:     cfg,
		catalog: cat,
		backend: backend,
		store:   st,
		geom:    geom,
		adapter: layout.NewAdapter(cat, st, geom),
	}, nil
}

// Close releases the storage backend.
func (e *engine) Close() error {
	return e.backend.Close()
}

// newBackend creates the storage backend selected by the config.
func newBackend(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendRedis:
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
	default:
		return store.NewFileStore(cfg.Storage.Dir)
	}
}
