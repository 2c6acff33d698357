package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/mlandgraf/tiledeck/internal/config"
	"github.com/mlandgraf/tiledeck/pkg/store"
)

func TestRootCommand(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()

	if root.Use != "tiledeck" {
		t.Errorf("Use = %q, want tiledeck", root.Use)
	}

	want := []string{"dashboard", "layout", "tiles", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag not registered")
	}
}

func TestNewBackend(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory
	b, err := newBackend(ctx, cfg)
	if err != nil {
		t.Fatalf("newBackend(memory) error: %v", err)
	}
	defer b.Close()
	if _, ok := b.(*store.MemoryStore); !ok {
		t.Errorf("newBackend(memory) = %T, want *store.MemoryStore", b)
	}

	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.Dir = t.TempDir()
	f, err := newBackend(ctx, cfg)
	if err != nil {
		t.Fatalf("newBackend(file) error: %v", err)
	}
	defer f.Close()
	if _, ok := f.(*store.FileStore); !ok {
		t.Errorf("newBackend(file) = %T, want *store.FileStore", f)
	}
}
