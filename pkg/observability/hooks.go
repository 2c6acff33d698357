// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout lifecycle and storage operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLoad(ctx, tileCount, fellBack)
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout store lifecycle.
type LayoutHooks interface {
	// OnLoad records a layout load. fellBack reports whether the default
	// layout was substituted for a missing or unusable document.
	OnLoad(ctx context.Context, tileCount int, fellBack bool)

	// OnMigrate records a schema migration from one version to another.
	OnMigrate(ctx context.Context, fromVersion, toVersion int)

	// OnSave records a persist attempt. err is nil on success; failed
	// saves are swallowed by the store, so this is the only place they
	// remain visible.
	OnSave(ctx context.Context, tileCount int, err error)
}

// =============================================================================
// Storage Hooks
// =============================================================================

// StorageHooks receives events from backend document operations.
type StorageHooks interface {
	// OnHit records a read that found a document.
	OnHit(ctx context.Context, key string)

	// OnMiss records a read that found nothing.
	OnMiss(ctx context.Context, key string)

	// OnWrite records a document write.
	OnWrite(ctx context.Context, key string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLoad(context.Context, int, bool)   {}
func (NoopLayoutHooks) OnMigrate(context.Context, int, int) {}
func (NoopLayoutHooks) OnSave(context.Context, int, error)  {}

// NoopStorageHooks is a no-op implementation of StorageHooks.
type NoopStorageHooks struct{}

func (NoopStorageHooks) OnHit(context.Context, string)        {}
func (NoopStorageHooks) OnMiss(context.Context, string)       {}
func (NoopStorageHooks) OnWrite(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks  LayoutHooks  = NoopLayoutHooks{}
	storageHooks StorageHooks = NoopStorageHooks{}
	hooksMu      sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetStorageHooks registers custom storage hooks.
// This should be called once at application startup before any storage operations.
func SetStorageHooks(h StorageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storageHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Storage returns the registered storage hooks.
func Storage() StorageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storageHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	storageHooks = NoopStorageHooks{}
}
