// Package store provides keyed document storage for persisted dashboard state.
//
// This package defines the Store interface and implementations for different
// backends:
//   - file: JSON files in a config directory, the default for CLI usage
//   - memory: in-memory storage for development/testing
//   - redis: Redis-backed storage for hosts that already run one
//
// A Store holds small opaque documents under string keys. The layout engine
// uses exactly two keys: the current layout document and, transiently, the
// legacy column-count setting consumed by schema migration. Stores report
// errors; deciding to fail soft is the caller's job (the layout store never
// surfaces a storage error to the user).
//
// # Usage
//
//	st, err := store.NewFileStore("")  // Uses ~/.config/tiledeck/state/
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	data, ok, err := st.Get(ctx, "layout")
package store

import "context"

// Store is the interface for keyed document storage backends.
type Store interface {
	// Get retrieves the document under key.
	// The boolean reports whether the key exists; a missing key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a document under key, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes the document under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Location describes where documents live (a directory, an address),
	// for diagnostics.
	Location() string

	// Close releases any resources held by the store.
	Close() error
}
