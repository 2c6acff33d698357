// Package pkg provides the core libraries for the tiledeck dashboard engine.
//
// # Overview
//
// Tiledeck manages a dashboard of live-sensor tiles for a home weather
// station: an ordered, persisted arrangement that users reorder, resize,
// add to, and remove from. The pkg directory is organized into five areas:
//
//  1. [catalog] - The fixed registry of tile definitions
//  2. [layout] - The layout model: mutations, migration, geometry, events
//  3. [store] - Keyed document storage backends (file, memory, redis)
//  4. [errors] - Structured error codes and input validation
//  5. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow through tiledeck:
//
//	Storage backend (file/memory/redis)
//	         ↓
//	    [layout.Store] (load, validate, migrate, save)
//	         ↓
//	    [layout] mutations (reorder, resize, add, remove)
//	         ↓
//	    [layout.Geometry] (responsive spans, pixel widths)
//	         ↓
//	    Dashboard TUI / HTTP API
//
// # Quick Start
//
// Load a layout, move a tile, and persist the result:
//
//	import (
//	    "context"
//	    "github.com/mlandgraf/tiledeck/pkg/catalog"
//	    "github.com/mlandgraf/tiledeck/pkg/layout"
//	    "github.com/mlandgraf/tiledeck/pkg/store"
//	)
//
//	// 1. Open a backend
//	backend, _ := store.NewFileStore("")
//	defer backend.Close()
//
//	// 2. Load the persisted arrangement (migrating old schemas)
//	cat := catalog.Default()
//	st := layout.NewStore(backend, cat, nil)
//	l := st.Load(context.Background())
//
//	// 3. Mutate and persist
//	l = layout.Reorder(l, 0, 2)
//	st.Save(context.Background(), l)
//
// # Main Packages
//
// [catalog] - Tile definitions: identity, display label, picker category,
// minimum column span, chart flip side, and solar gating. The catalog is
// fixed at build time; layouts only reference it.
//
// [layout] - Everything about the arrangement itself. Pure mutation
// functions over an immutable-by-convention Layout value, versioned schema
// migration, responsive span/pixel geometry, the fail-soft persistence
// lifecycle, and the drag/resize event adapter used by interactive surfaces.
//
// [store] - Small keyed documents under string keys. FileStore for CLI use,
// MemoryStore for tests, RedisStore for hosts that share state between
// displays.
//
// [errors] - Error codes, wrapping, and user-facing messages, plus
// validation helpers for tile identifiers and spans.
//
// [observability] - Hook interfaces with no-op defaults so hosts can attach
// metrics without the libraries depending on any particular backend.
package pkg
