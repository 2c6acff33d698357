// Package layout implements the dashboard layout engine.
//
// A layout is an ordered sequence of tile placements: which tiles are on the
// dashboard, in what order, and how many grid columns each one spans. The
// package owns the versioned persistence format, pure mutation operations,
// schema migration across format changes, and the responsive geometry that
// turns an abstract layout plus a measured viewport width into concrete
// per-tile pixel dimensions.
//
// # Components
//
//   - Layout / Placement: the versioned data model (layout.go)
//   - Mutators: Reorder, AddTile, RemoveTile, SetTileSpan, SetAllSpans (mutate.go)
//   - Migration: explicit table keyed by source schema version (migrate.go)
//   - Geometry: span resolution, pixel widths, compactness (geometry.go)
//   - Adapter: translates gesture-layer events into mutations (events.go)
//   - Store: load/migrate/save lifecycle over a storage backend (store.go)
//
// Every mutation yields a new valid layout; the engine never surfaces a
// persistence or schema error, converging to the built-in default layout in
// the worst case.
package layout

import (
	"encoding/json"
	"fmt"
)

// Grid constants.
const (
	// GridColumns is the width of the layout grid in columns.
	GridColumns = 12

	// LegacyGridColumns is the grid width of the pre-v2 schema. Legacy
	// layouts configured a total column count in [2, 4]; see migrate.go.
	LegacyGridColumns = 4

	// DefaultColSpan is the span used by placements without an explicit one.
	DefaultColSpan = 4

	// MobileColSpan is the span forced on narrow/mobile viewports: half the
	// grid, raised further when a tile's own minimum demands it.
	MobileColSpan = GridColumns / 2
)

// CurrentVersion is the schema version written by this engine.
const CurrentVersion = 2

// Storage keys used by the Store.
const (
	// LayoutKey holds the persisted layout document.
	LayoutKey = "layout"

	// LegacyColumnsKey held the v1 schema's total column count. It is read
	// once during migration and deleted afterwards.
	LegacyColumnsKey = "layout-columns"
)

// Placement is a tile's presence and width setting within a layout.
type Placement struct {
	TileID string `json:"tileId"`

	// ColSpan is the tile's width in grid columns. Zero means unset, in
	// which case the tile resolves to DefaultColSpan.
	ColSpan int `json:"colSpan,omitempty"`
}

// Span returns the placement's resolved span: the explicit ColSpan if set,
// otherwise DefaultColSpan. The result is not yet clamped to the tile's
// minimum; see EffectiveSpan.
func (p Placement) Span() int {
	if p.ColSpan > 0 {
		return p.ColSpan
	}
	return DefaultColSpan
}

// Layout is the versioned, ordered arrangement of tiles on the dashboard.
// The tile order is the display order. No two placements share a TileID.
type Layout struct {
	Version int         `json:"version"`
	Tiles   []Placement `json:"tiles"`
}

// Clone returns a deep copy. Mutators operate on copies so callers holding
// the old value never observe a half-applied mutation.
func (l Layout) Clone() Layout {
	tiles := make([]Placement, len(l.Tiles))
	copy(tiles, l.Tiles)
	return Layout{Version: l.Version, Tiles: tiles}
}

// IndexOf returns the position of tileID in the display order, or -1.
func (l Layout) IndexOf(tileID string) int {
	for i, p := range l.Tiles {
		if p.TileID == tileID {
			return i
		}
	}
	return -1
}

// Has reports whether tileID is placed on the dashboard.
func (l Layout) Has(tileID string) bool {
	return l.IndexOf(tileID) >= 0
}

// TileIDs returns the placed tile ids in display order.
func (l Layout) TileIDs() []string {
	ids := make([]string, len(l.Tiles))
	for i, p := range l.Tiles {
		ids[i] = p.TileID
	}
	return ids
}

// Marshal serializes the layout to its persisted JSON form.
func (l Layout) Marshal() ([]byte, error) {
	return json.Marshal(l)
}

// Unmarshal parses a persisted layout document. It validates structure only
// (well-formed JSON, positive version, placements with non-empty ids);
// catalog validation and version handling are the Store's job.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	if l.Version <= 0 {
		return Layout{}, fmt.Errorf("layout version must be positive, got %d", l.Version)
	}
	for i, p := range l.Tiles {
		if p.TileID == "" {
			return Layout{}, fmt.Errorf("placement %d has empty tile id", i)
		}
	}
	return l, nil
}

// Default returns the built-in default layout: the core weather tiles at
// the registry-wide default span, at the current schema version.
func Default() Layout {
	return Layout{
		Version: CurrentVersion,
		Tiles: []Placement{
			{TileID: "temperature"},
			{TileID: "humidity"},
			{TileID: "wind"},
			{TileID: "pressure"},
			{TileID: "rain"},
			{TileID: "station-status"},
		},
	}
}
