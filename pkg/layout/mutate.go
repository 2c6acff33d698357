package layout

import (
	"github.com/mlandgraf/tiledeck/pkg/catalog"
)

// Mutators are pure: each takes the current layout and returns a new valid
// layout, leaving the input untouched. Out-of-range indices and unknown or
// duplicate tile ids are no-ops, never errors — a stale gesture event must
// not crash the dashboard.

// Reorder removes the placement at from and reinserts it at to.
// Indices outside the layout, or equal to each other, yield the layout
// unchanged.
func Reorder(l Layout, from, to int) Layout {
	n := len(l.Tiles)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return l
	}

	out := l.Clone()
	moved := out.Tiles[from]
	out.Tiles = append(out.Tiles[:from], out.Tiles[from+1:]...)

	// rest copies the tail before the second append can clobber it.
	rest := append([]Placement{moved}, out.Tiles[to:]...)
	out.Tiles = append(out.Tiles[:to], rest...)
	return out
}

// AddTile appends a placement for tileID at the end of the layout.
// Unknown ids and ids already present are no-ops. colSpan is recorded only
// when positive; zero leaves the tile on the registry-wide default span.
func AddTile(cat *catalog.Catalog, l Layout, tileID string, colSpan int) Layout {
	if !cat.Has(tileID) || l.Has(tileID) {
		return l
	}

	out := l.Clone()
	p := Placement{TileID: tileID}
	if colSpan > 0 {
		p.ColSpan = clampSpan(cat, tileID, colSpan)
	}
	out.Tiles = append(out.Tiles, p)
	return out
}

// RemoveTile removes the placement for tileID; a no-op if absent.
func RemoveTile(l Layout, tileID string) Layout {
	idx := l.IndexOf(tileID)
	if idx < 0 {
		return l
	}

	out := l.Clone()
	out.Tiles = append(out.Tiles[:idx], out.Tiles[idx+1:]...)
	return out
}

// SetTileSpan sets tileID's span to requested, clamped to the tile's
// minimum and the grid width. A no-op if the tile is not placed.
func SetTileSpan(cat *catalog.Catalog, l Layout, tileID string, requested int) Layout {
	idx := l.IndexOf(tileID)
	if idx < 0 {
		return l
	}

	out := l.Clone()
	out.Tiles[idx].ColSpan = clampSpan(cat, tileID, requested)
	return out
}

// SetAllSpans applies requested to every placement, clamped per tile.
// Tiles whose minimum exceeds the requested span end up wider than the
// preset; per-tile minimums are hard floors.
func SetAllSpans(cat *catalog.Catalog, l Layout, requested int) Layout {
	out := l.Clone()
	for i := range out.Tiles {
		out.Tiles[i].ColSpan = clampSpan(cat, out.Tiles[i].TileID, requested)
	}
	return out
}

// clampSpan clamps requested to [minColSpan(tileID), GridColumns]. Unknown
// tiles clamp against catalog.FallbackMinColSpan.
func clampSpan(cat *catalog.Catalog, tileID string, requested int) int {
	min := cat.MinColSpan(tileID)
	if requested < min {
		return min
	}
	if requested > GridColumns {
		return GridColumns
	}
	return requested
}
