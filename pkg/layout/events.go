package layout

import (
	"context"

	"github.com/mlandgraf/tiledeck/pkg/catalog"
)

// EventKind discriminates gesture-layer events.
type EventKind int

const (
	// EventReorder is a drop event: the dragged tile landed on another.
	EventReorder EventKind = iota

	// EventResize is a resize-drag delta on one tile's edge.
	EventResize
)

// Event is the narrow interface between the gesture layer and the layout
// engine. Whatever library produces drags, it reduces to one of these.
type Event struct {
	Kind EventKind

	// Reorder payload: the dragged ("active") and drop-target ("over")
	// tile identities as the gesture layer knows them.
	ActiveID string
	OverID   string

	// Resize payload: the tile being resized, the horizontal drag delta in
	// pixels, and the grid width measured when the drag started.
	TileID      string
	DeltaPx     float64
	GridWidthPx float64
}

// Adapter translates gesture events into layout mutations and persists the
// result. It is the only consumer of the mutators on the interaction path.
type Adapter struct {
	catalog *catalog.Catalog
	store   *Store
	geom    Geometry
}

// NewAdapter creates an adapter bound to a catalog, store, and geometry.
func NewAdapter(cat *catalog.Catalog, st *Store, geom Geometry) *Adapter {
	return &Adapter{catalog: cat, store: st, geom: geom}
}

// Apply consumes one event against the current layout and returns the new
// layout. Unresolvable events (unknown identities, identical active/over,
// unmeasured grid) leave the layout unchanged. The result is persisted
// either way; saves are fail-soft.
func (a *Adapter) Apply(ctx context.Context, l Layout, ev Event) Layout {
	switch ev.Kind {
	case EventReorder:
		l = a.reorder(l, ev)
	case EventResize:
		l = a.resize(l, ev)
	}

	a.store.Save(ctx, l)
	return l
}

// reorder maps the active/over identities to their current display indices.
// Ignored when either identity is not placed or they are the same tile.
func (a *Adapter) reorder(l Layout, ev Event) Layout {
	if ev.ActiveID == ev.OverID {
		return l
	}
	from := l.IndexOf(ev.ActiveID)
	to := l.IndexOf(ev.OverID)
	if from < 0 || to < 0 {
		return l
	}
	return Reorder(l, from, to)
}

// resize turns the pixel delta into a candidate span by inverting the grid
// pixel formula, then routes it through SetTileSpan for clamping.
func (a *Adapter) resize(l Layout, ev Event) Layout {
	idx := l.IndexOf(ev.TileID)
	if idx < 0 {
		return l
	}

	current := EffectiveSpan(a.catalog, l.Tiles[idx], false)
	width := a.geom.TilePixelWidth(current, ev.GridWidthPx)
	if width == UnmeasuredPixelWidth {
		return l
	}

	candidate := a.geom.SpanForWidth(width+ev.DeltaPx, ev.GridWidthPx)
	if candidate == 0 {
		return l
	}
	return SetTileSpan(a.catalog, l, ev.TileID, candidate)
}
