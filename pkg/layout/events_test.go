package layout

import (
	"context"
	"reflect"
	"testing"

	"github.com/mlandgraf/tiledeck/pkg/store"
)

func newTestAdapter(t *testing.T) (*Adapter, *store.MemoryStore) {
	t.Helper()
	backend := store.NewMemoryStore()
	cat := testCatalog()
	st := NewStore(backend, cat, nil)
	return NewAdapter(cat, st, DefaultGeometry()), backend
}

func TestAdapterReorder(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()
	l := threeTiles()

	got := a.Apply(ctx, l, Event{Kind: EventReorder, ActiveID: "temperature", OverID: "wind"})
	if !reflect.DeepEqual(got.TileIDs(), []string{"humidity", "wind", "temperature"}) {
		t.Errorf("reorder = %v", got.TileIDs())
	}
}

func TestAdapterReorderIgnored(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()
	l := threeTiles()

	tests := []struct {
		name   string
		active string
		over   string
	}{
		{"active unknown", "ghost", "wind"},
		{"over unknown", "wind", "ghost"},
		{"both unknown", "ghost", "phantom"},
		{"identical identities", "wind", "wind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Apply(ctx, l, Event{Kind: EventReorder, ActiveID: tt.active, OverID: tt.over})
			if !reflect.DeepEqual(got, l) {
				t.Errorf("event should be ignored, got %v", got.TileIDs())
			}
		})
	}
}

func TestAdapterResize(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()
	const gridWidth = 12*100 + 11*16

	l := threeTiles() // all tiles at the default span of 4

	// Dragging one full cell to the right grows the span by one.
	got := a.Apply(ctx, l, Event{
		Kind: EventResize, TileID: "humidity", DeltaPx: 116, GridWidthPx: gridWidth,
	})
	if idx := got.IndexOf("humidity"); got.Tiles[idx].ColSpan != 5 {
		t.Errorf("ColSpan = %d, want 5", got.Tiles[idx].ColSpan)
	}

	// A small wiggle rounds back to the current span.
	got = a.Apply(ctx, l, Event{
		Kind: EventResize, TileID: "humidity", DeltaPx: 20, GridWidthPx: gridWidth,
	})
	if idx := got.IndexOf("humidity"); got.Tiles[idx].ColSpan != 4 {
		t.Errorf("ColSpan = %d, want 4", got.Tiles[idx].ColSpan)
	}

	// A huge negative delta clamps at the tile's minimum.
	got = a.Apply(ctx, l, Event{
		Kind: EventResize, TileID: "wind", DeltaPx: -5000, GridWidthPx: gridWidth,
	})
	if idx := got.IndexOf("wind"); got.Tiles[idx].ColSpan != 3 {
		t.Errorf("ColSpan = %d, want wind minimum 3", got.Tiles[idx].ColSpan)
	}

	// A huge positive delta clamps at the grid width.
	got = a.Apply(ctx, l, Event{
		Kind: EventResize, TileID: "humidity", DeltaPx: 50_000, GridWidthPx: gridWidth,
	})
	if idx := got.IndexOf("humidity"); got.Tiles[idx].ColSpan != GridColumns {
		t.Errorf("ColSpan = %d, want %d", got.Tiles[idx].ColSpan, GridColumns)
	}
}

func TestAdapterResizeIgnored(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()
	l := threeTiles()

	// Unplaced tile.
	got := a.Apply(ctx, l, Event{Kind: EventResize, TileID: "ghost", DeltaPx: 100, GridWidthPx: 1000})
	if !reflect.DeepEqual(got, l) {
		t.Error("resize of unplaced tile should be ignored")
	}

	// Unmeasured grid.
	got = a.Apply(ctx, l, Event{Kind: EventResize, TileID: "wind", DeltaPx: 100, GridWidthPx: 0})
	if !reflect.DeepEqual(got, l) {
		t.Error("resize on unmeasured grid should be ignored")
	}
}

func TestAdapterPersists(t *testing.T) {
	a, backend := newTestAdapter(t)
	ctx := context.Background()
	l := threeTiles()

	a.Apply(ctx, l, Event{Kind: EventReorder, ActiveID: "temperature", OverID: "wind"})

	data, ok, err := backend.Get(ctx, LayoutKey)
	if err != nil || !ok {
		t.Fatalf("layout not persisted: ok=%v err=%v", ok, err)
	}
	persisted, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("persisted layout unparsable: %v", err)
	}
	if !reflect.DeepEqual(persisted.TileIDs(), []string{"humidity", "wind", "temperature"}) {
		t.Errorf("persisted = %v", persisted.TileIDs())
	}
}
