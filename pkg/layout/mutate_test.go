package layout

import (
	"reflect"
	"testing"

	"github.com/mlandgraf/tiledeck/pkg/catalog"
)

// testCatalog mirrors the shape of the default catalog with known minimums.
func testCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.TileDefinition{ID: "temperature", Category: catalog.CategoryTemperature, MinColSpan: 3},
		catalog.TileDefinition{ID: "humidity", Category: catalog.CategoryAtmosphere, MinColSpan: 2},
		catalog.TileDefinition{ID: "wind", Category: catalog.CategoryWind, MinColSpan: 3},
		catalog.TileDefinition{ID: "rain", Category: catalog.CategoryRain, MinColSpan: 2},
	)
}

func threeTiles() Layout {
	return Layout{
		Version: CurrentVersion,
		Tiles: []Placement{
			{TileID: "temperature"},
			{TileID: "humidity"},
			{TileID: "wind"},
		},
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want []string
	}{
		{"first to last", 0, 2, []string{"humidity", "wind", "temperature"}},
		{"last to first", 2, 0, []string{"wind", "temperature", "humidity"}},
		{"adjacent swap", 0, 1, []string{"humidity", "temperature", "wind"}},
		{"same index", 1, 1, []string{"temperature", "humidity", "wind"}},
		{"from out of range", 3, 0, []string{"temperature", "humidity", "wind"}},
		{"to out of range", 0, 3, []string{"temperature", "humidity", "wind"}},
		{"negative from", -1, 1, []string{"temperature", "humidity", "wind"}},
		{"negative to", 1, -1, []string{"temperature", "humidity", "wind"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := threeTiles()
			got := Reorder(l, tt.from, tt.to)
			if !reflect.DeepEqual(got.TileIDs(), tt.want) {
				t.Errorf("Reorder(%d, %d) = %v, want %v", tt.from, tt.to, got.TileIDs(), tt.want)
			}
			// Input layout is never mutated.
			if !reflect.DeepEqual(l.TileIDs(), []string{"temperature", "humidity", "wind"}) {
				t.Error("Reorder mutated its input")
			}
		})
	}
}

func TestAddTile(t *testing.T) {
	cat := testCatalog()
	l := threeTiles()

	// Appends at the end without a span.
	got := AddTile(cat, l, "rain", 0)
	if !reflect.DeepEqual(got.TileIDs(), []string{"temperature", "humidity", "wind", "rain"}) {
		t.Errorf("AddTile = %v", got.TileIDs())
	}
	if got.Tiles[3].ColSpan != 0 {
		t.Errorf("ColSpan = %d, want unset", got.Tiles[3].ColSpan)
	}

	// Explicit span is recorded, clamped to the tile's bounds.
	got = AddTile(cat, l, "rain", 20)
	if got.Tiles[3].ColSpan != GridColumns {
		t.Errorf("ColSpan = %d, want %d", got.Tiles[3].ColSpan, GridColumns)
	}

	// Already present: unchanged.
	got = AddTile(cat, l, "wind", 0)
	if !reflect.DeepEqual(got, l) {
		t.Error("AddTile of present tile should be a no-op")
	}

	// Unknown id: unchanged.
	got = AddTile(cat, l, "lava", 0)
	if !reflect.DeepEqual(got, l) {
		t.Error("AddTile of unknown tile should be a no-op")
	}
}

func TestRemoveTile(t *testing.T) {
	l := threeTiles()

	got := RemoveTile(l, "humidity")
	if !reflect.DeepEqual(got.TileIDs(), []string{"temperature", "wind"}) {
		t.Errorf("RemoveTile = %v", got.TileIDs())
	}

	got = RemoveTile(l, "lava")
	if !reflect.DeepEqual(got, l) {
		t.Error("RemoveTile of absent tile should be a no-op")
	}
}

func TestSetTileSpan(t *testing.T) {
	cat := testCatalog()
	l := threeTiles()

	tests := []struct {
		name      string
		tileID    string
		requested int
		want      int
	}{
		{"within range", "humidity", 6, 6},
		{"below tile minimum", "wind", 1, 3},
		{"above grid width", "humidity", 40, GridColumns},
		{"at minimum", "temperature", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetTileSpan(cat, l, tt.tileID, tt.requested)
			idx := got.IndexOf(tt.tileID)
			if got.Tiles[idx].ColSpan != tt.want {
				t.Errorf("ColSpan = %d, want %d", got.Tiles[idx].ColSpan, tt.want)
			}
		})
	}

	// Not placed: unchanged.
	got := SetTileSpan(cat, l, "rain", 6)
	if !reflect.DeepEqual(got, l) {
		t.Error("SetTileSpan of unplaced tile should be a no-op")
	}

	// Clamp idempotence: applying the same request twice equals applying once.
	once := SetTileSpan(cat, l, "wind", 1)
	twice := SetTileSpan(cat, once, "wind", 1)
	if !reflect.DeepEqual(once, twice) {
		t.Error("SetTileSpan should be idempotent for a fixed request")
	}
}

func TestSetAllSpans(t *testing.T) {
	cat := testCatalog()
	l := threeTiles()

	// Each tile clamps against its own minimum: a shared preset of 2 leaves
	// temperature and wind at their floor of 3.
	got := SetAllSpans(cat, l, 2)
	want := map[string]int{"temperature": 3, "humidity": 2, "wind": 3}
	for id, span := range want {
		idx := got.IndexOf(id)
		if got.Tiles[idx].ColSpan != span {
			t.Errorf("%s: ColSpan = %d, want %d", id, got.Tiles[idx].ColSpan, span)
		}
	}

	// A preset above every minimum applies uniformly.
	got = SetAllSpans(cat, l, 6)
	for _, p := range got.Tiles {
		if p.ColSpan != 6 {
			t.Errorf("%s: ColSpan = %d, want 6", p.TileID, p.ColSpan)
		}
	}
}

// TestInvariantPreservation runs a mixed mutation sequence and checks the
// core invariants afterwards: unique ids, all known to the catalog, every
// resolved span within [min, GridColumns].
func TestInvariantPreservation(t *testing.T) {
	cat := catalog.Default()
	l := Default()

	l = AddTile(cat, l, "rain", 1)
	l = SetAllSpans(cat, l, 2)
	l = Reorder(l, 0, len(l.Tiles)-1)
	l = SetTileSpan(cat, l, "wind", 99)
	l = RemoveTile(l, "humidity")
	l = AddTile(cat, l, "humidity", 40)
	l = Reorder(l, 5, 2)
	l = SetAllSpans(cat, l, 100)

	seen := make(map[string]bool)
	for _, p := range l.Tiles {
		if seen[p.TileID] {
			t.Errorf("duplicate tile id %q", p.TileID)
		}
		seen[p.TileID] = true

		if !cat.Has(p.TileID) {
			t.Errorf("%s: not in catalog", p.TileID)
		}

		span := p.Span()
		min := cat.MinColSpan(p.TileID)
		if span < min || span > GridColumns {
			t.Errorf("%s: resolved span %d outside [%d, %d]", p.TileID, span, min, GridColumns)
		}
	}
}
