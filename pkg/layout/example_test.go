package layout_test

import (
	"fmt"

	"github.com/mlandgraf/tiledeck/pkg/catalog"
	"github.com/mlandgraf/tiledeck/pkg/layout"
)

func ExampleReorder() {
	l := layout.Layout{
		Version: layout.CurrentVersion,
		Tiles: []layout.Placement{
			{TileID: "temperature"},
			{TileID: "humidity"},
			{TileID: "wind"},
		},
	}

	// Move the first tile to the end.
	l = layout.Reorder(l, 0, 2)
	fmt.Println(l.TileIDs())
	// Output:
	// [humidity wind temperature]
}

func ExampleSetAllSpans() {
	cat := catalog.Default()
	l := layout.Default()

	// A uniform preset of 2 still honors per-tile minimums: chart-bearing
	// tiles with a minimum of 3 stay wider than the preset.
	l = layout.SetAllSpans(cat, l, 2)
	for _, p := range l.Tiles {
		fmt.Printf("%s: %d\n", p.TileID, p.ColSpan)
	}
	// Output:
	// temperature: 3
	// humidity: 2
	// wind: 3
	// pressure: 3
	// rain: 3
	// station-status: 2
}

func ExampleGeometry_Resolve() {
	cat := catalog.Default()
	g := layout.DefaultGeometry()

	l := layout.Layout{
		Version: layout.CurrentVersion,
		Tiles: []layout.Placement{
			{TileID: "temperature", ColSpan: 6},
			{TileID: "battery", ColSpan: 2},
		},
	}

	// 12 columns of 100px plus 11 gaps of 16px.
	for _, rt := range g.Resolve(cat, l, 12*100+11*16, false) {
		fmt.Printf("%s: span %d, %.0fpx, compact=%v\n", rt.TileID, rt.Span, rt.PixelWidth, rt.Compact)
	}
	// Output:
	// temperature: span 6, 680px, compact=false
	// battery: span 2, 216px, compact=true
}
