package layout

import (
	"math"

	"github.com/mlandgraf/tiledeck/pkg/catalog"
)

// UnmeasuredPixelWidth is the sentinel width reported before the grid has
// been measured (gridWidthPx <= 0). It is large enough that no tile ever
// reads as compact solely because layout hasn't happened yet.
const UnmeasuredPixelWidth = math.MaxFloat64

// Geometry computes concrete per-tile dimensions for a measured viewport.
// The zero value is not useful; use DefaultGeometry or fill in both fields.
type Geometry struct {
	// GapPx is the gutter between grid columns, in pixels.
	GapPx float64

	// CompactThresholdPx is the pixel width below which a tile renders its
	// compact variant on non-mobile viewports.
	CompactThresholdPx float64
}

// DefaultGeometry returns the standard grid metrics.
func DefaultGeometry() Geometry {
	return Geometry{GapPx: 16, CompactThresholdPx: 380}
}

// EffectiveSpan resolves a placement's span for the given device class.
// On mobile every tile is forced to MobileColSpan, raised to the tile's own
// minimum when that is larger. On desktop the resolved span is capped at
// the grid width; the per-tile minimum is enforced by the mutators, so a
// span below it can only come from an unclamped legacy document and is
// left to render narrow rather than silently rewritten here.
func EffectiveSpan(cat *catalog.Catalog, p Placement, mobile bool) int {
	if mobile {
		span := MobileColSpan
		if min := cat.MinColSpan(p.TileID); min > span {
			span = min
		}
		return span
	}

	span := p.Span()
	if span > GridColumns {
		span = GridColumns
	}
	return span
}

// TilePixelWidth returns the pixel width of a tile spanning span columns in
// a grid measured at gridWidthPx. An unmeasured grid yields the sentinel.
func (g Geometry) TilePixelWidth(span int, gridWidthPx float64) float64 {
	if gridWidthPx <= 0 {
		return UnmeasuredPixelWidth
	}
	cellWidth := (gridWidthPx - float64(GridColumns-1)*g.GapPx) / GridColumns
	return float64(span)*cellWidth + float64(span-1)*g.GapPx
}

// SpanForWidth inverts TilePixelWidth: the span whose rendered width is
// closest to pixelWidth. Used to translate resize-drag deltas into span
// candidates; the result is a raw candidate, clamping is SetTileSpan's job.
// An unmeasured grid yields 0 (callers treat that as "no candidate").
func (g Geometry) SpanForWidth(pixelWidth, gridWidthPx float64) int {
	if gridWidthPx <= 0 {
		return 0
	}
	cellWidth := (gridWidthPx - float64(GridColumns-1)*g.GapPx) / GridColumns
	if cellWidth+g.GapPx <= 0 {
		return 0
	}
	return int(math.Round((pixelWidth + g.GapPx) / (cellWidth + g.GapPx)))
}

// Compact reports whether a tile of the given pixel width renders its
// compact variant. Mobile is always compact regardless of width.
func (g Geometry) Compact(pixelWidth float64, mobile bool) bool {
	return mobile || pixelWidth < g.CompactThresholdPx
}

// ResolvedTile is the geometry handed to the tile-rendering layer: the
// placement resolved against the catalog and the measured viewport.
type ResolvedTile struct {
	TileID     string
	Def        catalog.TileDefinition
	Span       int
	PixelWidth float64
	Compact    bool
}

// Resolve computes the final geometry for every placement in display order.
// Placements referencing unknown tiles are skipped; the Store strips them
// on load, so a skip here only covers catalogs shrinking mid-session.
func (g Geometry) Resolve(cat *catalog.Catalog, l Layout, gridWidthPx float64, mobile bool) []ResolvedTile {
	out := make([]ResolvedTile, 0, len(l.Tiles))
	for _, p := range l.Tiles {
		def, ok := cat.Get(p.TileID)
		if !ok {
			continue
		}

		span := EffectiveSpan(cat, p, mobile)
		width := g.TilePixelWidth(span, gridWidthPx)
		out = append(out, ResolvedTile{
			TileID:     p.TileID,
			Def:        def,
			Span:       span,
			PixelWidth: width,
			Compact:    g.Compact(width, mobile),
		})
	}
	return out
}
