// Package catalog defines the static registry of dashboard tiles.
//
// Every tile that can appear on the dashboard is described by a
// TileDefinition: display metadata, its category, the minimum width it can
// be resized to, and whether it has a flip side showing a trend chart.
// The registry is fixed at build time; layouts reference tiles by id and
// the layout engine consults the catalog for clamping and filtering.
//
// # Usage
//
//	cat := catalog.Default()
//	def, ok := cat.Get("wind")
//	if !ok {
//	    // unknown tile id
//	}
//
//	// Tiles the user could still add, grouped for a picker UI
//	addable := cat.Addable(currentIDs, siteHasSolar)
package catalog

// Category classifies a tile for grouping in the add-tile picker.
type Category string

// Tile categories in display order.
const (
	CategoryTemperature Category = "temperature"
	CategoryAtmosphere  Category = "atmosphere"
	CategoryWind        Category = "wind"
	CategoryRain        Category = "rain"
	CategorySolar       Category = "solar"
	CategoryStatus      Category = "status"
)

// categoryOrder fixes the display order of categories in grouped listings.
var categoryOrder = []Category{
	CategoryTemperature,
	CategoryAtmosphere,
	CategoryWind,
	CategoryRain,
	CategorySolar,
	CategoryStatus,
}

// FallbackMinColSpan is the minimum span assumed for ids the catalog does
// not know. Mutators clamp against it so a stale placement can still be
// resized without crashing.
const FallbackMinColSpan = 2

// TileDefinition describes one tile type available to the dashboard.
type TileDefinition struct {
	ID         string   // unique lowercase slug
	Label      string   // display name
	Category   Category // picker grouping
	MinColSpan int      // minimum width in grid columns

	// HasFlipTile marks tiles with an alternate trend-chart view. When set,
	// Sensor, ChartLabel, and ChartUnit describe the charted series.
	HasFlipTile bool
	Sensor      string
	ChartLabel  string
	ChartUnit   string

	// RequiresSolar hides the tile from the add-tile picker on sites
	// without solar/UV sensors.
	RequiresSolar bool
}

// Catalog is a read-only lookup table of tile definitions.
type Catalog struct {
	defs  map[string]TileDefinition
	order []string // registration order
}

// New creates a catalog from the given definitions.
// Later definitions with a duplicate id silently replace earlier ones.
func New(defs ...TileDefinition) *Catalog {
	c := &Catalog{defs: make(map[string]TileDefinition, len(defs))}
	for _, d := range defs {
		if _, exists := c.defs[d.ID]; !exists {
			c.order = append(c.order, d.ID)
		}
		c.defs[d.ID] = d
	}
	return c
}

// Get returns the definition for id.
// The second return value is false for unknown ids.
func (c *Catalog) Get(id string) (TileDefinition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// Has reports whether id names a registered tile.
func (c *Catalog) Has(id string) bool {
	_, ok := c.defs[id]
	return ok
}

// MinColSpan returns the minimum span for id, or FallbackMinColSpan for
// unknown ids.
func (c *Catalog) MinColSpan(id string) int {
	if d, ok := c.defs[id]; ok {
		return d.MinColSpan
	}
	return FallbackMinColSpan
}

// All returns every definition in registration order.
func (c *Catalog) All() []TileDefinition {
	out := make([]TileDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// CategoryGroup is one category's tiles for grouped display.
type CategoryGroup struct {
	Category Category
	Tiles    []TileDefinition
}

// ListByCategory groups all definitions by category, preserving the fixed
// category display order. Empty categories are omitted.
func (c *Catalog) ListByCategory() []CategoryGroup {
	byCat := make(map[Category][]TileDefinition)
	for _, id := range c.order {
		d := c.defs[id]
		byCat[d.Category] = append(byCat[d.Category], d)
	}

	var groups []CategoryGroup
	for _, cat := range categoryOrder {
		if tiles := byCat[cat]; len(tiles) > 0 {
			groups = append(groups, CategoryGroup{Category: cat, Tiles: tiles})
		}
	}
	return groups
}

// Addable returns the definitions a user could still add to the dashboard:
// tiles not already present, and solar-gated tiles only when the site has
// solar data. Order matches registration order.
func (c *Catalog) Addable(present []string, solar bool) []TileDefinition {
	presentSet := make(map[string]bool, len(present))
	for _, id := range present {
		presentSet[id] = true
	}

	var out []TileDefinition
	for _, id := range c.order {
		d := c.defs[id]
		if presentSet[d.ID] {
			continue
		}
		if d.RequiresSolar && !solar {
			continue
		}
		out = append(out, d)
	}
	return out
}
