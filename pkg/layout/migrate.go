package layout

import "math"

// Schema history:
//
//	v1: the grid was 2-4 total columns, user-configurable through a separate
//	    stored setting. Placements recorded spans in those units.
//	v2: fixed 12-column grid; the column-count setting is gone.
//
// Migrations form an explicit table keyed by source version. Each entry is
// a pure function from the old layout to the next version's layout; the
// Store chains entries until the layout reaches CurrentVersion and persists
// the result immediately, so migration runs at most once per document.

// Legacy column-count bounds for the v1 schema.
const (
	legacyColumnsMin     = 2
	legacyColumnsMax     = 4
	legacyColumnsDefault = 3
)

// migrationInput carries the out-of-band state a migration step needs.
// Today that is only the v1 column-count setting, read (and then deleted)
// by the Store from its secondary storage key.
type migrationInput struct {
	// LegacyColumns is the v1 total column count, already defaulted by the
	// caller when absent. Out-of-range values fall back to the default here.
	LegacyColumns int
}

// migrateFunc rewrites a layout from one schema version to the next.
type migrateFunc func(Layout, migrationInput) Layout

// migrations maps a recognized older version to its migration step.
// Versions not present here (and not current) are discarded to the default.
var migrations = map[int]migrateFunc{
	1: migrateV1,
}

// Migratable reports whether version is an older schema version the engine
// knows how to migrate.
func Migratable(version int) bool {
	_, ok := migrations[version]
	return ok
}

// migrateV1 rescales v1 spans onto the 12-column grid.
// factor = round(GridColumns / legacyColumns); explicit spans scale by the
// factor and cap at the grid width, unset spans stay unset and resolve via
// the default. The per-tile minimums apply on the next mutation.
func migrateV1(l Layout, in migrationInput) Layout {
	cols := in.LegacyColumns
	if cols < legacyColumnsMin || cols > legacyColumnsMax {
		cols = legacyColumnsDefault
	}
	factor := int(math.Round(float64(GridColumns) / float64(cols)))

	out := l.Clone()
	for i := range out.Tiles {
		if span := out.Tiles[i].ColSpan; span > 0 {
			scaled := span * factor
			if scaled > GridColumns {
				scaled = GridColumns
			}
			out.Tiles[i].ColSpan = scaled
		}
	}
	out.Version = 2
	return out
}
