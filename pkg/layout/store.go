package layout

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/mlandgraf/tiledeck/pkg/catalog"
	"github.com/mlandgraf/tiledeck/pkg/errors"
	"github.com/mlandgraf/tiledeck/pkg/observability"
	"github.com/mlandgraf/tiledeck/pkg/store"
)

// Store owns the load/migrate/save lifecycle of the persisted layout.
//
// Every failure mode is recovered locally: unreadable or unparsable
// documents, unrecognized schema versions, and placements referencing
// unknown tiles all converge to some valid layout (worst case the built-in
// default), and failed writes are dropped with the in-memory state intact.
// Nothing in this type surfaces an error to the caller.
//
// Load, Save, and Reset serialize under a mutex so the store stays correct
// when the engine is embedded in a multi-threaded host; the dashboard
// itself drives it from a single event loop.
type Store struct {
	mu      sync.Mutex
	backend store.Store
	catalog *catalog.Catalog
	logger  *log.Logger
}

// NewStore creates a layout store over the given backend.
// A nil logger discards log output.
func NewStore(backend store.Store, cat *catalog.Catalog, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{backend: backend, catalog: cat, logger: logger}
}

// Load produces the authoritative current layout. It never fails: read
// errors, parse errors, and unrecognized schema versions all fall back to
// the built-in default. Recognized older versions are migrated and the
// migrated document is persisted immediately, so subsequent loads see only
// the current schema.
func (s *Store) Load(ctx context.Context) Layout {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.backend.Get(ctx, LayoutKey)
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStorageRead, err, "read layout")
		s.logger.Warn("Layout unreadable, using default", "err", werr)
		return s.fallback(ctx)
	}
	if !ok {
		s.logger.Debug("No stored layout, using default")
		observability.Storage().OnMiss(ctx, LayoutKey)
		return s.fallback(ctx)
	}
	observability.Storage().OnHit(ctx, LayoutKey)

	l, err := Unmarshal(data)
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStorageRead, err, "parse layout")
		s.logger.Warn("Layout unparsable, using default", "err", werr)
		return s.fallback(ctx)
	}

	switch {
	case l.Version == CurrentVersion:
		l = s.validate(l)
		observability.Layout().OnLoad(ctx, len(l.Tiles), false)
		return l

	case Migratable(l.Version):
		migrated := s.migrate(ctx, l)
		migrated = s.validate(migrated)
		s.save(ctx, migrated)
		observability.Layout().OnLoad(ctx, len(migrated.Tiles), false)
		return migrated

	default:
		serr := errors.New(errors.ErrCodeSchemaVersion, "unrecognized layout version %d", l.Version)
		s.logger.Warn("Discarding stored layout", "err", serr)
		return s.fallback(ctx)
	}
}

// fallback substitutes the default layout for an unusable document.
func (s *Store) fallback(ctx context.Context) Layout {
	l := Default()
	observability.Layout().OnLoad(ctx, len(l.Tiles), true)
	return l
}

// Save persists the layout. Write errors are swallowed: the in-memory
// state stands, the arrangement just may not survive a restart.
func (s *Store) Save(ctx context.Context, l Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(ctx, l)
}

// Reset discards the persisted arrangement, persists the default layout,
// and returns it.
func (s *Store) Reset(ctx context.Context) Layout {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := Default()
	s.save(ctx, l)
	return l
}

// save persists without locking; callers hold s.mu.
func (s *Store) save(ctx context.Context, l Layout) {
	data, err := l.Marshal()
	if err != nil {
		s.logger.Warn("Layout not serializable, write dropped", "err", err)
		observability.Layout().OnSave(ctx, len(l.Tiles), err)
		return
	}
	err = s.backend.Set(ctx, LayoutKey, data)
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStorageWrite, err, "write layout")
		s.logger.Warn("Layout write dropped", "err", werr)
	} else {
		observability.Storage().OnWrite(ctx, LayoutKey, len(data))
	}
	observability.Layout().OnSave(ctx, len(l.Tiles), err)
}

// validate drops placements referencing tiles absent from the catalog and
// clamps explicit spans. A layout left with zero placements falls back to
// the default; an empty dashboard is never authoritative.
func (s *Store) validate(l Layout) Layout {
	out := Layout{Version: l.Version}
	for _, p := range l.Tiles {
		if !s.catalog.Has(p.TileID) {
			uerr := errors.New(errors.ErrCodeUnknownTile, "dropping placement %q", p.TileID)
			s.logger.Debug("Unknown tile in stored layout", "err", uerr)
			continue
		}
		if out.Has(p.TileID) {
			s.logger.Debug("Dropping duplicate placement", "tile", p.TileID)
			continue
		}
		if p.ColSpan > 0 {
			p.ColSpan = clampSpan(s.catalog, p.TileID, p.ColSpan)
		}
		out.Tiles = append(out.Tiles, p)
	}

	if len(out.Tiles) == 0 {
		s.logger.Debug("Stored layout empty after validation, using default")
		return Default()
	}
	return out
}

// migrate chains migration steps until the layout reaches CurrentVersion,
// then removes the legacy column-count key. Migration is one-shot: the
// persisted result carries the current version, so it is never re-entered.
func (s *Store) migrate(ctx context.Context, l Layout) Layout {
	in := migrationInput{LegacyColumns: s.legacyColumns(ctx)}

	for l.Version != CurrentVersion {
		step, ok := migrations[l.Version]
		if !ok {
			s.logger.Warn("No migration path, using default", "version", l.Version)
			return Default()
		}
		from := l.Version
		l = step(l, in)
		s.logger.Info("Migrated layout schema", "from", from, "to", l.Version)
		observability.Layout().OnMigrate(ctx, from, l.Version)
	}

	if err := s.backend.Delete(ctx, LegacyColumnsKey); err != nil {
		s.logger.Debug("Legacy columns key not removed", "err", err)
	}
	return l
}

// legacyColumns reads the v1 column-count setting: a plain integer under
// the secondary storage key. Absent, unreadable, or out-of-range values
// default to 3.
func (s *Store) legacyColumns(ctx context.Context) int {
	data, ok, err := s.backend.Get(ctx, LegacyColumnsKey)
	if err != nil || !ok {
		return legacyColumnsDefault
	}
	cols, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || cols < legacyColumnsMin || cols > legacyColumnsMax {
		return legacyColumnsDefault
	}
	return cols
}
