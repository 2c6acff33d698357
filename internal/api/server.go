// Package api exposes the layout engine's collaborator interfaces over HTTP.
//
// The surface is read-only: remote displays and tile renderers fetch the
// stored layout, resolved geometry for their own viewport, and the tile
// catalog. Mutations stay local to the interactive dashboard; there is no
// server-side editing or sync.
//
// # Endpoints
//
//	GET /healthz                  liveness probe
//	GET /api/layout               the stored layout document
//	GET /api/layout/resolved      per-tile geometry; query: width, mobile
//	GET /api/tiles                the catalog grouped by category
//	GET /api/tiles/addable        tiles still addable to the current layout
//	GET /api/tiles/{id}           one tile definition; 400 on malformed ids
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mlandgraf/tiledeck/pkg/catalog"
	"github.com/mlandgraf/tiledeck/pkg/errors"
	"github.com/mlandgraf/tiledeck/pkg/layout"
)

// Server serves the read-only layout API.
type Server struct {
	router  chi.Router
	store   *layout.Store
	catalog *catalog.Catalog
	geom    layout.Geometry
	solar   bool
	logger  *log.Logger
}

// New creates a server over the given store and catalog.
func New(st *layout.Store, cat *catalog.Catalog, geom layout.Geometry, solar bool, logger *log.Logger) *Server {
	s := &Server{
		store:   st,
		catalog: cat,
		geom:    geom,
		solar:   solar,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/layout", s.handleLayout)
		r.Get("/layout/resolved", s.handleResolved)
		r.Get("/tiles", s.handleTiles)
		r.Get("/tiles/addable", s.handleAddable)
		r.Get("/tiles/{id}", s.handleTile)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLayout returns the stored layout document.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	l := s.store.Load(r.Context())
	writeJSON(w, http.StatusOK, l)
}

// resolvedTile is the wire form of a resolved placement.
type resolvedTile struct {
	TileID      string  `json:"tileId"`
	Label       string  `json:"label"`
	Category    string  `json:"category"`
	Span        int     `json:"span"`
	PixelWidth  float64 `json:"pixelWidth,omitempty"`
	Compact     bool    `json:"compact"`
	HasFlipTile bool    `json:"hasFlipTile"`
	Sensor      string  `json:"sensor,omitempty"`
	ChartLabel  string  `json:"chartLabel,omitempty"`
	ChartUnit   string  `json:"chartUnit,omitempty"`
}

// handleResolved computes geometry for the caller's viewport.
// Query parameters: width (grid width in pixels, 0 if unmeasured) and
// mobile (truthy for narrow form factors).
func (s *Server) handleResolved(w http.ResponseWriter, r *http.Request) {
	width, err := strconv.ParseFloat(r.URL.Query().Get("width"), 64)
	if err != nil {
		width = 0
	}
	mobile, _ := strconv.ParseBool(r.URL.Query().Get("mobile"))

	l := s.store.Load(r.Context())
	resolved := s.geom.Resolve(s.catalog, l, width, mobile)

	out := make([]resolvedTile, len(resolved))
	for i, rt := range resolved {
		out[i] = resolvedTile{
			TileID:      rt.TileID,
			Label:       rt.Def.Label,
			Category:    string(rt.Def.Category),
			Span:        rt.Span,
			Compact:     rt.Compact,
			HasFlipTile: rt.Def.HasFlipTile,
			Sensor:      rt.Def.Sensor,
			ChartLabel:  rt.Def.ChartLabel,
			ChartUnit:   rt.Def.ChartUnit,
		}
		// The sentinel is not representable in JSON; omit instead.
		if rt.PixelWidth != layout.UnmeasuredPixelWidth {
			out[i].PixelWidth = rt.PixelWidth
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// tileGroup is the wire form of one catalog category.
type tileGroup struct {
	Category string        `json:"category"`
	Tiles    []resolvedDef `json:"tiles"`
}

type resolvedDef struct {
	TileID        string `json:"tileId"`
	Label         string `json:"label"`
	MinColSpan    int    `json:"minColSpan"`
	HasFlipTile   bool   `json:"hasFlipTile"`
	RequiresSolar bool   `json:"requiresSolar,omitempty"`
}

// handleTiles returns the whole catalog grouped by category.
func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	groups := s.catalog.ListByCategory()
	out := make([]tileGroup, len(groups))
	for i, g := range groups {
		tg := tileGroup{Category: string(g.Category)}
		for _, d := range g.Tiles {
			tg.Tiles = append(tg.Tiles, defToWire(d))
		}
		out[i] = tg
	}
	writeJSON(w, http.StatusOK, out)
}

// handleAddable returns the tiles still addable to the current layout,
// honoring the site's solar availability.
func (s *Server) handleAddable(w http.ResponseWriter, r *http.Request) {
	l := s.store.Load(r.Context())
	addable := s.catalog.Addable(l.TileIDs(), s.solar)

	out := make([]resolvedDef, 0, len(addable))
	for _, d := range addable {
		out = append(out, defToWire(d))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleTile returns a single tile definition. Identifiers land here
// straight from the URL, so they are validated and rejected rather than
// silently filtered the way persisted documents are.
func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateTileID(id); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": errors.UserMessage(err)})
		return
	}

	def, ok := s.catalog.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown tile " + id})
		return
	}
	writeJSON(w, http.StatusOK, defToWire(def))
}

func defToWire(d catalog.TileDefinition) resolvedDef {
	return resolvedDef{
		TileID:        d.ID,
		Label:         d.Label,
		MinColSpan:    d.MinColSpan,
		HasFlipTile:   d.HasFlipTile,
		RequiresSolar: d.RequiresSolar,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
