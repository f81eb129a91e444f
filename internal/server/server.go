// Package server implements the read-only tile-metadata HTTP API behind
// "gridkit serve".
//
// The server exposes the geometry of one grid box and its tile partition;
// it never touches raster pixel data. All responses are JSON.
//
// # Routes
//
//	GET /box               descriptor, resolution, and world extent
//	GET /tiles             tile grid summary (shape, nominal tile size)
//	GET /tiles/{row}/{col} one tile's descriptor and extent
//
// Out-of-range tile indices map to 404, malformed indices to 400.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/paulmach/orb"

	"github.com/gridkit/gridkit/pkg/errors"
	"github.com/gridkit/gridkit/pkg/geobox"
	"github.com/gridkit/gridkit/pkg/geobox/tiling"
	"github.com/gridkit/gridkit/pkg/gridio"
	"github.com/gridkit/gridkit/pkg/observability"
)

// Server serves the geometry of a single grid box and its tile partition.
type Server struct {
	box    geobox.GeoBox
	tiles  *tiling.Tiles
	logger *log.Logger
}

// New creates a server for box partitioned into tileHeight x tileWidth
// tiles. The logger may be nil, in which case the default logger is used.
func New(box geobox.GeoBox, tileHeight, tileWidth int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		box:    box,
		tiles:  tiling.New(box, tileHeight, tileWidth),
		logger: logger,
	}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.observe)
	r.Get("/box", s.handleBox)
	r.Get("/tiles", s.handleTiles)
	r.Get("/tiles/{row}/{col}", s.handleTile)
	return r
}

// =============================================================================
// Response Types
// =============================================================================

// extentResponse is the axis-aligned world bounding box of a grid box.
type extentResponse struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

func newExtent(b orb.Bound) extentResponse {
	return extentResponse{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}
}

// boxResponse describes the source grid box.
type boxResponse struct {
	gridio.Descriptor
	XRes   float64        `json:"x_resolution"`
	YRes   float64        `json:"y_resolution"`
	Extent extentResponse `json:"extent"`
}

// tilesResponse summarizes the tile grid.
type tilesResponse struct {
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
	TileHeight int `json:"tile_height"`
	TileWidth  int `json:"tile_width"`
}

// tileResponse describes one tile.
type tileResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
	gridio.Descriptor
	Extent extentResponse `json:"extent"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleBox(w http.ResponseWriter, r *http.Request) {
	xres, yres := s.box.Resolution()
	s.writeJSON(w, http.StatusOK, boxResponse{
		Descriptor: gridio.FromGeoBox(s.box),
		XRes:       xres,
		YRes:       yres,
		Extent:     newExtent(s.box.Extent()),
	})
}

func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	rows, cols := s.tiles.Shape()
	th, tw := s.tiles.TileShape()
	s.writeJSON(w, http.StatusOK, tilesResponse{
		Rows:       rows,
		Cols:       cols,
		TileHeight: th,
		TileWidth:  tw,
	})
}

func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	row, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidInput, "row must be an integer"))
		return
	}
	col, err := strconv.Atoi(chi.URLParam(r, "col"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidInput, "col must be an integer"))
		return
	}

	tile, err := s.tiles.Tile(row, col)
	if err != nil {
		rows, cols := s.tiles.Shape()
		s.writeError(w, http.StatusNotFound,
			errors.Wrap(errors.ErrCodeIndexOutOfRange, err,
				"tile (%d, %d) outside grid %dx%d", row, col, rows, cols))
		return
	}

	s.writeJSON(w, http.StatusOK, tileResponse{
		Row:        row,
		Col:        col,
		Descriptor: gridio.FromGeoBox(tile),
		Extent:     newExtent(tile.Extent()),
	})
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err *errors.Error) {
	var resp errorResponse
	resp.Error.Code = err.Code
	resp.Error.Message = err.Message
	s.writeJSON(w, status, resp)
}

// statusRecorder captures the response status for logging middleware.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// observe logs each request and emits server observability hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, elapsed)
		s.logger.Debugf("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, elapsed.Round(time.Microsecond))
	})
}
