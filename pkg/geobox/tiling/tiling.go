// Package tiling partitions a [geobox.GeoBox] into a grid of smaller boxes
// of a fixed nominal tile shape.
//
// Tiles are computed lazily: nothing is materialized at construction, and
// each tile is derived from the source box on first lookup and memoized for
// the lifetime of the partitioner. Interior tiles have exactly the nominal
// tile shape; tiles in the last row or column are clipped to the source
// extent, so the tiles cover the source exactly with no overlap and no
// padding.
package tiling

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gridkit/gridkit/pkg/geobox"
	"github.com/gridkit/gridkit/pkg/observability"
)

// ErrIndexOutOfRange is returned by [Tiles.Tile] and [Tiles.Slices] when a
// requested tile index is negative or beyond the tile grid on either axis.
// Indices are never clamped or wrapped.
var ErrIndexOutOfRange = errors.New("tile index out of range")

// Index addresses a tile by its (row, col) position in the tile grid.
type Index struct {
	Row int
	Col int
}

// Tiles partitions a source GeoBox into sub-boxes of a nominal tile shape.
//
// The source box is never mutated. Looked-up tiles are cached without
// eviction; a cached tile is always identical to what a fresh recompute
// would produce. Tiles is safe for concurrent use.
type Tiles struct {
	source geobox.GeoBox
	tileH  int
	tileW  int
	rows   int
	cols   int

	mu    sync.Mutex
	cache map[Index]geobox.GeoBox
}

// New creates a partitioner over source with tiles of tileHeight x
// tileWidth pixels. Tile dimensions must be positive; this is a caller
// precondition and is not validated here.
//
// The tile grid shape is ceil(H/tileHeight) x ceil(W/tileWidth) and is
// fixed at construction.
func New(source geobox.GeoBox, tileHeight, tileWidth int) *Tiles {
	h, w := source.Shape()
	return &Tiles{
		source: source,
		tileH:  tileHeight,
		tileW:  tileWidth,
		rows:   ceilDiv(h, tileHeight),
		cols:   ceilDiv(w, tileWidth),
		cache:  make(map[Index]geobox.GeoBox),
	}
}

// Source returns the source box being partitioned.
func (t *Tiles) Source() geobox.GeoBox { return t.source }

// TileShape returns the nominal tile shape in (height, width) order.
func (t *Tiles) TileShape() (height, width int) { return t.tileH, t.tileW }

// Shape returns the number of tiles along the (row, col) axes.
func (t *Tiles) Shape() (rows, cols int) { return t.rows, t.cols }

// Slices returns the pixel spans covered by tile (row, col) within the
// source box. Interior tiles span exactly the nominal tile shape; boundary
// tiles are clipped to the source extent. Returns [ErrIndexOutOfRange] for
// indices outside [0, Shape()).
func (t *Tiles) Slices(row, col int) (rows, cols geobox.Span, err error) {
	srcH, srcW := t.source.Shape()
	rows, err = tileSpan(row, srcH, t.tileH)
	if err != nil {
		return geobox.Span{}, geobox.Span{}, fmt.Errorf("row %d: %w", row, err)
	}
	cols, err = tileSpan(col, srcW, t.tileW)
	if err != nil {
		return geobox.Span{}, geobox.Span{}, fmt.Errorf("col %d: %w", col, err)
	}
	return rows, cols, nil
}

// Tile returns the sub-box for tile (row, col), computing and caching it on
// first lookup. Repeated lookups of the same index return the cached value.
// Returns [ErrIndexOutOfRange] for indices outside [0, Shape()).
func (t *Tiles) Tile(row, col int) (geobox.GeoBox, error) {
	idx := Index{Row: row, Col: col}

	t.mu.Lock()
	defer t.mu.Unlock()

	if box, ok := t.cache[idx]; ok {
		observability.Tiling().OnTileHit(row, col)
		return box, nil
	}

	rows, cols, err := t.Slices(row, col)
	if err != nil {
		return geobox.GeoBox{}, err
	}

	observability.Tiling().OnTileMiss(row, col)
	box := t.source.Slice(rows, cols)
	t.cache[idx] = box
	return box, nil
}

// tileSpan computes the clipped span of tile i along one axis of extent
// size with nominal tile size tile.
func tileSpan(i, size, tile int) (geobox.Span, error) {
	start := i * tile
	if i < 0 || start >= size {
		return geobox.Span{}, ErrIndexOutOfRange
	}
	return geobox.Span{Start: start, Stop: min(start+tile, size)}, nil
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
