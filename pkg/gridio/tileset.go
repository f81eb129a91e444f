package gridio

import (
	"encoding/json"
	"io"

	"github.com/gridkit/gridkit/pkg/errors"
	"github.com/gridkit/gridkit/pkg/geobox/tiling"
)

// TileDescriptor is one tile of a partitioned grid box, addressed by its
// (row, col) index in the tile grid.
type TileDescriptor struct {
	Row int `json:"row" toml:"row"`
	Col int `json:"col" toml:"col"`
	Descriptor
}

// TileSet is the serialization of a fully enumerated tile partition.
type TileSet struct {
	TileHeight int              `json:"tile_height" toml:"tile_height"`
	TileWidth  int              `json:"tile_width" toml:"tile_width"`
	Rows       int              `json:"rows" toml:"rows"`
	Cols       int              `json:"cols" toml:"cols"`
	Tiles      []TileDescriptor `json:"tiles" toml:"tiles"`
}

// NewTileSet enumerates every tile of the partitioner in row-major order.
func NewTileSet(t *tiling.Tiles) (TileSet, error) {
	rows, cols := t.Shape()
	th, tw := t.TileShape()
	set := TileSet{
		TileHeight: th,
		TileWidth:  tw,
		Rows:       rows,
		Cols:       cols,
		Tiles:      make([]TileDescriptor, 0, rows*cols),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			box, err := t.Tile(r, c)
			if err != nil {
				return TileSet{}, errors.Wrap(errors.ErrCodeInternal, err, "tile (%d, %d)", r, c)
			}
			set.Tiles = append(set.Tiles, TileDescriptor{
				Row:        r,
				Col:        c,
				Descriptor: FromGeoBox(box),
			})
		}
	}

	return set, nil
}

// WriteTileSetJSON enumerates the partitioner's tiles and writes them as
// indented JSON to w.
func WriteTileSetJSON(t *tiling.Tiles, w io.Writer) error {
	set, err := NewTileSet(t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode tile set")
	}
	return nil
}
