package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridkit/gridkit/pkg/geobox/tiling"
	"github.com/gridkit/gridkit/pkg/gridio"
)

// tilesOpts holds the command-line flags for the tiles command.
type tilesOpts struct {
	tile   string // tile shape as "HEIGHTxWIDTH" (required)
	index  string // single tile to look up as "ROW,COL"
	output string // output file path for the tile set (stdout if empty)
}

// tilesCommand creates the tiles command for partitioning a grid box into
// a regular tile grid.
func (c *CLI) tilesCommand() *cobra.Command {
	var opts tilesOpts

	cmd := &cobra.Command{
		Use:   "tiles <descriptor>",
		Short: "Partition a grid box into tiles",
		Long: `Partition a grid box into a regular tile grid.

Without --index, prints a summary of the tile grid; with --output, writes
every tile's descriptor as a JSON tile set. With --index, prints a single
tile's geometry instead.

Tiles at the bottom and right edges are clipped to the source extent.

Examples:
  gridkit tiles scene.json --tile 256x256
  gridkit tiles scene.json --tile 256x256 -o tiles.json
  gridkit tiles scene.json --tile 256x256 --index 2,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTiles(cmd.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.tile, "tile", "", "tile shape as HEIGHTxWIDTH (required)")
	cmd.Flags().StringVar(&opts.index, "index", "", "look up a single tile as ROW,COL")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the tile set as JSON to a file")
	_ = cmd.MarkFlagRequired("tile")

	return cmd
}

// runTiles partitions the descriptor at path and prints or exports the result.
func runTiles(ctx context.Context, opts *tilesOpts, path string) error {
	logger := loggerFromContext(ctx)

	th, tw, err := parseTileShape(opts.tile)
	if err != nil {
		return err
	}

	box, err := gridio.Import(path)
	if err != nil {
		return err
	}
	tiles := tiling.New(box, th, tw)

	if opts.index != "" {
		return printTile(tiles, opts.index)
	}

	h, w := box.Shape()
	if th > h || tw > w {
		printWarning("Tile shape %dx%d exceeds the source %dx%d; edge tiles are clipped", th, tw, h, w)
	}

	rows, cols := tiles.Shape()
	printInfo("Partitioned %d × %d px into %d × %d px tiles", box.Width(), box.Height(), tw, th)
	printTileStats(rows, cols, clippedTiles(tiles))

	if opts.output == "" {
		return nil
	}

	prog := newProgress(logger)
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gridio.WriteTileSetJSON(tiles, f); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d tiles", rows*cols))
	printFile(opts.output)
	return nil
}

// printTile looks up one tile by its "ROW,COL" index and prints its geometry.
func printTile(tiles *tiling.Tiles, index string) error {
	row, col, err := parseIndex(index)
	if err != nil {
		return err
	}
	tile, err := tiles.Tile(row, col)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("tile (%d, %d)", row, col)))
	printKeyValue("Size", fmt.Sprintf("%d × %d px", tile.Width(), tile.Height()))
	printKeyValue("Transform", tile.Transform().String())

	ext := tile.Extent()
	printKeyValue("Extent", fmt.Sprintf("[%g, %g, %g, %g]",
		ext.Min[0], ext.Min[1], ext.Max[0], ext.Max[1]))
	return nil
}

// clippedTiles counts tiles smaller than the nominal tile shape.
// Only the last row and last column can be clipped.
func clippedTiles(t *tiling.Tiles) int {
	rows, cols := t.Shape()
	th, tw := t.TileShape()
	h, w := t.Source().Shape()

	fullRows, fullCols := rows, cols
	if h%th != 0 {
		fullRows--
	}
	if w%tw != 0 {
		fullCols--
	}
	return rows*cols - fullRows*fullCols
}
