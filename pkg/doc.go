// Package pkg provides the core libraries for gridkit grid-box geometry.
//
// # Overview
//
// A grid box describes a georeferenced raster grid without its pixel data:
// a pixel shape, an affine pixel-to-world transform, and a CRS. The pkg
// directory is organized into five main areas:
//
//  1. [affine] - 2D affine transforms (composition, inversion, GDAL interop)
//  2. [geobox] - The grid box value type and its world geometry
//  3. [geobox/transform] - Pure geometric operations on grid boxes
//  4. [geobox/tiling] - Lazy partitioning of a grid box into tiles
//  5. [gridio] - Descriptor import/export (JSON, TOML)
//
// # Architecture
//
// The typical data flow through gridkit:
//
//	Descriptor file (JSON/TOML)
//	         ↓
//	    [gridio] package (decode + validate)
//	         ↓
//	    [geobox] package (grid box value + world geometry)
//	         ↓
//	    [geobox/transform] / [geobox/tiling] (derive new boxes)
//	         ↓
//	    Descriptor file or HTTP JSON output
//
// # Quick Start
//
// Load a descriptor, pad it, and partition it into tiles:
//
//	import (
//	    "github.com/gridkit/gridkit/pkg/geobox/tiling"
//	    "github.com/gridkit/gridkit/pkg/geobox/transform"
//	    "github.com/gridkit/gridkit/pkg/gridio"
//	)
//
//	box, err := gridio.Import("scene.json")
//	if err != nil {
//	    return err
//	}
//	padded := transform.Pad(box, 16)
//	tiles := tiling.New(padded, 256, 256)
//	tile, err := tiles.Tile(0, 0)
//
// Supporting packages: [errors] for structured error codes, [observability]
// for pluggable instrumentation hooks, and [buildinfo] for version metadata.
package pkg
