package gridio

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gridkit/gridkit/pkg/errors"
	"github.com/gridkit/gridkit/pkg/geobox"
)

// ReadJSON decodes a JSON descriptor from r into a GeoBox.
//
// The input must be a JSON object with "width", "height", and either a
// "transform" (rasterio order) or "geotransform" (GDAL order) array of six
// numbers; "crs" is optional:
//
//	{
//	  "width": 100,
//	  "height": 80,
//	  "transform": [10, 0, 1000, 0, -10, 2000],
//	  "crs": "EPSG:32633"
//	}
//
// ReadJSON returns an INVALID_FORMAT error for malformed JSON and the
// descriptor validation errors for inconsistent contents. It does not
// close r.
func ReadJSON(r io.Reader) (geobox.GeoBox, error) {
	var d Descriptor
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return geobox.GeoBox{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON descriptor")
	}
	return d.GeoBox()
}

// ReadTOML decodes a TOML descriptor from r into a GeoBox. The fields
// mirror [ReadJSON]'s.
func ReadTOML(r io.Reader) (geobox.GeoBox, error) {
	var d Descriptor
	if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
		return geobox.GeoBox{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML descriptor")
	}
	return d.GeoBox()
}

// Import reads a descriptor file at path, choosing the format by extension
// (".json" or ".toml"), and returns the decoded GeoBox.
//
// Errors carry structured codes: INVALID_PATH for unsafe paths,
// FILE_NOT_FOUND when the file does not exist, UNSUPPORTED for unknown
// extensions, and the [ReadJSON]/[ReadTOML] errors otherwise.
func Import(path string) (geobox.GeoBox, error) {
	if err := errors.ValidatePath(path); err != nil {
		return geobox.GeoBox{}, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return geobox.GeoBox{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return geobox.GeoBox{}, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".toml":
		return ReadTOML(f)
	default:
		return geobox.GeoBox{}, errors.New(errors.ErrCodeUnsupported,
			"unsupported descriptor extension %q (want .json or .toml)", filepath.Ext(path))
	}
}
