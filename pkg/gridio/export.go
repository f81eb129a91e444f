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

// WriteJSON encodes a GeoBox descriptor as indented JSON and writes it to
// w. The output can be re-imported with [ReadJSON] for round-trip
// processing.
func WriteJSON(b geobox.GeoBox, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGeoBox(b)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode JSON descriptor")
	}
	return nil
}

// WriteTOML encodes a GeoBox descriptor as TOML and writes it to w.
func WriteTOML(b geobox.GeoBox, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(FromGeoBox(b)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode TOML descriptor")
	}
	return nil
}

// Export writes a GeoBox descriptor to a file at path, choosing the format
// by extension (".json" or ".toml").
func Export(b geobox.GeoBox, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}

	var write func(geobox.GeoBox, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".toml":
		write = WriteTOML
	default:
		return errors.New(errors.ErrCodeUnsupported,
			"unsupported descriptor extension %q (want .json or .toml)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return write(b, f)
}
