package cli

import (
	"strconv"
	"strings"

	"github.com/gridkit/gridkit/pkg/errors"
)

// splitShape splits a "HEIGHTxWIDTH" flag value (e.g., "256x256") into its
// integer dimensions. The separator is a lowercase 'x'.
func splitShape(s string) (height, width int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"shape must be HEIGHTxWIDTH (e.g., 256x256), got %q", s)
	}
	height, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid height %q", parts[0])
	}
	width, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid width %q", parts[1])
	}
	return height, width, nil
}

// parseShape parses a "HEIGHTxWIDTH" grid box shape. Both dimensions must
// be positive.
func parseShape(s string) (height, width int, err error) {
	height, width, err = splitShape(s)
	if err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateShape(width, height); err != nil {
		return 0, 0, err
	}
	return height, width, nil
}

// parseTileShape parses a "HEIGHTxWIDTH" tile shape. Both dimensions must
// be positive.
func parseTileShape(s string) (height, width int, err error) {
	height, width, err = splitShape(s)
	if err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateTileShape(height, width); err != nil {
		return 0, 0, err
	}
	return height, width, nil
}

// parseIndex parses a "ROW,COL" flag value (e.g., "2,3").
// Indices may be any integers; range checking is left to the tile lookup.
func parseIndex(s string) (row, col int, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"index must be ROW,COL (e.g., 2,3), got %q", s)
	}
	row, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid row %q", parts[0])
	}
	col, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid col %q", parts[1])
	}
	return row, col, nil
}

// parseOffset parses a "TX,TY" flag value with float components (e.g., "10.5,-3").
func parseOffset(s string) (tx, ty float64, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"offset must be TX,TY (e.g., 10.5,-3), got %q", s)
	}
	tx, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid x offset %q", parts[0])
	}
	ty, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid y offset %q", parts[1])
	}
	return tx, ty, nil
}

// parsePad parses a "PX,PY" flag value with non-negative integer components.
func parsePad(s string) (padx, pady int, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"padding must be PX,PY (e.g., 8,16), got %q", s)
	}
	padx, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid x padding %q", parts[0])
	}
	pady, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid y padding %q", parts[1])
	}
	if padx < 0 || pady < 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "padding must be non-negative, got %q", s)
	}
	return padx, pady, nil
}
