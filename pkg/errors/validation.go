package errors

import (
	"math"
	"unicode"
)

// ValidateShape validates a pixel shape (width, height) for a grid box.
// Both dimensions must be positive. The core geometry packages treat this
// as a caller precondition; the CLI and descriptor decoding call it at the
// boundary so malformed inputs fail early with a clear code.
func ValidateShape(width, height int) error {
	if width <= 0 {
		return New(ErrCodeInvalidShape, "width must be positive, got %d", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidShape, "height must be positive, got %d", height)
	}
	return nil
}

// ValidateTileShape validates a tile shape (height, width) for a
// partitioner. Both dimensions must be positive.
func ValidateTileShape(tileHeight, tileWidth int) error {
	if tileHeight <= 0 {
		return New(ErrCodeInvalidShape, "tile height must be positive, got %d", tileHeight)
	}
	if tileWidth <= 0 {
		return New(ErrCodeInvalidShape, "tile width must be positive, got %d", tileWidth)
	}
	return nil
}

// ValidateTransform validates the six affine coefficients of a
// pixel-to-world transform.
//
// The validation is intentionally light: coefficients must be finite
// (no NaN or Inf). Invertibility is not checked here — degenerate
// transforms are a documented caller responsibility.
func ValidateTransform(coeffs [6]float64) error {
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return New(ErrCodeInvalidTransform, "transform coefficient %d is not finite: %v", i, c)
		}
	}
	return nil
}

// ValidateCRS validates a coordinate reference system tag.
//
// The tag is opaque to gridkit, so only basic hygiene is enforced: an empty
// tag is allowed (undefined CRS), but a non-empty tag must not contain
// control characters or be unreasonably long.
func ValidateCRS(crs string) error {
	if crs == "" {
		return nil
	}
	if len(crs) > 256 {
		return New(ErrCodeInvalidInput, "CRS tag too long (max 256 characters)")
	}
	for _, r := range crs {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "CRS tag contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates a descriptor file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
