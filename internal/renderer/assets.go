package renderer

import (
	_ "embed"
)

// Default organization artwork baked into the binary, so a bare config still
// produces a complete document. Config may point at files on disk instead.

//go:embed assets/watermark.png
var defaultWatermark []byte

//go:embed assets/stamp.png
var defaultStamp []byte

// DefaultWatermark returns the embedded watermark artwork.
func DefaultWatermark() []byte {
	return defaultWatermark
}

// DefaultStamp returns the embedded stamp artwork.
func DefaultStamp() []byte {
	return defaultStamp
}
