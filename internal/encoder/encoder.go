package encoder

import (
	"image"
)

// Encoder encodes a finished glitch buffer to a specific format.
type Encoder interface {
	// Format returns the output format name ("png", "jpeg", "webp").
	Format() string

	// Encode converts the image to bytes at the given quality (1-100).
	// Lossless formats ignore quality.
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}
