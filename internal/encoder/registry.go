package encoder

import (
	"fmt"
	"strings"
)

// Registry holds all available encoders, keyed by format name.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing each encoder for
// availability. PNG and JPEG are always present; WebP depends on
// cwebp being installed.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&PNGEncoder{},
		&JPEGEncoder{},
		&WebPEncoder{},
	}

	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}

	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
// "jpg" is accepted as an alias for "jpeg".
func (r *Registry) Get(format string) Encoder {
	f := strings.ToLower(format)
	if f == "jpg" {
		f = "jpeg"
	}
	return r.encoders[f]
}

// Resolve returns the encoder for the requested format or an error
// naming it, falling back to PNG when no format was requested.
func (r *Registry) Resolve(format string) (Encoder, error) {
	if format == "" {
		format = "png"
	}
	enc := r.Get(format)
	if enc == nil {
		return nil, fmt.Errorf("output format %q not available (have: %s)",
			format, strings.Join(r.Available(), ", "))
	}
	return enc, nil
}

// Available returns all available format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range []string{"png", "jpeg", "webp"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
