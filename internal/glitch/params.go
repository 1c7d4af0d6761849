package glitch

import (
	"fmt"
	"math"
)

// Params holds the configuration for one glitch run. A Params value is
// validated once up front and treated as read-only by every stage.
type Params struct {
	// Angle rotates the sorting direction, in degrees. 0 sorts columns
	// (vertical), 90 sorts rows (horizontal). Normalized to [0,360).
	Angle float64
	// Blocks is the number of bands each sorting line is split into.
	Blocks int
	// Intensity scales the random misalignment of band boundaries
	// between adjacent lines. May be negative, but never below
	// 3 - Blocks.
	Intensity int
	// Dither perturbs the brightness key per pixel, trading the blocky
	// look for a noisier one.
	Dither bool
	// FuzzyEdges feathers the rotation border instead of hard-cropping.
	FuzzyEdges bool
	// ResizeFactor divides the output area; each dimension shrinks by
	// sqrt(ResizeFactor). 0 or 1 means no resize.
	ResizeFactor float64
	// Count is the number of independent variants to generate.
	Count int
}

// DefaultParams mirrors the tool's historical defaults.
func DefaultParams() Params {
	return Params{
		Blocks: 9,
		Count:  1,
	}
}

// ConfigError reports a parameter outside its valid domain. It is
// raised before any pixel processing begins and is fatal for the whole
// invocation.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// BufferError reports a pixel buffer that a stage cannot operate on,
// such as a zero-area input or a resize that would produce nothing.
type BufferError struct {
	Stage  string
	Reason string
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Reason)
}

// NormalizeAngle maps any angle in degrees into [0,360).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Validate normalizes the angle and checks every parameter, failing
// fast on the first violation. No buffers are allocated before this
// passes.
func (p *Params) Validate() error {
	p.Angle = NormalizeAngle(p.Angle)
	if p.Blocks < 1 {
		return &ConfigError{Param: "blocks", Reason: fmt.Sprintf("must be >= 1, got %d", p.Blocks)}
	}
	if floor := 3 - p.Blocks; p.Intensity < floor {
		return &ConfigError{
			Param:  "intensity",
			Reason: fmt.Sprintf("must be >= %d (3 - blocks), got %d", floor, p.Intensity),
		}
	}
	if p.ResizeFactor < 0 {
		return &ConfigError{Param: "resize", Reason: fmt.Sprintf("factor must be positive, got %g", p.ResizeFactor)}
	}
	if p.Count < 1 {
		return &ConfigError{Param: "count", Reason: fmt.Sprintf("must be >= 1, got %d", p.Count)}
	}
	return nil
}

// axisAligned reports whether the angle is an exact multiple of 90
// degrees. Those rotations remap pixels without resampling and leave
// no empty border.
func axisAligned(angle float64) bool {
	return math.Mod(angle, 90) == 0
}
