package glitch

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// fillColor is the sentinel written into canvas regions exposed by
// rotation: opaque black, matching the border the effect is known for.
var fillColor = color.NRGBA{0, 0, 0, 255}

// Transform records the geometry of a forward rotation so the edge
// compositor can invert it later without redoing any trigonometry.
// The zero angle and the other multiples of 90 degrees are exact pixel
// remaps; everything else goes through imaging.Rotate, which expands
// the canvas and resamples with bilinear interpolation (the smoother
// choice, which matters for edge feathering).
type Transform struct {
	srcW, srcH int
	rotW, rotH int
	angle      float64
}

// rotateForward rotates src counter-clockwise about its center onto an
// expanded canvas and returns the transform needed to undo it.
func rotateForward(src *image.NRGBA, angle float64) (*image.NRGBA, Transform, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, Transform{}, &BufferError{Stage: "rotate", Reason: "zero-area input buffer"}
	}

	var rot *image.NRGBA
	switch angle {
	case 0:
		rot = imaging.Clone(src)
	case 90:
		rot = imaging.Rotate90(src)
	case 180:
		rot = imaging.Rotate180(src)
	case 270:
		rot = imaging.Rotate270(src)
	default:
		rot = imaging.Rotate(src, angle, fillColor)
	}

	rb := rot.Bounds()
	tr := Transform{
		srcW: b.Dx(), srcH: b.Dy(),
		rotW: rb.Dx(), rotH: rb.Dy(),
		angle: angle,
	}
	return rot, tr, nil
}

// invert maps the rotated canvas back to a buffer of the original
// dimensions. For off-axis angles the round trip leaves black wedges
// near the border; handling those is the edge compositor's job.
func (t Transform) invert(rot *image.NRGBA) (*image.NRGBA, error) {
	rb := rot.Bounds()
	if rb.Dx() != t.rotW || rb.Dy() != t.rotH {
		return nil, &BufferError{
			Stage:  "compose",
			Reason: fmt.Sprintf("buffer is %dx%d, transform expects %dx%d", rb.Dx(), rb.Dy(), t.rotW, t.rotH),
		}
	}

	switch t.angle {
	case 0:
		return rot, nil
	case 90:
		return imaging.Rotate270(rot), nil
	case 180:
		return imaging.Rotate180(rot), nil
	case 270:
		return imaging.Rotate90(rot), nil
	}

	back := imaging.Rotate(rot, -t.angle, fillColor)
	out := imaging.CropCenter(back, t.srcW, t.srcH)
	ob := out.Bounds()
	if ob.Dx() != t.srcW || ob.Dy() != t.srcH {
		return nil, &BufferError{
			Stage:  "compose",
			Reason: fmt.Sprintf("inverse rotation produced %dx%d, want %dx%d", ob.Dx(), ob.Dy(), t.srcW, t.srcH),
		}
	}
	return out, nil
}
