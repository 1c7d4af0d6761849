package glitch

import (
	"image"
	"math"
)

// compose restores the original orientation and dimensions. With
// FuzzyEdges the rotation border fades into the fill color over a
// feather band instead of cutting off hard; axis-aligned rotations
// have no border, so there is nothing to feather.
func compose(rot *image.NRGBA, tr Transform, fuzzy bool, blocks int) (*image.NRGBA, error) {
	out, err := tr.invert(rot)
	if err != nil {
		return nil, err
	}
	if fuzzy && !axisAligned(tr.angle) {
		featherEdges(out, blocks, tr.angle)
	}
	return out, nil
}

// featherEdges darkens a border band toward the black fill with a
// smoothstep ramp. The band width follows the original crop geometry:
// a block's worth of pixels scaled by the dominant trig component of
// the rotation angle.
func featherEdges(img *image.NRGBA, blocks int, angle float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	rad := angle * math.Pi / 180
	trig := math.Max(math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad)))
	longest := w
	if h > longest {
		longest = h
	}
	band := int(float64(longest) / float64(blocks) * trig)
	if band < 1 {
		band = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := x
			if y < d {
				d = y
			}
			if r := w - 1 - x; r < d {
				d = r
			}
			if r := h - 1 - y; r < d {
				d = r
			}
			if d >= band {
				continue
			}
			t := smoothstep(float64(d) / float64(band))
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			img.Pix[i] = uint8(float64(img.Pix[i]) * t)
			img.Pix[i+1] = uint8(float64(img.Pix[i+1]) * t)
			img.Pix[i+2] = uint8(float64(img.Pix[i+2]) * t)
		}
	}
}

func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
