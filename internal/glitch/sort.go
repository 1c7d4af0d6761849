package glitch

import (
	"image"
	"image/color"
	"math/rand"
	"sort"
)

// lumaKey is the brightness key pixels are ordered by: Rec.709 luma.
// The exact weighting is a taste choice; it shifts which pixels end
// up where but not the structure of the effect.
func lumaKey(c color.NRGBA) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// ditherAmp is the peak-to-peak noise added to keys when dithering,
// on the 0-255 luma scale. Large enough to break smooth gradients
// inside a band, small enough to keep the gross ordering.
const ditherAmp = 24.0

// bandPixels sorts a band's pixels and their keys together.
type bandPixels struct {
	px   []color.NRGBA
	key  []float64
	desc bool
}

func (b bandPixels) Len() int { return len(b.px) }

func (b bandPixels) Swap(i, j int) {
	b.px[i], b.px[j] = b.px[j], b.px[i]
	b.key[i], b.key[j] = b.key[j], b.key[i]
}

func (b bandPixels) Less(i, j int) bool {
	if b.desc {
		return b.key[i] > b.key[j]
	}
	return b.key[i] < b.key[j]
}

// sortBand reorders one band of the line in place by its precomputed
// keys. The result is always a permutation of the band's pixels.
func sortBand(line []color.NRGBA, keys []float64, b Band, ascending bool) {
	if b.Len < 2 {
		return
	}
	sort.Sort(bandPixels{
		px:   line[b.Start : b.Start+b.Len],
		key:  keys[b.Start : b.Start+b.Len],
		desc: !ascending,
	})
}

// sortLine keys the whole line, optionally dithers the keys, then
// sorts each band with a randomly chosen direction. keys is scratch
// space of the same length as line, reused across calls.
func sortLine(line []color.NRGBA, keys []float64, bands []Band, dither bool, rng *rand.Rand) {
	for i, c := range line {
		keys[i] = lumaKey(c)
	}
	if dither {
		for i := range keys {
			keys[i] += (rng.Float64() - 0.5) * ditherAmp
		}
	}
	for _, b := range bands {
		sortBand(line, keys, b, rng.Intn(2) == 0)
	}
}

// readColumn copies column x of img into line, which must have length
// equal to the image height.
func readColumn(img *image.NRGBA, x int, line []color.NRGBA) {
	b := img.Bounds()
	for y := range line {
		i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
		line[y] = color.NRGBA{
			R: img.Pix[i],
			G: img.Pix[i+1],
			B: img.Pix[i+2],
			A: img.Pix[i+3],
		}
	}
}

// writeColumn writes line back into column x of img.
func writeColumn(img *image.NRGBA, x int, line []color.NRGBA) {
	b := img.Bounds()
	for y, c := range line {
		i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}
