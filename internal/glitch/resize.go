package glitch

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// resizeOutput shrinks each dimension by sqrt(factor), so the pixel
// area scales by 1/factor. Lanczos keeps shrinking free of aliasing.
// A factor of 0 (unset) or 1 is the identity.
func resizeOutput(img *image.NRGBA, factor float64) (*image.NRGBA, error) {
	if factor == 0 || factor == 1 {
		return img, nil
	}
	s := math.Sqrt(factor)
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) / s))
	h := int(math.Round(float64(b.Dy()) / s))
	if w < 1 || h < 1 {
		return nil, &BufferError{
			Stage:  "resize",
			Reason: fmt.Sprintf("factor %g shrinks %dx%d to nothing", factor, b.Dx(), b.Dy()),
		}
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}
