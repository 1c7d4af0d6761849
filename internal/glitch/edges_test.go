package glitch

import (
	"image"
	"image/color"
	"testing"
)

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestCompose_HardCropRestoresDimensions(t *testing.T) {
	src := testImage(50, 40)
	rot, tr, err := rotateForward(src, 25)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}

	out, err := compose(rot, tr, false, 9)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 50 || b.Dy() != 40 {
		t.Fatalf("got %dx%d, want 50x40", b.Dx(), b.Dy())
	}
}

func TestCompose_FuzzyIsNoopOnAxis(t *testing.T) {
	src := testImage(30, 30)
	rot, tr, err := rotateForward(src, 0)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}

	out, err := compose(rot, tr, true, 9)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !samePixels(src, out) {
		t.Fatal("fuzzy edges altered an unrotated image")
	}
}

func TestFeatherEdges_DarkensBorderOnly(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	img := uniformImage(40, 40, white)

	featherEdges(img, 4, 30)

	corner := img.NRGBAAt(0, 0)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Errorf("corner not faded to black: %v", corner)
	}
	center := img.NRGBAAt(20, 20)
	if center != white {
		t.Errorf("center changed: %v", center)
	}
	if img.NRGBAAt(0, 0).A != 255 {
		t.Error("feather touched alpha")
	}
}

func TestSmoothstep(t *testing.T) {
	if smoothstep(-1) != 0 || smoothstep(0) != 0 {
		t.Error("smoothstep below range not clamped to 0")
	}
	if smoothstep(1) != 1 || smoothstep(2) != 1 {
		t.Error("smoothstep above range not clamped to 1")
	}
	if got := smoothstep(0.5); got != 0.5 {
		t.Errorf("smoothstep(0.5): got %g", got)
	}
	if smoothstep(0.25) >= smoothstep(0.75) {
		t.Error("smoothstep not increasing")
	}
}
