package glitch

import (
	"math"
	"testing"
)

func TestResize_IdentityFactors(t *testing.T) {
	src := testImage(64, 48)
	for _, factor := range []float64{0, 1} {
		out, err := resizeOutput(src, factor)
		if err != nil {
			t.Fatalf("factor %g: %v", factor, err)
		}
		if out != src {
			t.Errorf("factor %g did not return the input buffer", factor)
		}
	}
}

func TestResize_FactorTwo(t *testing.T) {
	src := testImage(100, 80)
	out, err := resizeOutput(src, 2)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}

	b := out.Bounds()
	wantW := int(math.Round(100 / math.Sqrt2))
	wantH := int(math.Round(80 / math.Sqrt2))
	if abs(b.Dx()-wantW) > 1 || abs(b.Dy()-wantH) > 1 {
		t.Fatalf("got %dx%d, want about %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestResize_ShrinkToNothing(t *testing.T) {
	src := testImage(2, 2)
	if _, err := resizeOutput(src, 1e9); err == nil {
		t.Fatal("absurd factor accepted")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
