package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	cases := []struct {
		input, outDir string
		index         int
		ext, want     string
	}{
		{"pics/photo.png", "", 0, "png", filepath.Join("pics", "photo_out0.png")},
		{"pics/photo.jpeg", "", 2, "jpg", filepath.Join("pics", "photo_out2.jpg")},
		{"photo.png", "out", 1, "webp", filepath.Join("out", "photo_out1.webp")},
	}
	for _, c := range cases {
		got := OutputPath(c.input, c.outDir, c.index, c.ext)
		if got != c.want {
			t.Errorf("OutputPath(%q,%q,%d,%q): got %q, want %q",
				c.input, c.outDir, c.index, c.ext, got, c.want)
		}
	}
}

func TestResolveInputs_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writeTestPNG(t, path, 4, 4)

	sources, err := ResolveInputs([]string{path})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("got %d sources", len(sources))
	}
	if sources[0].Format != "png" {
		t.Errorf("format: got %q", sources[0].Format)
	}
	if sources[0].Size <= 0 {
		t.Error("size not filled in")
	}
}

func TestResolveInputs_Directory(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"), 4, 4)
	writeTestPNG(t, filepath.Join(dir, "b.png"), 4, 4)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	hidden := filepath.Join(dir, ".cache")
	if err := os.Mkdir(hidden, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeTestPNG(t, filepath.Join(hidden, "c.png"), 4, 4)

	sources, err := ResolveInputs([]string{dir})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2 (txt and hidden dir skipped)", len(sources))
	}
}

func TestResolveInputs_NoImages(t *testing.T) {
	dir := t.TempDir()
	if _, err := ResolveInputs([]string{dir}); err == nil {
		t.Fatal("empty directory accepted")
	}
}

func TestResolveInputs_MissingFile(t *testing.T) {
	if _, err := ResolveInputs([]string{"/does/not/exist.png"}); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writeTestPNG(t, path, 6, 3)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("got %dx%d, want 6x3", b.Dx(), b.Dy())
	}
	if got := img.NRGBAAt(2, 1); got.R != 2 || got.G != 1 {
		t.Errorf("pixel (2,1): got %v", got)
	}
}

func TestNormalizeFormat(t *testing.T) {
	cases := map[string]string{
		".jpg": "jpeg", ".JPG": "jpeg", ".jpeg": "jpeg",
		".tif": "tiff", ".png": "png", ".webp": "webp",
	}
	for ext, want := range cases {
		if got := normalizeFormat(ext); got != want {
			t.Errorf("normalizeFormat(%q): got %q, want %q", ext, got, want)
		}
	}
}
