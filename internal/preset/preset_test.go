package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/prismsort-cli/internal/glitch"
)

func TestGet_Known(t *testing.T) {
	p := Get("noisy")
	if p.Name != "noisy" {
		t.Errorf("name: got %q", p.Name)
	}
	if !p.Dither {
		t.Error("noisy preset lost dither")
	}
}

func TestGet_FallsBackToClassic(t *testing.T) {
	p := Get("does-not-exist")
	if p.Name != "does-not-exist" {
		t.Errorf("requested name not preserved: %q", p.Name)
	}
	if p.Blocks != 9 {
		t.Errorf("fallback blocks: got %d, want 9", p.Blocks)
	}
}

func TestKnown(t *testing.T) {
	if !Known("classic") {
		t.Error("classic not known")
	}
	if Known("nope") {
		t.Error("nope reported as known")
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) < 4 {
		t.Fatalf("got %d names", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Fatal("names not sorted")
		}
	}
}

func TestEveryBuiltinValidates(t *testing.T) {
	for _, name := range Names() {
		params := glitch.DefaultParams()
		Get(name).Apply(&params)
		if err := params.Validate(); err != nil {
			t.Errorf("preset %q produces invalid params: %v", name, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	content := `
[vaporwave]
angle = 35.0
blocks = 11
intensity = 1
dither = true

[gentle]
blocks = 4
intensity = -1
fuzzy_edges = true
resize = 2.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ps, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d presets", len(ps))
	}

	vw, ok := ps["vaporwave"]
	if !ok {
		t.Fatal("vaporwave missing")
	}
	if vw.Name != "vaporwave" {
		t.Errorf("name not filled in: %q", vw.Name)
	}
	if vw.Angle != 35 || vw.Blocks != 11 || !vw.Dither {
		t.Errorf("vaporwave fields wrong: %+v", vw)
	}

	g := ps["gentle"]
	if !g.FuzzyEdges || g.Resize != 2 {
		t.Errorf("gentle fields wrong: %+v", g)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/does/not/exist.toml"); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestApply_ZeroFieldsKeepDefaults(t *testing.T) {
	params := glitch.DefaultParams()
	params.ResizeFactor = 3
	Preset{Name: "empty"}.Apply(&params)

	if params.Blocks != 9 {
		t.Errorf("blocks: got %d, want 9 (kept)", params.Blocks)
	}
	if params.ResizeFactor != 3 {
		t.Errorf("resize: got %g, want 3 (kept)", params.ResizeFactor)
	}
}
