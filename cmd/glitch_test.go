package cmd

import (
	"errors"
	"testing"

	"github.com/AnyUserName/prismsort-cli/internal/glitch"
)

func TestResolveParams_ResizeFlag(t *testing.T) {
	flags := glitchCmd.Flags()

	// Untouched flag: resize stays unset (identity).
	params, err := resolveParams(glitchCmd)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if params.ResizeFactor != 0 {
		t.Errorf("resize: got %g, want unset", params.ResizeFactor)
	}

	// An explicit zero or negative factor is a configuration error,
	// not a silent fallback to "no resize".
	for _, bad := range []string{"0", "-2"} {
		if err := flags.Set("resize", bad); err != nil {
			t.Fatalf("set resize %s: %v", bad, err)
		}
		_, err := resolveParams(glitchCmd)
		var cfg *glitch.ConfigError
		if !errors.As(err, &cfg) {
			t.Fatalf("--resize %s: want *ConfigError, got %v", bad, err)
		}
		if cfg.Param != "resize" {
			t.Errorf("--resize %s: param %q", bad, cfg.Param)
		}
	}

	if err := flags.Set("resize", "2"); err != nil {
		t.Fatalf("set resize 2: %v", err)
	}
	params, err = resolveParams(glitchCmd)
	if err != nil {
		t.Fatalf("--resize 2: %v", err)
	}
	if params.ResizeFactor != 2 {
		t.Errorf("resize: got %g, want 2", params.ResizeFactor)
	}
}
