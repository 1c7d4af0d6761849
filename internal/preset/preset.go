// Package preset maps names to ready-made glitch parameter sets,
// either built in or loaded from a TOML file.
package preset

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/AnyUserName/prismsort-cli/internal/glitch"
)

// Preset is a named, reusable parameter set. Zero fields fall back to
// the tool defaults when applied, so a preset only has to state what
// it changes.
type Preset struct {
	Name       string  `toml:"-"`
	Angle      float64 `toml:"angle"`
	Blocks     int     `toml:"blocks"`
	Intensity  int     `toml:"intensity"`
	Dither     bool    `toml:"dither"`
	FuzzyEdges bool    `toml:"fuzzy_edges"`
	Resize     float64 `toml:"resize"`
}

// Built-in presets.
var presets = map[string]Preset{
	"classic": {
		Name:   "classic",
		Blocks: 9,
	},
	"noisy": {
		Name:      "noisy",
		Blocks:    9,
		Intensity: 1,
		Dither:    true,
	},
	"subtle": {
		Name:      "subtle",
		Blocks:    5,
		Intensity: -2,
	},
	"shredded": {
		Name:       "shredded",
		Blocks:     13,
		Intensity:  2,
		FuzzyEdges: true,
	},
}

// Get returns a preset by name. Unknown names fall back to classic,
// keeping the requested name for the caller's error reporting.
func Get(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	p := presets["classic"]
	p.Name = name
	return p
}

// Known reports whether name is a built-in preset.
func Known(name string) bool {
	_, ok := presets[name]
	return ok
}

// Names returns the built-in preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadFile parses a TOML preset file and returns its presets keyed by
// name. The layout is one table per preset:
//
//	[vaporwave]
//	angle = 35
//	blocks = 11
//	dither = true
//
// File presets shadow built-ins of the same name at the caller.
func LoadFile(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	var raw map[string]Preset
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}

	for name, p := range raw {
		p.Name = name
		raw[name] = p
	}
	return raw, nil
}

// Apply copies the preset over params. The preset's block count must
// be set for it to be meaningful; zero keeps the existing value.
func (p Preset) Apply(params *glitch.Params) {
	params.Angle = p.Angle
	if p.Blocks > 0 {
		params.Blocks = p.Blocks
	}
	params.Intensity = p.Intensity
	params.Dither = p.Dither
	params.FuzzyEdges = p.FuzzyEdges
	if p.Resize > 0 {
		params.ResizeFactor = p.Resize
	}
}
