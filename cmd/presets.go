package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/prismsort-cli/internal/preset"
)

var presetsFile string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available parameter presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().StringVar(&presetsFile, "preset-file", "", "TOML file with additional presets")
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println("  Built-in presets:")
	for _, name := range preset.Names() {
		printPreset(preset.Get(name))
	}

	if presetsFile != "" {
		filePresets, err := preset.LoadFile(presetsFile)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("  From %s:\n", presetsFile)
		for name, p := range filePresets {
			p.Name = name
			printPreset(p)
		}
	}
	fmt.Println()
	return nil
}

func printPreset(p preset.Preset) {
	extras := ""
	if p.Dither {
		extras += " dither"
	}
	if p.FuzzyEdges {
		extras += " fuzzy-edges"
	}
	fmt.Printf("    %-10s  angle=%-5g blocks=%-3d intensity=%-3d%s\n",
		p.Name, p.Angle, p.Blocks, p.Intensity, extras)
}
