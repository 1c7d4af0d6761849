package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/prismsort-cli/internal/encoder"
	"github.com/AnyUserName/prismsort-cli/internal/glitch"
	"github.com/AnyUserName/prismsort-cli/internal/hasher"
	"github.com/AnyUserName/prismsort-cli/internal/imageio"
	"github.com/AnyUserName/prismsort-cli/internal/preset"
	"github.com/AnyUserName/prismsort-cli/internal/report"
)

var (
	glitchAngle      float64
	glitchBlocks     int
	glitchIntensity  int
	glitchDither     bool
	glitchFuzzy      bool
	glitchHorizontal bool
	glitchVertical   bool
	glitchResize     float64
	glitchCount      int
	glitchJPEG       int
	glitchPNG        bool
	glitchWebP       bool
	glitchOutDir     string
	glitchWorkers    int
	glitchSeed       uint64
	glitchPreset     string
	glitchPresetFile string
	glitchReport     bool
)

var glitchCmd = &cobra.Command{
	Use:   "glitch <input>...",
	Short: "Generate glitched variants of one or more images",
	Long: `Reads each input image (or every image in an input directory), runs the
glitch transform, and writes the results next to the input as
<name>_out<N>.<ext>. Existing files with those names are overwritten.

Output is PNG unless --jpeg or --webp is given. Flags override the
selected preset field by field.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGlitch,
}

func init() {
	f := glitchCmd.Flags()
	f.Float64VarP(&glitchAngle, "angle", "a", 0, "rotate the glitch direction by this many degrees")
	f.IntVarP(&glitchBlocks, "blocks", "b", 9, "number of bands per sorting line")
	f.IntVarP(&glitchIntensity, "intensity", "i", 0, "band misalignment intensity (recommended: -2..2)")
	f.BoolVarP(&glitchDither, "dither", "d", false, "noisier, less blocky result")
	f.BoolVarP(&glitchFuzzy, "fuzzy-edges", "f", false, "feather the rotation border instead of hard-cropping")
	f.BoolVarP(&glitchHorizontal, "horizontal", "H", false, "process horizontally (same as --angle 90)")
	f.BoolVarP(&glitchVertical, "vertical", "V", false, "process vertically (default; same as --angle 0)")
	f.Float64VarP(&glitchResize, "resize", "r", 0, "resize factor (2 divides each side by sqrt 2)")
	f.IntVarP(&glitchCount, "count", "n", 1, "number of output variants per input")
	f.IntVarP(&glitchJPEG, "jpeg", "J", 0, "save as JPEG at this quality (1-100)")
	f.BoolVarP(&glitchPNG, "png", "P", false, "save as PNG (default)")
	f.BoolVar(&glitchWebP, "webp", false, "save as WebP (requires cwebp)")
	f.StringVarP(&glitchOutDir, "out", "o", "", "output directory (default: next to each input)")
	f.IntVarP(&glitchWorkers, "workers", "w", 0, "parallel variant workers (0 = NumCPU)")
	f.Uint64Var(&glitchSeed, "seed", 0, "base seed for reproducible variants (0 = random)")
	f.StringVarP(&glitchPreset, "preset", "p", "", "named parameter preset")
	f.StringVar(&glitchPresetFile, "preset-file", "", "TOML file with additional presets")
	f.BoolVar(&glitchReport, "report", false, "write a JSON run report next to the outputs")
	rootCmd.AddCommand(glitchCmd)
}

// resolveParams merges preset and flags into a validated parameter
// set. Explicitly set flags win over the preset.
func resolveParams(cmd *cobra.Command) (glitch.Params, error) {
	params := glitch.DefaultParams()

	if glitchPreset != "" {
		var (
			p     preset.Preset
			found bool
		)
		if glitchPresetFile != "" {
			filePresets, err := preset.LoadFile(glitchPresetFile)
			if err != nil {
				return params, err
			}
			p, found = filePresets[glitchPreset]
		}
		if !found {
			if !preset.Known(glitchPreset) {
				return params, fmt.Errorf("unknown preset %q (have: %s)",
					glitchPreset, strings.Join(preset.Names(), ", "))
			}
			p = preset.Get(glitchPreset)
		}
		p.Apply(&params)
	}

	flags := cmd.Flags()
	if flags.Changed("angle") {
		params.Angle = glitchAngle
	}
	if flags.Changed("blocks") {
		params.Blocks = glitchBlocks
	}
	if flags.Changed("intensity") {
		params.Intensity = glitchIntensity
	}
	if flags.Changed("dither") {
		params.Dither = glitchDither
	}
	if flags.Changed("fuzzy-edges") {
		params.FuzzyEdges = glitchFuzzy
	}
	if flags.Changed("resize") {
		if glitchResize <= 0 {
			return params, &glitch.ConfigError{
				Param:  "resize",
				Reason: fmt.Sprintf("factor must be positive, got %g", glitchResize),
			}
		}
		params.ResizeFactor = glitchResize
	}
	if glitchHorizontal {
		params.Angle = 90
	}
	if glitchVertical {
		params.Angle = 0
	}
	params.Count = glitchCount

	err := params.Validate()
	return params, err
}

func runGlitch(cmd *cobra.Command, args []string) error {
	start := time.Now()

	params, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	format := "png"
	quality := 0
	switch {
	case glitchWebP:
		format = "webp"
		quality = glitchJPEG
	case glitchJPEG > 0 && !glitchPNG:
		format = "jpeg"
		quality = glitchJPEG
	}

	registry := encoder.NewRegistry()
	logger.Debug(registry.String())
	enc, err := registry.Resolve(format)
	if err != nil {
		return err
	}

	sources, err := imageio.ResolveInputs(args)
	if err != nil {
		return err
	}

	if glitchOutDir != "" {
		if err := os.MkdirAll(glitchOutDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	logger.Debug("run parameters",
		"angle", params.Angle, "blocks", params.Blocks,
		"intensity", params.Intensity, "dither", params.Dither,
		"fuzzy", params.FuzzyEdges, "count", params.Count,
		"format", format)

	var totalVariants int
	var totalBytes int64

	for _, src := range sources {
		img, err := imageio.Load(src.Path)
		if err != nil {
			return err
		}
		bounds := img.Bounds()
		logger.Info("glitching", "input", src.Path,
			"size", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()))

		pipe := glitch.New(glitch.Config{
			Params:     params,
			SourceName: src.Path,
			BaseSeed:   glitchSeed,
			Workers:    glitchWorkers,
			Logger:     logger,
		})
		variants, err := pipe.Run(img)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Path, err)
		}

		rep := report.New(
			report.InputInfo{
				Path:   src.Path,
				Width:  bounds.Dx(),
				Height: bounds.Dy(),
				Format: src.Format,
			},
			report.ParamsInfo{
				Angle:      params.Angle,
				Blocks:     params.Blocks,
				Intensity:  params.Intensity,
				Dither:     params.Dither,
				FuzzyEdges: params.FuzzyEdges,
				Resize:     params.ResizeFactor,
			},
		)

		for _, v := range variants {
			data, err := enc.Encode(v.Image, quality)
			if err != nil {
				return fmt.Errorf("encode variant %d of %s: %w", v.Index, src.Path, err)
			}
			outPath := imageio.OutputPath(src.Path, glitchOutDir, v.Index, enc.Extension())
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			vb := v.Image.Bounds()
			rep.Variants = append(rep.Variants, report.VariantEntry{
				Index:  v.Index,
				Path:   outPath,
				Format: enc.Format(),
				Width:  vb.Dx(),
				Height: vb.Dy(),
				Size:   int64(len(data)),
				Hash:   hasher.ContentHash(data, 16),
				Seed:   v.Seed,
			})
			totalVariants++
			totalBytes += int64(len(data))
			logger.Info("wrote", "path", outPath, "bytes", len(data), "seed", v.Seed)
		}

		if glitchReport {
			repPath := imageio.OutputPath(src.Path, glitchOutDir, 0, "")
			repPath = strings.TrimSuffix(repPath, "_out0.") + "_glitch.json"
			if err := report.WriteJSON(rep, repPath); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			logger.Info("report", "path", repPath)
		}
	}

	printRunSummary(len(sources), totalVariants, totalBytes, time.Since(start))
	return nil
}

func printRunSummary(inputs, variants int, bytes int64, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("  Inputs:      %d\n", inputs)
	fmt.Printf("  Variants:    %d\n", variants)
	fmt.Printf("  Output size: %s\n", formatBytes(bytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
