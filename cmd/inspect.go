package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/prismsort-cli/internal/report"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <report.json>",
	Short: "Validate and display a saved run report",
	Long: `Reads a run report written with --report, checks it for consistency
(including that the referenced output files still exist), and prints
the per-variant seeds needed to re-render any variant with --seed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	problems := validateReport(&r, filepath.Dir(path))

	fmt.Println()
	fmt.Printf("  Report version: %d\n", r.Version)
	fmt.Printf("  Generated:      %s\n", r.GeneratedAt)
	fmt.Printf("  Input:          %s (%dx%d %s)\n",
		r.Input.Path, r.Input.Width, r.Input.Height, r.Input.Format)
	fmt.Printf("  Params:         angle=%g blocks=%d intensity=%d dither=%t fuzzy=%t\n",
		r.Params.Angle, r.Params.Blocks, r.Params.Intensity, r.Params.Dither, r.Params.FuzzyEdges)
	if r.Params.Resize > 0 {
		fmt.Printf("  Resize:         %g\n", r.Params.Resize)
	}
	fmt.Println()

	fmt.Printf("  Variants (%d):\n", len(r.Variants))
	for _, v := range r.Variants {
		fmt.Printf("    [%d] %-40s %dx%d %s  %s  seed=%d\n",
			v.Index, v.Path, v.Width, v.Height, v.Format, formatBytes(v.Size), v.Seed)
	}
	fmt.Println()

	if len(problems) == 0 {
		fmt.Println("  ✓ Report is valid, all output files present")
		fmt.Println()
		return nil
	}

	fmt.Printf("  ✗ Report has %d problem(s):\n", len(problems))
	for _, p := range problems {
		fmt.Printf("    • %s\n", p)
	}
	fmt.Println()
	return fmt.Errorf("validation failed with %d problems", len(problems))
}

func validateReport(r *report.Report, baseDir string) []string {
	var problems []string

	if r.Version != report.SupportedReportVersion {
		problems = append(problems, fmt.Sprintf("unsupported report version: %d", r.Version))
	}
	if r.Input.Width <= 0 || r.Input.Height <= 0 {
		problems = append(problems, fmt.Sprintf("invalid input dimensions %dx%d", r.Input.Width, r.Input.Height))
	}
	if len(r.Variants) == 0 {
		problems = append(problems, "no variants recorded")
	}

	seenPaths := map[string]bool{}
	for i, v := range r.Variants {
		if v.Path == "" {
			problems = append(problems, fmt.Sprintf("variant[%d]: missing path", i))
			continue
		}
		if seenPaths[v.Path] {
			problems = append(problems, fmt.Sprintf("variant[%d]: duplicate path %q", i, v.Path))
		}
		seenPaths[v.Path] = true
		if v.Hash == "" {
			problems = append(problems, fmt.Sprintf("variant[%d]: missing hash", i))
		}
		if v.Width <= 0 || v.Height <= 0 {
			problems = append(problems, fmt.Sprintf("variant[%d]: invalid dimensions %dx%d", i, v.Width, v.Height))
		}

		fullPath := v.Path
		if !filepath.IsAbs(fullPath) {
			if _, err := os.Stat(fullPath); err != nil {
				fullPath = filepath.Join(baseDir, filepath.Base(v.Path))
			}
		}
		info, err := os.Stat(fullPath)
		if err != nil {
			problems = append(problems, fmt.Sprintf("variant[%d]: file not found: %s", i, v.Path))
		} else if v.Size > 0 && info.Size() != v.Size {
			problems = append(problems, fmt.Sprintf("variant[%d]: size mismatch: report=%d, disk=%d",
				i, v.Size, info.Size()))
		}
	}

	variantCount := len(r.Variants)
	if r.Stats.TotalVariants != variantCount {
		problems = append(problems, fmt.Sprintf("stats.total_variants mismatch: %d != %d",
			r.Stats.TotalVariants, variantCount))
	}

	return problems
}
