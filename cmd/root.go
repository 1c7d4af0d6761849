package cmd

import (
	"fmt"
	"os"
	"runtime"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	logger  *charmlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "prismsort",
	Short: "Pixel-sorting glitch art generator",
	Long: `prismsort — turns an ordinary still image into glitch art by rotating
it, slicing every line into randomized bands, and sorting the pixels
inside each band by brightness.

Every run is randomized; use --seed (or the seeds recorded in a run
report) to reproduce a variant you like.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		})
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "prismsort: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"prismsort %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}
