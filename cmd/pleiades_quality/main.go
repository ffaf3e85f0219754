// Package main provides the entry point for the Pleiades data-quality CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pleiades_quality",
	Short: "Pleiades data-quality reporting tool",
	Long:  "Scans a directory tree of Pleiades place records for data-quality problems, writes an aggregate issues.json report, and slices prior reports into per-category CSV files.",
}

var (
	flagVerbose     bool
	flagVeryVerbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output (logging level == INFO)")
	rootCmd.PersistentFlags().BoolVarP(&flagVeryVerbose, "veryverbose", "w", false, "very verbose output (logging level == DEBUG)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
