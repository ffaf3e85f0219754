package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isawnyu/pleiades-quality/internal/export"
)

var issues2csvCmd = &cobra.Command{
	Use:   "issues2csv <path-to-issues.json>",
	Short: "Convert issues.json content to thematic CSVs",
	Long:  "Reads a previously generated issues.json report and writes one CSV file per issue category alongside it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runIssues2CSV,
}

func init() {
	rootCmd.AddCommand(issues2csvCmd)
}

func runIssues2CSV(_ *cobra.Command, args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	written, err := export.CSVs(args[0], log)
	if err != nil {
		var parseErr *export.ReportParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("cannot use report file: %w", err)
		}
		return fmt.Errorf("CSV export failed: %w", err)
	}

	for _, path := range written {
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}
