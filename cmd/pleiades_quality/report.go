package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isawnyu/pleiades-quality/internal/checks"
	"github.com/isawnyu/pleiades-quality/internal/observability"
	"github.com/isawnyu/pleiades-quality/internal/report"
	"github.com/isawnyu/pleiades-quality/internal/schemas"
)

var reportCmd = &cobra.Command{
	Use:   "report <srcdir> <destdir>",
	Short: "Report on problems in Pleiades data",
	Long:  "Crawls srcdir for Pleiades place JSON files, runs the quality check battery against each record, and writes destdir/issues.json.",
	Args:  cobra.ExactArgs(2),
	RunE:  runReport,
}

var reportWorkers int

func init() {
	reportCmd.Flags().IntVar(&reportWorkers, "workers", 1, "number of concurrent record scanners (output is identical regardless)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, args []string) error {
	srcDir, destDir := args[0], args[1]
	log := newLogger()
	defer func() { _ = log.Sync() }()

	battery := checks.Default()
	collector := report.NewCollector(battery, log, reportWorkers)

	rep, err := collector.Scan(srcDir)
	if err != nil {
		var inputErr *report.InputPathError
		if errors.As(err, &inputErr) {
			return fmt.Errorf("cannot read input directory: %w", err)
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	outPath, err := report.Write(rep, destDir)
	if err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}

	// Self-check the written artifact against the report schema (non-fatal).
	if data, readErr := os.ReadFile(outPath); readErr == nil {
		if err := schemas.ValidateReport(data); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: generated report does not validate against schema: %v\n", err)
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReportSummary(rep, checks.Categories(battery))
	fmt.Printf("\nWrote report data to %s\n", outPath)
	return nil
}
