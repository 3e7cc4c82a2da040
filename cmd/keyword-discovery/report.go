// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/keyword-discovery/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <run.yaml>",
	Short: "Re-render a saved run without querying again",
	Long: `Report loads a run file written by "expand --save" and prints it as a
table, JSON or YAML. With --csv-dir it also writes the CSV export again.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("format", "table", "output format: table, json, yaml")
	reportCmd.Flags().String("csv-dir", "", "also write the CSV export to this directory")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	run, err := report.ReadRunFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "":
		printRun(*run, out)
	case "json":
		if err := report.FormatJSON(*run, out); err != nil {
			return err
		}
	case "yaml":
		if err := report.FormatYAML(*run, out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}

	if dir, _ := cmd.Flags().GetString("csv-dir"); dir != "" {
		path, err := report.ExportCSV(dir, run.Seed, run.Service, run.KeywordStrings())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d keywords to %s\n", len(run.Keywords), path)
	}
	return nil
}
