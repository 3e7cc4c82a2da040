// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/keyword-discovery/internal/discovery"
	"github.com/pdiddy/keyword-discovery/internal/expand"
	"github.com/pdiddy/keyword-discovery/internal/metrics"
	"github.com/pdiddy/keyword-discovery/internal/report"
	"github.com/pdiddy/keyword-discovery/internal/store"
	"github.com/pdiddy/keyword-discovery/internal/suggest"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

var expandCmd = &cobra.Command{
	Use:   "expand <seed...>",
	Short: "Discover keywords for a seed from a suggestion service",
	Long: `Expand queries one suggestion service with the seed and with every
alphabetic, question-word and digit variant of it, keeps the suggestions that
contain all seed words, and classifies them by intent.

The keywords are written to "<seed>-<service>-keywords.csv" in --output-dir.
Failed requests are counted and skipped. Interrupting with Ctrl-C stops
querying and still writes what was found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().String("service", string(suggest.Google), "suggestion service: google, youtube, bing, yahoo, amazon, ebay")
	addExpandFlags(expandCmd)
	expandCmd.Flags().String("output-dir", ".", "directory for the CSV export")
	expandCmd.Flags().Bool("no-csv", false, "skip the CSV export")
	expandCmd.Flags().Bool("json", false, "print the run as JSON instead of a table")
	expandCmd.Flags().String("save", "", "write the run to a YAML file for the report command")
	expandCmd.Flags().String("metrics-file", "", "write Prometheus metrics in textfile format")
	expandCmd.Flags().Bool("quiet", false, "suppress progress output")

	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	seed := strings.TrimSpace(strings.Join(args, " "))
	if seed == "" {
		return expand.ErrEmptySeed
	}

	cfg := expandConfig(cmd)
	quiet, _ := cmd.Flags().GetBool("quiet")
	stderr := cmd.ErrOrStderr()

	m := metrics.New()
	client := suggest.NewClient(cfg.HTTPConfig, logger)
	opts := expandOptions(cfg)
	opts.Recorder = m
	if !quiet {
		opts.Progress = progressPrinter(stderr)
	}

	run, err := discovery.Run(cmd.Context(), client, discovery.Request{
		Seed:    seed,
		Service: cfg.Service,
		Options: opts,
	}, m)
	interrupted := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
	if err != nil && !interrupted {
		return err
	}

	for _, w := range run.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}

	if err := writeRun(cmd, run); err != nil {
		return err
	}
	if err := persistRun(cmd, run, m); err != nil {
		return err
	}

	if interrupted {
		return fmt.Errorf("interrupted after %d queries: %w", run.Queries, err)
	}
	return nil
}

// writeRun prints the run to stdout and writes the CSV export.
func writeRun(cmd *cobra.Command, run types.Run) error {
	out := cmd.OutOrStdout()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := report.FormatJSON(run, out); err != nil {
			return err
		}
	} else {
		printRun(run, out)
	}

	noCSV, _ := cmd.Flags().GetBool("no-csv")
	if noCSV || !boolSettingDefault("output.csv", true) {
		return nil
	}
	dir := stringSetting(cmd, "output-dir", "output.dir")
	path, err := report.ExportCSV(dir, run.Seed, run.Service, run.KeywordStrings())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d keywords to %s\n", len(run.Keywords), path)
	return nil
}

// persistRun writes the optional run file, history entry and metrics file.
func persistRun(cmd *cobra.Command, run types.Run, m *metrics.Metrics) error {
	stderr := cmd.ErrOrStderr()

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := report.WriteRunFile(path, run); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Saved run to %s\n", path)
	}

	if cfg := storeConfig(cmd); cfg.Path != "" {
		st, err := store.Open(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.SaveRun(context.WithoutCancel(cmd.Context()), run); err != nil {
			return fmt.Errorf("saving run to history: %w", err)
		}
		logger.Debug().Str("run", run.ID).Str("store", cfg.Path).Msg("run saved")
	}

	if path, _ := cmd.Flags().GetString("metrics-file"); path != "" {
		if err := m.WriteTextfile(path); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// printRun writes the keyword table, intent tally and recommendations.
func printRun(run types.Run, w io.Writer) {
	report.FormatTable(run, w)
	fmt.Fprintln(w)
	report.FormatTally(run.Tally, w)
	fmt.Fprintln(w)
	report.FormatRecommendations(report.Recommendations(run.Service, run.Tally), w)
}

func progressPrinter(w io.Writer) expand.ProgressFunc {
	return func(p expand.Progress) {
		status := fmt.Sprintf("%d found", p.Discovered)
		if p.Err != nil {
			kind := suggest.KindOf(p.Err)
			if kind == "" {
				kind = suggest.FailureNetwork
			}
			status = "failed: " + string(kind)
		}
		fmt.Fprintf(w, "[%d/%d] %s (%s)\n", p.Completed, p.Planned, p.Query, status)
	}
}
