// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/keyword-discovery/internal/report"
	"github.com/pdiddy/keyword-discovery/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List runs saved in the history database",
	Long: `History lists runs saved with "expand --store" or by the dashboard,
newest first. Use --show with a run ID (or a unique prefix of one) to print
that run in full.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("store", "", "SQLite run history file")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list (0 = all)")
	historyCmd.Flags().String("show", "", "print the run with this ID")
	historyCmd.Flags().Bool("json", false, "print as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := storeConfig(cmd)
	if cfg.Path == "" {
		return fmt.Errorf("no history database: pass --store or set store.path")
	}
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if id, _ := cmd.Flags().GetString("show"); id != "" {
		run, err := st.GetRun(cmd.Context(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return report.FormatJSON(run, out)
		}
		printRun(run, out)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := st.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	formatHistory(runs, out)
	return nil
}

func formatHistory(runs []store.Summary, w io.Writer) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found.")
		return
	}

	fmt.Fprintf(w, "%-8s  %-16s  %-30s  %-8s  %-10s  %s\n",
		"ID", "Started", "Seed", "Service", "Discovered", "Kept")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, r := range runs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		seed := report.Truncate(r.Seed, 30)
		fmt.Fprintf(w, "%-8s  %-16s  %-30s  %-8s  %-10d  %d\n",
			id, r.StartedAt.Local().Format("2006-01-02 15:04"), seed, r.Service, r.Discovered, r.Kept)
	}
	fmt.Fprintf(w, "\n%d runs\n", len(runs))
}
