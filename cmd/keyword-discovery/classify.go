// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/keyword-discovery/internal/discovery"
	"github.com/pdiddy/keyword-discovery/internal/report"
	"github.com/pdiddy/keyword-discovery/internal/suggest"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file.csv|->",
	Short: "Classify keywords from an existing CSV export or list",
	Long: `Classify reads keywords from a CSV export (the "Keywords" column) or a
plain one-per-line list, and prints their intent, tally and recommendations.
Use "-" to read from stdin. With --seed, only keywords containing every seed
word are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("seed", "", "keep only keywords containing every word of this seed")
	classifyCmd.Flags().String("service", string(suggest.Google), "service the keywords came from, for recommendations")
	classifyCmd.Flags().Bool("json", false, "print results as JSON")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening keywords: %w", err)
		}
		defer f.Close()
		in = f
	}

	keywords, err := report.ReadKeywords(in)
	if err != nil {
		return err
	}

	seed, _ := cmd.Flags().GetString("seed")
	service, _ := cmd.Flags().GetString("service")
	svc, ok := suggest.ParseService(service)

	run := types.Run{Seed: seed, Service: string(svc), Discovered: len(keywords)}
	if !ok {
		run.Warnings = append(run.Warnings, fmt.Sprintf("unknown service %q, using Google", service))
	}
	discovery.Classify(&run, keywords)

	for _, w := range run.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return report.FormatJSON(run, cmd.OutOrStdout())
	}
	printRun(run, cmd.OutOrStdout())
	return nil
}
