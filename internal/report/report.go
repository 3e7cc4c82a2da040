// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders discovery runs as tables, JSON, YAML, CSV exports
// and ad-strategy recommendations.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// FormatTable writes run as a human-readable table to w.
func FormatTable(run types.Run, w io.Writer) {
	if len(run.Keywords) == 0 {
		fmt.Fprintln(w, "No keywords found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %s\n", "#", "Keyword", "Intent")
	fmt.Fprintln(w, strings.Repeat("-", 82))
	for i, k := range run.Keywords {
		fmt.Fprintf(w, "%-4d  %-60s  %s\n", i+1, Truncate(k.Keyword, 60), k.Intent)
	}

	fmt.Fprintf(w, "\n%d keywords (%d discovered, %d queries", len(run.Keywords), run.Discovered, run.Queries)
	if n := run.FailureCount(); n > 0 {
		fmt.Fprintf(w, ", %d failed", n)
	}
	fmt.Fprintln(w, ")")
}

// FormatTally writes the intent counts with both percentage metrics.
func FormatTally(t types.Tally, w io.Writer) {
	classified, overall := t.ClassifiedShare(), t.OverallShare()

	fmt.Fprintf(w, "%-15s  %5s  %11s  %8s\n", "Intent", "Count", "Classified%", "Overall%")
	fmt.Fprintln(w, strings.Repeat("-", 46))
	for _, i := range types.Intents {
		share := "-"
		if i != types.IntentUnclassified {
			share = fmt.Sprintf("%.1f", classified.Get(i))
		}
		fmt.Fprintf(w, "%-15s  %5d  %11s  %8.1f\n", i, t.Count(i), share, overall.Get(i))
	}
}

// FormatRecommendations writes one bullet per recommendation.
func FormatRecommendations(recs []string, w io.Writer) {
	for _, r := range recs {
		fmt.Fprintf(w, "  * %s\n", r)
	}
}

// RunJSON is the serialized form of a run with both share metrics.
type RunJSON struct {
	types.Run
	ClassifiedShare types.Shares `json:"classified_share" yaml:"classified_share"`
	OverallShare    types.Shares `json:"overall_share" yaml:"overall_share"`
}

// NewRunJSON attaches the share metrics to run.
func NewRunJSON(run types.Run) RunJSON {
	return RunJSON{
		Run:             run,
		ClassifiedShare: run.Tally.ClassifiedShare(),
		OverallShare:    run.Tally.OverallShare(),
	}
}

// FormatJSON writes run as indented JSON to w.
func FormatJSON(run types.Run, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewRunJSON(run))
}

// FormatYAML writes run as YAML to w.
func FormatYAML(run types.Run, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(&run); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Truncate shortens s to max characters, counting runes so multibyte
// keywords are never split.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
