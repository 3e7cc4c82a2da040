// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discovery runs one keyword discovery request end to end:
// expansion, filtering, intent classification and tallying.
package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/keyword-discovery/internal/expand"
	"github.com/pdiddy/keyword-discovery/internal/intent"
	"github.com/pdiddy/keyword-discovery/internal/suggest"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// Request describes one discovery run.
type Request struct {
	Seed string

	// Service is the raw service name; unknown names fall back to Google
	// with a warning on the run.
	Service string

	Options expand.Options
}

// RunRecorder receives a summary of each finished run.
type RunRecorder interface {
	RecordRun(service string, discovered, kept int)
}

// Run executes req against s. Suggestion failures are counted on the run,
// never returned. The error is non-nil only for an empty seed or a
// cancelled context; in the latter case the partial run is still returned.
func Run(ctx context.Context, s expand.Suggester, req Request, rec RunRecorder) (types.Run, error) {
	seed := strings.TrimSpace(req.Seed)
	if seed == "" {
		return types.Run{}, expand.ErrEmptySeed
	}

	svc, ok := suggest.ParseService(req.Service)
	run := types.Run{
		ID:        uuid.NewString(),
		Seed:      seed,
		Service:   string(svc),
		Deep:      req.Options.Deep,
		StartedAt: time.Now().UTC(),
	}
	if !ok {
		msg := fmt.Sprintf("unknown service %q, using Google", req.Service)
		run.Warnings = append(run.Warnings, msg)
		req.Options.Logger.Warn().Str("service", req.Service).Msg("unknown service, using Google")
	}

	res, err := expand.Expand(ctx, s, seed, svc, req.Options)
	run.Duration = time.Since(run.StartedAt)
	run.Queries = res.Queries
	run.Discovered = len(res.Suggestions)
	if len(res.Failures) > 0 {
		run.Failures = make(map[string]int, len(res.Failures))
		for k, n := range res.Failures {
			run.Failures[string(k)] = n
		}
	}

	Classify(&run, res.Suggestions)
	if err != nil {
		return run, err
	}

	if rec != nil {
		rec.RecordRun(run.Service, run.Discovered, len(run.Keywords))
	}
	return run, nil
}

// Classify filters suggestions against run.Seed, classifies the survivors
// and sets run.Keywords and run.Tally.
func Classify(run *types.Run, suggestions []string) {
	kept := expand.Filter(suggestions, run.Seed)
	run.Keywords = intent.New().ClassifyAll(kept)
	run.Tally = intent.Count(run.Keywords)
}
