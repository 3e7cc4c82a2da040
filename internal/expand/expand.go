// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package expand grows a seed keyword into a set of related search terms by
// querying a suggestion service with prefixed, suffixed and digit-suffixed
// variants of the seed.
package expand

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/keyword-discovery/internal/suggest"
)

// DefaultMaxSize caps the suggestion set in deep mode.
const DefaultMaxSize = 1000

// ErrEmptySeed is returned when the seed is blank after trimming.
var ErrEmptySeed = errors.New("seed keyword is empty")

// Prefixes are prepended to the seed, one query each.
var Prefixes = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"how", "which", "why", "where", "who", "when", "are", "what",
}

// Suffixes are appended to the seed, one query each.
var Suffixes = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"like", "for", "without", "with", "versus", "vs", "to", "near", "except", "has",
}

// Suggester returns completions for a query. *suggest.Client implements it.
type Suggester interface {
	Suggest(ctx context.Context, svc suggest.Service, query string) ([]string, error)
}

// Recorder receives per-query outcomes. *metrics.Metrics implements it.
type Recorder interface {
	RecordQuery(service, outcome string, elapsed time.Duration)
}

// Progress is reported after every query.
type Progress struct {
	Query string

	// Completed is the number of queries issued so far.
	Completed int

	// Planned is the number of queries known so far. In deep mode it grows
	// as new terms are discovered.
	Planned int

	// Discovered is the current suggestion set size.
	Discovered int

	// Err is the failure of this query, if any.
	Err error
}

// ProgressFunc observes expansion progress.
type ProgressFunc func(Progress)

// Options tune an expansion run. The zero value runs the standard
// prefix/suffix/digit pass with no delay.
type Options struct {
	// Deep re-queries every discovered term until the set reaches MaxSize.
	// The request count is unpredictable, so it is off unless asked for.
	Deep bool

	// MaxSize caps the set in deep mode (default DefaultMaxSize).
	MaxSize int

	// MaxDeepQueries bounds the deep pass request count (0 = unbounded).
	MaxDeepQueries int

	// Delay pauses between consecutive queries.
	Delay time.Duration

	Progress ProgressFunc
	Recorder Recorder
	Logger   zerolog.Logger
}

// Result is the raw outcome of an expansion.
type Result struct {
	Seed    string
	Service suggest.Service

	// Suggestions is the deduplicated set in insertion order. It always
	// starts with the lowercased seed.
	Suggestions []string

	// Queries is the number of requests issued.
	Queries int

	// Failures counts failed requests by kind.
	Failures map[suggest.FailureKind]int
}

// Queries returns the standard query list for seed: the bare seed, each
// prefix variant, each suffix variant, then digits 0-9.
func Queries(seed string) []string {
	qs := make([]string, 0, 1+len(Prefixes)+len(Suffixes)+10)
	qs = append(qs, seed)
	for _, p := range Prefixes {
		qs = append(qs, p+" "+seed)
	}
	for _, s := range Suffixes {
		qs = append(qs, seed+" "+s)
	}
	for d := 0; d <= 9; d++ {
		qs = append(qs, seed+" "+strconv.Itoa(d))
	}
	return qs
}

// Expand runs the standard query pass for seed against svc, then the deep
// pass if enabled. Queries run one at a time. Failed queries are counted and
// skipped. If ctx is cancelled, Expand returns the partial result with
// ctx.Err().
func Expand(ctx context.Context, s Suggester, seed string, svc suggest.Service, opts Options) (Result, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return Result{}, ErrEmptySeed
	}

	r := &runner{
		s:    s,
		svc:  svc,
		opts: opts,
		set:  NewSet(strings.ToLower(seed)),
		res: Result{
			Seed:     seed,
			Service:  svc,
			Failures: make(map[suggest.FailureKind]int),
		},
	}

	queries := Queries(seed)
	r.planned = len(queries)
	for _, q := range queries {
		if err := r.query(ctx, q); err != nil {
			return r.result(), err
		}
	}

	if opts.Deep {
		if err := r.deep(ctx); err != nil {
			return r.result(), err
		}
	}

	return r.result(), nil
}

type runner struct {
	s       Suggester
	svc     suggest.Service
	opts    Options
	set     *Set
	res     Result
	planned int
}

func (r *runner) result() Result {
	r.res.Suggestions = r.set.Items()
	return r.res
}

// query issues one request and merges its suggestions into the set.
func (r *runner) query(ctx context.Context, q string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.res.Queries > 0 && r.opts.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.opts.Delay):
		}
	}

	start := time.Now()
	suggestions, err := r.s.Suggest(ctx, r.svc, q)
	r.res.Queries++

	outcome := "ok"
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		kind := suggest.KindOf(err)
		if kind == "" {
			kind = suggest.FailureNetwork
		}
		r.res.Failures[kind]++
		outcome = string(kind)
		r.opts.Logger.Debug().Err(err).Str("query", q).Msg("suggestion query failed")
	} else {
		r.set.AddAll(suggestions)
	}

	if r.opts.Recorder != nil {
		r.opts.Recorder.RecordQuery(string(r.svc), outcome, time.Since(start))
	}
	if r.opts.Progress != nil {
		r.opts.Progress(Progress{
			Query:      q,
			Completed:  r.res.Queries,
			Planned:    r.planned,
			Discovered: r.set.Len(),
			Err:        err,
		})
	}
	return nil
}
