// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for keyword discovery runs.
package types

import "time"

// Intent is the coarse search-intent bucket assigned to a keyword.
type Intent string

const (
	IntentTransactional Intent = "transactional"
	IntentCommercial    Intent = "commercial"
	IntentInformational Intent = "informational"
	IntentUnclassified  Intent = "unclassified"
)

// Intents lists every bucket in classification priority order, with
// unclassified last.
var Intents = []Intent{IntentTransactional, IntentCommercial, IntentInformational, IntentUnclassified}

// ClassifiedKeyword pairs a discovered keyword with its intent bucket.
type ClassifiedKeyword struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Intent  Intent `json:"intent" yaml:"intent"`
}

// Run is the complete outcome of one discovery request: the seed, what was
// queried, what survived filtering, and how it classified.
type Run struct {
	// ID is a UUID assigned when the run starts.
	ID string `json:"id" yaml:"id"`

	// Seed is the keyword as entered, trimmed.
	Seed string `json:"seed" yaml:"seed"`

	// Service is the suggestion source that was queried (e.g. "google").
	Service string `json:"service" yaml:"service"`

	// Deep reports whether recursive re-querying was enabled.
	Deep bool `json:"deep" yaml:"deep"`

	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`

	// Queries is the number of suggestion requests issued.
	Queries int `json:"queries" yaml:"queries"`

	// Failures counts failed requests by failure kind (network, timeout,
	// http_status, parse).
	Failures map[string]int `json:"failures,omitempty" yaml:"failures,omitempty"`

	// Discovered is the size of the deduplicated suggestion set before filtering.
	Discovered int `json:"discovered" yaml:"discovered"`

	// Keywords holds the filtered keywords in discovery order with their intent.
	Keywords []ClassifiedKeyword `json:"keywords" yaml:"keywords"`

	Tally Tally `json:"tally" yaml:"tally"`

	// Warnings carries non-fatal notices such as an unknown service name.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// KeywordStrings returns the filtered keywords without their intent.
func (r Run) KeywordStrings() []string {
	out := make([]string, len(r.Keywords))
	for i, k := range r.Keywords {
		out[i] = k.Keyword
	}
	return out
}

// FailureCount returns the total number of failed requests.
func (r Run) FailureCount() int {
	n := 0
	for _, c := range r.Failures {
		n += c
	}
	return n
}

// Tally counts keywords per intent bucket.
type Tally struct {
	Transactional int `json:"transactional" yaml:"transactional"`
	Commercial    int `json:"commercial" yaml:"commercial"`
	Informational int `json:"informational" yaml:"informational"`
	Unclassified  int `json:"unclassified" yaml:"unclassified"`
}

// Add increments the count for bucket i.
func (t *Tally) Add(i Intent) {
	switch i {
	case IntentTransactional:
		t.Transactional++
	case IntentCommercial:
		t.Commercial++
	case IntentInformational:
		t.Informational++
	default:
		t.Unclassified++
	}
}

// Count returns the count for bucket i.
func (t Tally) Count(i Intent) int {
	switch i {
	case IntentTransactional:
		return t.Transactional
	case IntentCommercial:
		return t.Commercial
	case IntentInformational:
		return t.Informational
	default:
		return t.Unclassified
	}
}

// Total returns the number of tallied keywords, unclassified included.
func (t Tally) Total() int {
	return t.Classified() + t.Unclassified
}

// Classified returns the number of keywords that matched a bucket.
func (t Tally) Classified() int {
	return t.Transactional + t.Commercial + t.Informational
}

// Shares holds per-bucket percentages in the range 0-100.
type Shares struct {
	Transactional float64 `json:"transactional" yaml:"transactional"`
	Commercial    float64 `json:"commercial" yaml:"commercial"`
	Informational float64 `json:"informational" yaml:"informational"`
	Unclassified  float64 `json:"unclassified" yaml:"unclassified"`
}

// Get returns the percentage for bucket i.
func (s Shares) Get(i Intent) float64 {
	switch i {
	case IntentTransactional:
		return s.Transactional
	case IntentCommercial:
		return s.Commercial
	case IntentInformational:
		return s.Informational
	default:
		return s.Unclassified
	}
}

// ClassifiedShare returns bucket percentages relative to the classified
// total. Unclassified keywords are excluded from the denominator and the
// Unclassified share is always zero. All shares are zero when nothing
// classified.
func (t Tally) ClassifiedShare() Shares {
	total := t.Classified()
	if total == 0 {
		return Shares{}
	}
	return Shares{
		Transactional: percent(t.Transactional, total),
		Commercial:    percent(t.Commercial, total),
		Informational: percent(t.Informational, total),
	}
}

// OverallShare returns bucket percentages relative to every tallied
// keyword, unclassified included.
func (t Tally) OverallShare() Shares {
	total := t.Total()
	if total == 0 {
		return Shares{}
	}
	return Shares{
		Transactional: percent(t.Transactional, total),
		Commercial:    percent(t.Commercial, total),
		Informational: percent(t.Informational, total),
		Unclassified:  percent(t.Unclassified, total),
	}
}

// Dominant returns the classified bucket with the highest count. Ties go to
// the bucket earlier in priority order. ok is false when nothing classified.
func (t Tally) Dominant() (Intent, bool) {
	best, bestCount := IntentUnclassified, 0
	for _, i := range Intents[:3] {
		if c := t.Count(i); c > bestCount {
			best, bestCount = i, c
		}
	}
	return best, bestCount > 0
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
