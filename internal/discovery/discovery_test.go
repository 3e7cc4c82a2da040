// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/keyword-discovery/internal/expand"
	"github.com/pdiddy/keyword-discovery/internal/suggest"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

type stubSuggester struct {
	out []string
	err error
	svc []suggest.Service
}

func (s *stubSuggester) Suggest(_ context.Context, svc suggest.Service, _ string) ([]string, error) {
	s.svc = append(s.svc, svc)
	return s.out, s.err
}

type stubRecorder struct {
	service    string
	discovered int
	kept       int
	calls      int
}

func (r *stubRecorder) RecordRun(service string, discovered, kept int) {
	r.service, r.discovered, r.kept = service, discovered, kept
	r.calls++
}

func TestRunNikeShoes(t *testing.T) {
	s := &stubSuggester{out: []string{"nike shoes", "nike shoes review", "adidas shoes"}}
	rec := &stubRecorder{}

	run, err := Run(context.Background(), s, Request{Seed: "nike shoes", Service: "amazon"}, rec)
	require.NoError(t, err)

	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)
	assert.Equal(t, "nike shoes", run.Seed)
	assert.Equal(t, "amazon", run.Service)
	assert.Equal(t, 3, run.Discovered)
	assert.Equal(t, []string{"nike shoes", "nike shoes review"}, run.KeywordStrings())
	assert.Equal(t, types.IntentCommercial, run.Keywords[1].Intent)
	assert.Equal(t, len(run.Keywords), run.Tally.Total())
	assert.Empty(t, run.Warnings)

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "amazon", rec.service)
	assert.Equal(t, 3, rec.discovered)
	assert.Equal(t, 2, rec.kept)
}

func TestRunBuyLaptopIsTransactional(t *testing.T) {
	s := &stubSuggester{out: []string{"buy laptop cheap"}}
	run, err := Run(context.Background(), s, Request{Seed: "buy laptop", Service: "google"}, nil)
	require.NoError(t, err)

	require.Len(t, run.Keywords, 2)
	assert.Equal(t, types.ClassifiedKeyword{Keyword: "buy laptop cheap", Intent: types.IntentTransactional}, run.Keywords[1])
	assert.Equal(t, 2, run.Tally.Transactional)
}

func TestRunEverySuggestionFails(t *testing.T) {
	s := &stubSuggester{err: &suggest.FetchError{Kind: suggest.FailureNetwork, Err: errors.New("refused")}}
	run, err := Run(context.Background(), s, Request{Seed: "Nike Shoes", Service: "google"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"nike shoes"}, run.KeywordStrings())
	assert.Equal(t, 1, run.Discovered)
	assert.Equal(t, run.Queries, run.Failures["network"])
	assert.Equal(t, run.Queries, run.FailureCount())
}

func TestRunEmptySeed(t *testing.T) {
	s := &stubSuggester{}
	_, err := Run(context.Background(), s, Request{Seed: "  "}, nil)
	assert.ErrorIs(t, err, expand.ErrEmptySeed)
	assert.Empty(t, s.svc)
}

func TestRunUnknownServiceFallsBackToGoogle(t *testing.T) {
	s := &stubSuggester{}
	run, err := Run(context.Background(), s, Request{Seed: "x", Service: "askjeeves"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "google", run.Service)
	require.Len(t, run.Warnings, 1)
	assert.Contains(t, run.Warnings[0], "askjeeves")
	for _, svc := range s.svc {
		assert.Equal(t, suggest.Google, svc)
	}
}

func TestRunCancelledReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &stubRecorder{}
	run, err := Run(ctx, &stubSuggester{out: []string{"x y"}}, Request{Seed: "x"}, rec)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"x"}, run.KeywordStrings())
	assert.Zero(t, rec.calls, "cancelled runs are not recorded")
}

func TestClassify(t *testing.T) {
	run := types.Run{Seed: "red shoes"}
	Classify(&run, []string{"red shoes", "cheap red shoes", "blue shoes"})
	assert.Equal(t, []string{"red shoes", "cheap red shoes"}, run.KeywordStrings())
	assert.Equal(t, types.Tally{Transactional: 1, Unclassified: 1}, run.Tally)
}
