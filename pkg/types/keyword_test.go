// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyAddAndCount(t *testing.T) {
	var tally Tally
	for _, i := range []Intent{IntentTransactional, IntentTransactional, IntentCommercial, IntentUnclassified, Intent("bogus")} {
		tally.Add(i)
	}
	assert.Equal(t, 2, tally.Count(IntentTransactional))
	assert.Equal(t, 1, tally.Count(IntentCommercial))
	assert.Equal(t, 0, tally.Count(IntentInformational))
	assert.Equal(t, 2, tally.Count(IntentUnclassified), "unknown intents count as unclassified")
	assert.Equal(t, 5, tally.Total())
	assert.Equal(t, 3, tally.Classified())
}

func TestTallyClassifiedShare(t *testing.T) {
	tally := Tally{Transactional: 1, Commercial: 1, Informational: 2, Unclassified: 4}
	s := tally.ClassifiedShare()

	assert.InDelta(t, 25.0, s.Transactional, 1e-9)
	assert.InDelta(t, 25.0, s.Commercial, 1e-9)
	assert.InDelta(t, 50.0, s.Informational, 1e-9)
	assert.Zero(t, s.Unclassified)
	assert.InDelta(t, 100.0, s.Transactional+s.Commercial+s.Informational, 1e-9)
}

func TestTallyOverallShare(t *testing.T) {
	tally := Tally{Transactional: 1, Commercial: 1, Informational: 2, Unclassified: 4}
	s := tally.OverallShare()

	assert.InDelta(t, 12.5, s.Transactional, 1e-9)
	assert.InDelta(t, 12.5, s.Commercial, 1e-9)
	assert.InDelta(t, 25.0, s.Informational, 1e-9)
	assert.InDelta(t, 50.0, s.Unclassified, 1e-9)
	assert.InDelta(t, 100.0, s.Transactional+s.Commercial+s.Informational+s.Unclassified, 1e-9)
	assert.InDelta(t, 50.0, s.Get(IntentUnclassified), 1e-9)
}

func TestTallySharesWithNothingClassified(t *testing.T) {
	tally := Tally{Unclassified: 3}
	assert.Equal(t, Shares{}, tally.ClassifiedShare())
	assert.InDelta(t, 100.0, tally.OverallShare().Unclassified, 1e-9)
	assert.Equal(t, Shares{}, Tally{}.OverallShare())
}

func TestTallySharesThirds(t *testing.T) {
	s := Tally{Transactional: 1, Commercial: 1, Informational: 1}.ClassifiedShare()
	assert.InDelta(t, 100.0, s.Transactional+s.Commercial+s.Informational, 1e-9)
}

func TestTallyDominant(t *testing.T) {
	tests := []struct {
		name   string
		tally  Tally
		want   Intent
		wantOK bool
	}{
		{"commercial leads", Tally{Transactional: 1, Commercial: 3, Informational: 2}, IntentCommercial, true},
		{"tie goes to priority", Tally{Transactional: 2, Commercial: 2}, IntentTransactional, true},
		{"unclassified ignored", Tally{Informational: 1, Unclassified: 9}, IntentInformational, true},
		{"empty", Tally{Unclassified: 2}, IntentUnclassified, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.tally.Dominant()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestRunHelpers(t *testing.T) {
	r := Run{
		Keywords: []ClassifiedKeyword{{Keyword: "a"}, {Keyword: "b"}},
		Failures: map[string]int{"timeout": 2, "parse": 1},
	}
	assert.Equal(t, []string{"a", "b"}, r.KeywordStrings())
	assert.Equal(t, 3, r.FailureCount())
}
