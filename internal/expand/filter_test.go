// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package expand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		seed     string
		want     []string
	}{
		{
			"drops keywords missing a token",
			[]string{"nike shoes", "nike shoes review", "adidas shoes"},
			"nike shoes",
			[]string{"nike shoes", "nike shoes review"},
		},
		{
			"case insensitive both ways",
			[]string{"NIKE Running Shoes", "puma shoes"},
			"Nike shoes",
			[]string{"NIKE Running Shoes"},
		},
		{
			"tokens may appear in any order",
			[]string{"shoes by nike", "nike"},
			"nike shoes",
			[]string{"shoes by nike"},
		},
		{
			"substring match inside words",
			[]string{"nikeshoes outlet"},
			"nike shoes",
			[]string{"nikeshoes outlet"},
		},
		{
			"extra whitespace in seed",
			[]string{"buy laptop", "laptop"},
			"  buy   laptop ",
			[]string{"buy laptop"},
		},
		{
			"blank seed keeps everything",
			[]string{"a", "b"},
			"   ",
			[]string{"a", "b"},
		},
		{
			"unicode case folding",
			[]string{"STRASSE karte", "Straße Karte", "weg karte"},
			"straße",
			[]string{"STRASSE karte", "Straße Karte"},
		},
		{
			"nothing matches",
			[]string{"a", "b"},
			"z",
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.keywords, tt.seed))
		})
	}
}

func TestFilterOutputIsSubsetContainingAllTokens(t *testing.T) {
	keywords := []string{"red running shoes", "shoes red", "blue shoes", "RED SHOES SALE", "running"}
	seed := "Red Shoes"

	got := Filter(keywords, seed)
	input := NewSet(keywords...)
	for _, kw := range got {
		assert.True(t, input.Contains(kw), "%q not in input", kw)
		for _, tok := range strings.Fields(strings.ToLower(seed)) {
			assert.Contains(t, strings.ToLower(kw), tok)
		}
	}
	assert.Len(t, got, 3)
}
