// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent buckets keywords into coarse search-intent classes by
// matching static term lists.
package intent

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// Terms holds the match lists per bucket. A keyword belongs to the first
// bucket in priority order whose list has a term that is a substring of it.
var Terms = map[types.Intent][]string{
	types.IntentTransactional: {
		"buy", "cheap", "price", "cost", "deal", "discount", "coupon", "promo",
		"order", "purchase", "sale", "shop", "store", "shipping", "for sale",
		"near me", "rent", "hire", "subscribe", "download",
	},
	types.IntentCommercial: {
		"best", "review", "vs", "versus", "compare", "comparison",
		"alternative", "brand", "rating", "rated", "affordable", "luxury",
		"premium", "quality", "recommended",
	},
	types.IntentInformational: {
		"how", "what", "why", "when", "where", "who", "which", "guide",
		"tutorial", "tips", "ideas", "meaning", "definition", "learn",
		"example", "history", "benefits",
	},
}

// priority is the fixed match order.
var priority = []types.Intent{types.IntentTransactional, types.IntentCommercial, types.IntentInformational}

// Classifier matches keywords against Terms. The zero value is not usable;
// call New.
type Classifier struct {
	fold  cases.Caser
	terms map[types.Intent][]string
}

// New returns a Classifier over the current Terms. A Classifier is not safe
// for concurrent use.
func New() *Classifier {
	c := &Classifier{fold: cases.Fold(), terms: make(map[types.Intent][]string, len(Terms))}
	for i, list := range Terms {
		folded := make([]string, len(list))
		for j, term := range list {
			folded[j] = c.fold.String(term)
		}
		c.terms[i] = folded
	}
	return c
}

// Classify returns the bucket for keyword.
func (c *Classifier) Classify(keyword string) types.Intent {
	kw := c.fold.String(keyword)
	for _, i := range priority {
		for _, term := range c.terms[i] {
			if strings.Contains(kw, term) {
				return i
			}
		}
	}
	return types.IntentUnclassified
}

// ClassifyAll classifies keywords in order.
func (c *Classifier) ClassifyAll(keywords []string) []types.ClassifiedKeyword {
	out := make([]types.ClassifiedKeyword, len(keywords))
	for i, kw := range keywords {
		out[i] = types.ClassifiedKeyword{Keyword: kw, Intent: c.Classify(kw)}
	}
	return out
}

// Count tallies classified keywords per bucket.
func Count(keywords []types.ClassifiedKeyword) types.Tally {
	var t types.Tally
	for _, k := range keywords {
		t.Add(k.Intent)
	}
	return t
}
