// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package expand

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter keeps the keywords that contain every whitespace-separated token of
// seed as a case-insensitive substring. Order is preserved. A seed with no
// tokens keeps everything.
func Filter(keywords []string, seed string) []string {
	fold := cases.Fold()
	tokens := strings.Fields(fold.String(seed))

	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if containsAll(fold.String(kw), tokens) {
			out = append(out, kw)
		}
	}
	return out
}

func containsAll(s string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}
