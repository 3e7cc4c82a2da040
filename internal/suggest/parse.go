// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"encoding/json"
	"fmt"
)

// parseArray reads the OpenSearch-style shape used by Google, YouTube, Bing
// and Amazon: ["query", ["suggestion", ...], ...]. Non-string entries in the
// suggestion list are skipped.
func parseArray(body []byte) ([]string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, err
	}
	if len(top) < 2 {
		return nil, fmt.Errorf("expected at least 2 elements, got %d", len(top))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(top[1], &items); err != nil {
		return nil, fmt.Errorf("suggestion list: %w", err)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

// Yahoo gossip JSON structures.
type yahooResponse struct {
	R []yahooSuggestion `json:"r"`
}

type yahooSuggestion struct {
	K string `json:"k"`
}

// parseYahoo reads {"r": [{"k": "suggestion"}, ...]}.
func parseYahoo(body []byte) ([]string, error) {
	var resp yahooResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.R == nil {
		return nil, fmt.Errorf(`missing "r" list`)
	}
	out := make([]string, 0, len(resp.R))
	for _, s := range resp.R {
		out = append(out, s.K)
	}
	return out, nil
}

// eBay autosug JSON structures.
type ebayResponse struct {
	Res []ebaySuggestion `json:"res"`
}

type ebaySuggestion struct {
	Query string `json:"query"`
}

// parseEBay reads {"res": [{"query": "suggestion"}, ...]}.
func parseEBay(body []byte) ([]string, error) {
	var resp ebayResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.Res == nil {
		return nil, fmt.Errorf(`missing "res" list`)
	}
	out := make([]string, 0, len(resp.Res))
	for _, s := range resp.Res {
		out = append(out, s.Query)
	}
	return out, nil
}
