// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package suggest queries autocomplete endpoints of search and e-commerce
// services and returns their suggestion strings.
package suggest

import (
	"net/url"
	"strings"
)

// Service identifies a supported suggestion source.
type Service string

const (
	Google  Service = "google"
	YouTube Service = "youtube"
	Amazon  Service = "amazon"
	EBay    Service = "ebay"
	Bing    Service = "bing"
	Yahoo   Service = "yahoo"
)

// Services lists the supported sources in display order.
var Services = []Service{Google, YouTube, Amazon, EBay, Bing, Yahoo}

var displayNames = map[Service]string{
	Google:  "Google",
	YouTube: "YouTube",
	Amazon:  "Amazon",
	EBay:    "eBay",
	Bing:    "Bing",
	Yahoo:   "Yahoo",
}

// ParseService resolves a service name case-insensitively. Unknown or empty
// names resolve to Google with ok set to false.
func ParseService(name string) (Service, bool) {
	s := Service(strings.ToLower(strings.TrimSpace(name)))
	if _, known := endpoints[s]; known {
		return s, true
	}
	return Google, false
}

// String returns the service's display name (e.g. "eBay").
func (s Service) String() string {
	if n, ok := displayNames[s]; ok {
		return n
	}
	return string(s)
}

// endpoint pairs a request template with the parser for its response shape.
type endpoint struct {
	base  string
	param string
	fixed url.Values
	parse func([]byte) ([]string, error)
}

// endpoints is the per-service lookup table. Declared as a var so tests can
// point entries at an httptest server.
var endpoints = map[Service]endpoint{
	Google: {
		base:  "http://suggestqueries.google.com/complete/search",
		param: "q",
		fixed: url.Values{"output": {"firefox"}},
		parse: parseArray,
	},
	YouTube: {
		base:  "http://suggestqueries.google.com/complete/search",
		param: "q",
		fixed: url.Values{"output": {"firefox"}, "ds": {"yt"}},
		parse: parseArray,
	},
	Bing: {
		base:  "https://api.bing.com/osjson.aspx",
		param: "query",
		parse: parseArray,
	},
	Amazon: {
		base:  "https://completion.amazon.com/search/complete",
		param: "q",
		fixed: url.Values{"search-alias": {"aps"}, "client": {"amazon-search-ui"}, "mkt": {"1"}},
		parse: parseArray,
	},
	Yahoo: {
		base:  "https://search.yahoo.com/sugg/gossip/gossip-us-ura/",
		param: "command",
		fixed: url.Values{"output": {"sd1"}},
		parse: parseYahoo,
	},
	EBay: {
		base:  "https://autosug.ebay.com/autosug",
		param: "kwd",
		parse: parseEBay,
	},
}

// lookup returns the endpoint for s, falling back to Google's.
func lookup(s Service) endpoint {
	if ep, ok := endpoints[s]; ok {
		return ep
	}
	return endpoints[Google]
}

// requestURL builds the GET URL for query against s.
func requestURL(s Service, query string) string {
	ep := lookup(s)
	params := url.Values{}
	for k, v := range ep.fixed {
		params[k] = v
	}
	params.Set(ep.param, query)
	return ep.base + "?" + params.Encode()
}
