// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"

	"github.com/pdiddy/keyword-discovery/pkg/types"
)

var serviceAdvice = map[string]string{
	"google":  "Google Ads search campaigns: bid on exact and phrase match for the transactional terms and add the rest as broad match with smart bidding.",
	"youtube": "YouTube in-stream and in-feed video ads: build video content around the informational terms and target the commercial ones with product videos.",
	"amazon":  "Amazon Sponsored Products: use the commercial and transactional terms as manual-targeting keywords and in listing titles.",
	"ebay":    "eBay Promoted Listings: mirror the transactional terms in listing titles and item specifics.",
	"bing":    "Microsoft Advertising: import the Google Ads campaigns; Bing traffic skews desktop, so favour desktop bid adjustments.",
	"yahoo":   "Yahoo search ads are served through Microsoft Advertising: target this keyword set there.",
}

var intentAdvice = map[types.Intent]string{
	types.IntentTransactional: "transactional: highest purchase intent, bid aggressively and send traffic to product or checkout pages.",
	types.IntentCommercial:    "commercial: buyers are comparing, use review and comparison landing pages plus remarketing.",
	types.IntentInformational: "informational: early research, target with content marketing, guides and awareness campaigns.",
}

// Recommendations returns canned ad-strategy advice for service and the
// classified shares in tally. Unknown services get no service line.
func Recommendations(service string, tally types.Tally) []string {
	var recs []string
	if s, ok := serviceAdvice[service]; ok {
		recs = append(recs, s)
	}

	dominant, ok := tally.Dominant()
	if !ok {
		return append(recs, "No keyword matched an intent bucket; review the list manually before building campaigns.")
	}

	share := tally.ClassifiedShare()
	for _, i := range types.Intents[:3] {
		if tally.Count(i) == 0 {
			continue
		}
		recs = append(recs, fmt.Sprintf("%.1f%% %s", share.Get(i), intentAdvice[i]))
	}
	return append(recs, fmt.Sprintf("Focus budget on %s keywords.", dominant))
}
