// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// withEndpoint points svc at base for the duration of the test.
func withEndpoint(t *testing.T, svc Service, base string) {
	t.Helper()
	old := endpoints[svc]
	ep := old
	ep.base = base
	endpoints[svc] = ep
	t.Cleanup(func() { endpoints[svc] = old })
}

func testClient(ts *httptest.Server) *Client {
	return &Client{HTTP: ts.Client(), UserAgent: "test/0.1", Logger: zerolog.Nop()}
}

func jsonServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
}

// --- Service names ---

func TestParseService(t *testing.T) {
	tests := []struct {
		name   string
		want   Service
		wantOK bool
	}{
		{"google", Google, true},
		{"YouTube", YouTube, true},
		{" eBay ", EBay, true},
		{"AMAZON", Amazon, true},
		{"bing", Bing, true},
		{"yahoo", Yahoo, true},
		{"duckduckgo", Google, false},
		{"", Google, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseService(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestServiceString(t *testing.T) {
	assert.Equal(t, "eBay", EBay.String())
	assert.Equal(t, "YouTube", YouTube.String())
	assert.Equal(t, "other", Service("other").String())
}

func TestEveryServiceHasEndpoint(t *testing.T) {
	for _, s := range Services {
		_, ok := endpoints[s]
		assert.True(t, ok, "missing endpoint for %s", s)
	}
}

// --- Request construction ---

func TestRequestURL(t *testing.T) {
	u := requestURL(Google, "nike shoes")
	assert.Contains(t, u, "suggestqueries.google.com")
	assert.Contains(t, u, "output=firefox")
	assert.Contains(t, u, "q=nike+shoes")

	yt := requestURL(YouTube, "nike")
	assert.Contains(t, yt, "ds=yt")

	assert.Contains(t, requestURL(EBay, "nike"), "kwd=nike")
	assert.Contains(t, requestURL(Yahoo, "nike"), "command=nike")
	assert.Contains(t, requestURL(Bing, "nike"), "query=nike")
}

func TestRequestURLUnknownServiceUsesGoogle(t *testing.T) {
	assert.Equal(t, requestURL(Google, "x"), requestURL(Service("nope"), "x"))
}

func TestSuggestSendsEncodedQueryAndHeaders(t *testing.T) {
	var captured *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `["nike shoes & socks",[]]`)
	}))
	defer ts.Close()
	withEndpoint(t, Google, ts.URL)

	_, err := testClient(ts).Suggest(context.Background(), Google, "nike shoes & socks")
	require.NoError(t, err)

	assert.Equal(t, "nike shoes & socks", captured.URL.Query().Get("q"))
	assert.Equal(t, "firefox", captured.URL.Query().Get("output"))
	assert.Equal(t, "test/0.1", captured.Header.Get("User-Agent"))
}

// --- Response shapes ---

func TestSuggestResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		svc  Service
		body string
		want []string
	}{
		{"google", Google, `["nike",["nike shoes","nike air"]]`, []string{"nike shoes", "nike air"}},
		{"youtube", YouTube, `["nike",["nike ad"],[],{"k":1}]`, []string{"nike ad"}},
		{"bing", Bing, `["nike",["nike outlet"]]`, []string{"nike outlet"}},
		{"amazon", Amazon, `["nike",["nike socks"],[{}],[]]`, []string{"nike socks"}},
		{"yahoo", Yahoo, `{"q":"nike","r":[{"k":"nike store","fd":{}},{"k":"nike sale"}]}`, []string{"nike store", "nike sale"}},
		{"ebay", EBay, `{"prefix":"nike","res":[{"query":"nike dunk"},{"query":"nike sb"}]}`, []string{"nike dunk", "nike sb"}},
		{"empty list", Google, `["nike",[]]`, []string{}},
		{"non-string entries skipped", Google, `["nike",["a",1,null,"b"]]`, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := jsonServer(tt.body)
			defer ts.Close()
			withEndpoint(t, tt.svc, ts.URL)

			got, err := testClient(ts).Suggest(context.Background(), tt.svc, "nike")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestUnknownServiceUsesGoogleShape(t *testing.T) {
	ts := jsonServer(`["q",["from google"]]`)
	defer ts.Close()
	withEndpoint(t, Google, ts.URL)

	got, err := testClient(ts).Suggest(context.Background(), Service("altavista"), "q")
	require.NoError(t, err)
	assert.Equal(t, []string{"from google"}, got)
}

// --- Failures ---

func TestSuggestHTTPStatusFailure(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusTooManyRequests} {
		t.Run(fmt.Sprintf("HTTP %d", status), func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))
			defer ts.Close()
			withEndpoint(t, Bing, ts.URL)

			got, err := testClient(ts).Suggest(context.Background(), Bing, "x")
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrHTTPStatus)
			assert.Equal(t, FailureHTTPStatus, KindOf(err))

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, status, fe.StatusCode)
			assert.Equal(t, Bing, fe.Service)
			assert.Equal(t, "x", fe.Query)
		})
	}
}

func TestSuggestParseFailure(t *testing.T) {
	tests := []struct {
		name string
		svc  Service
		body string
	}{
		{"not json", Google, `<html>blocked</html>`},
		{"short array", Google, `["only"]`},
		{"list not array", Amazon, `["q","nope"]`},
		{"yahoo missing r", Yahoo, `{"q":"x"}`},
		{"ebay missing res", EBay, `{"prefix":"x"}`},
		{"ebay array body", EBay, `["x",[]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := jsonServer(tt.body)
			defer ts.Close()
			withEndpoint(t, tt.svc, ts.URL)

			_, err := testClient(ts).Suggest(context.Background(), tt.svc, "x")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.NotErrorIs(t, err, ErrNetwork)
		})
	}
}

func TestSuggestTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()
	withEndpoint(t, Google, ts.URL)

	c := testClient(ts)
	c.HTTP.Timeout = 50 * time.Millisecond

	_, err := c.Suggest(context.Background(), Google, "slow")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestSuggestNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()
	withEndpoint(t, Google, base)

	c := &Client{HTTP: &http.Client{Timeout: time.Second}, Logger: zerolog.Nop()}
	_, err := c.Suggest(context.Background(), Google, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, FailureNetwork, KindOf(err))
}

func TestKindOfNonFetchError(t *testing.T) {
	assert.Equal(t, FailureKind(""), KindOf(errors.New("plain")))
}

// --- Client construction ---

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(types.HTTPConfig{InsecureSkipVerify: true}, zerolog.Nop())
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
	assert.Equal(t, DefaultUserAgent, c.UserAgent)
	assert.Equal(t, 0, c.Retries)

	tr, ok := c.HTTP.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)
}

func TestNewClientOverrides(t *testing.T) {
	c := NewClient(types.HTTPConfig{Timeout: 2 * time.Second, UserAgent: "ua/1", Retries: 2}, zerolog.Nop())
	assert.Equal(t, 2*time.Second, c.HTTP.Timeout)
	assert.Equal(t, "ua/1", c.UserAgent)
	assert.Equal(t, 2, c.Retries)
}
