package chainfulness

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfulness/chainfulness-mcp/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string) *Client {
	cfg := &config.Config{
		APIKey:     "test-key",
		BaseURL:    baseURL,
		APIVersion: "v01",
	}
	return NewClient(cfg, testLogger())
}

func TestClientFetch_RequestShape(t *testing.T) {
	var gotPath, gotQuery, gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAPIKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"balance": 42}`))
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("currency", "usd")
	params.Set("network", "ethereum")

	body, err := testClient(srv.URL).Fetch(context.Background(),
		ResourceAssets, "0xabc", suffixFind, params)
	require.NoError(t, err)

	assert.JSONEq(t, `{"balance": 42}`, string(body))
	assert.Equal(t, "/v01/assets/0xabc~find", gotPath)
	assert.Equal(t, "currency=usd&network=ethereum", gotQuery)
	assert.Equal(t, "test-key", gotAPIKey)
}

func TestClientFetch_TotalSuffix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(),
		ResourceInvestments, "0xdef", suffixTotal, nil)
	require.NoError(t, err)
	assert.Equal(t, "/v01/investments/0xdef~total", gotPath)
}

func TestClientFetch_Non2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "invalid api key"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(),
		ResourceAssets, "0xabc", suffixFind, nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.Contains(t, httpErr.Body, "invalid api key")
}

func TestClientFetch_BodyExcerptTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(),
		ResourceAssets, "0xabc", suffixFind, nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Len(t, httpErr.Body, bodyExcerptLimit)
}

func TestClientFetch_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(),
		ResourceAssets, "0xabc", suffixFind, nil)
	assert.ErrorIs(t, err, ErrUpstreamDecode)
}

func TestClientFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(),
		ResourceAssets, "0xabc", suffixFind, nil)
	assert.ErrorIs(t, err, ErrUpstreamRequest)
}

func TestClientFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := testClient(srv.URL).Fetch(ctx, ResourceAssets, "0xabc", suffixFind, nil)
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}

func TestHTTPError_Message(t *testing.T) {
	err := &HTTPError{Status: 404, Body: "not found"}
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "not found")

	var target *HTTPError
	assert.True(t, errors.As(error(err), &target))
}
