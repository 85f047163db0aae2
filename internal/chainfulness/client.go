package chainfulness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/chainfulness/chainfulness-mcp/internal/config"
	"github.com/chainfulness/chainfulness-mcp/internal/metrics"
	"github.com/chainfulness/chainfulness-mcp/internal/traces"
)

// Upstream URL suffixes. The API itself still speaks the two-call form:
// find returns per-item detail, total returns the aggregate summary.
const (
	suffixFind  = "find"
	suffixTotal = "total"
)

const (
	requestTimeout   = 60 * time.Second
	bodyExcerptLimit = 512
)

// Client issues authenticated GET requests against the Chainfulness API.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the configured upstream.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// Fetch performs one upstream GET and returns the raw JSON body. The body is
// passed through opaquely; callers own its interpretation.
func (c *Client) Fetch(ctx context.Context, rt ResourceType, wallet, suffix string, params url.Values) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/%s/%s/%s~%s", c.cfg.BaseURL, c.cfg.APIVersion, rt, wallet, suffix)

	ctx, span := traces.StartSpan(ctx, "chainfulness.fetch",
		traces.Resource(string(rt)),
		traces.Wallet(wallet),
		traces.Suffix(suffix),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	c.logger.Info("fetching upstream",
		"method", http.MethodGet,
		"url", u,
		"params", req.URL.RawQuery,
	)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(string(rt), suffix, 0, started)
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return nil, fmt.Errorf("%w: %s %s", ErrUpstreamTimeout, rt, suffix)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveUpstream(string(rt), suffix, resp.StatusCode, started)
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamRequest, err)
	}

	metrics.ObserveUpstream(string(rt), suffix, resp.StatusCode, started)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{Status: resp.StatusCode, Body: excerpt(body)}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s %s", ErrUpstreamDecode, rt, suffix)
	}
	return json.RawMessage(body), nil
}

func excerpt(body []byte) string {
	if len(body) > bodyExcerptLimit {
		body = body[:bodyExcerptLimit]
	}
	return string(body)
}
