package chainfulness

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"github.com/chainfulness/chainfulness-mcp/internal/pooldata"
	"github.com/chainfulness/chainfulness-mcp/internal/traces"
)

// AnalysisResult merges the two upstream responses for one wallet. The
// upstream bodies stay opaque; recommended_pools is attached only for the
// investments domain.
type AnalysisResult struct {
	Summary          json.RawMessage `json:"summary"`
	Details          json.RawMessage `json:"details"`
	RecommendedPools *pooldata.Table `json:"recommended_pools,omitempty"`
}

// Envelope is the wire shape of a composed analysis.
type Envelope struct {
	Analysis AnalysisResult `json:"analysis"`
}

// Composer turns one analyze request into the find+total upstream pair and
// merges the results.
type Composer struct {
	client *Client
	pools  pooldata.Table
	logger *slog.Logger
}

// NewComposer wires a composer over the upstream client. pools is the
// reference table loaded at startup; it is read-only from here on.
func NewComposer(client *Client, pools pooldata.Table, logger *slog.Logger) *Composer {
	return &Composer{client: client, pools: pools, logger: logger}
}

// Analyze issues the find call, then the total call, and merges the two into
// one result. If either call fails the whole operation fails with that error;
// no partial result is ever returned.
func (c *Composer) Analyze(ctx context.Context, rt ResourceType, wallet string, params url.Values) (AnalysisResult, error) {
	if !rt.Valid() {
		return AnalysisResult{}, ErrUnknownResourceType
	}

	ctx, span := traces.StartSpan(ctx, "chainfulness.analyze",
		traces.Resource(string(rt)),
		traces.Wallet(wallet),
	)
	defer span.End()

	details, err := c.client.Fetch(ctx, rt, wallet, suffixFind, params)
	if err != nil {
		c.logger.Error("find call failed", "resource", rt, "wallet", wallet, "error", err)
		return AnalysisResult{}, err
	}

	summary, err := c.client.Fetch(ctx, rt, wallet, suffixTotal, params)
	if err != nil {
		c.logger.Error("total call failed", "resource", rt, "wallet", wallet, "error", err)
		return AnalysisResult{}, err
	}

	result := AnalysisResult{Summary: summary, Details: details}
	if rt == ResourceInvestments {
		pools := c.pools
		result.RecommendedPools = &pools
	}

	c.logger.Info("analysis composed", "resource", rt, "wallet", wallet)
	return result, nil
}

// AnalyzeEndpoint guards the endpoint value before composing. Resource reads
// go through here; tool dispatch fixes the endpoint to analyze itself.
func (c *Composer) AnalyzeEndpoint(ctx context.Context, rt ResourceType, wallet string, endpoint Endpoint, params url.Values) (AnalysisResult, error) {
	if !endpoint.Valid() {
		return AnalysisResult{}, ErrUnsupportedEndpoint
	}
	return c.Analyze(ctx, rt, wallet, params)
}
