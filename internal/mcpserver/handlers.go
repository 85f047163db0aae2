package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chainfulness/chainfulness-mcp/internal/chainfulness"
	"github.com/chainfulness/chainfulness-mcp/internal/logging"
	"github.com/chainfulness/chainfulness-mcp/internal/metrics"
	"github.com/chainfulness/chainfulness-mcp/internal/traces"
	"github.com/chainfulness/chainfulness-mcp/internal/validation"
)

// Handlers dispatches tool calls into the analysis composer.
type Handlers struct {
	composer *chainfulness.Composer
	logger   *slog.Logger
	decorate Decorator // nil disables steering decoration
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(composer *chainfulness.Composer, logger *slog.Logger, decorate Decorator) *Handlers {
	return &Handlers{composer: composer, logger: logger, decorate: decorate}
}

// Analyze builds the handler for one catalog entry. All three tools share
// this code path; only the bound resource type differs.
func (h *Handlers) Analyze(toolName string, rt chainfulness.ResourceType) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		started := time.Now()
		ctx = logging.WithRequestID(ctx, uuid.NewString())
		ctx, span := traces.StartSpan(ctx, "mcp.tool_call", traces.Tool(toolName), traces.Resource(string(rt)))
		defer span.End()

		wallet := req.GetString("wallet", "")
		if wallet == "" {
			metrics.ObserveToolCall(toolName, "invalid_arguments", started)
			return mcp.NewToolResultError("invalid arguments: wallet is required"), nil
		}
		wallet = validation.SanitizeWallet(wallet)
		if !validation.IsValidWalletAddress(wallet) {
			metrics.ObserveToolCall(toolName, "invalid_arguments", started)
			return mcp.NewToolResultError("invalid arguments: wallet must be 0x followed by 40 hex characters"), nil
		}

		network := req.GetString("network", "all")
		if !validation.IsValidNetwork(network) {
			metrics.ObserveToolCall(toolName, "invalid_arguments", started)
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: unknown network %q", network)), nil
		}

		params := buildParams(network, int64(req.GetInt("fromDate", 0)), int64(req.GetInt("toDate", 0)))

		result, err := h.composer.Analyze(ctx, rt, wallet, params)
		if err != nil {
			logging.L(ctx).Error("tool call failed",
				"tool", toolName, "resource", rt, "wallet", wallet, "error", err)
			metrics.ObserveToolCall(toolName, "error", started)
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := json.MarshalIndent(chainfulness.Envelope{Analysis: result}, "", "  ")
		if err != nil {
			metrics.ObserveToolCall(toolName, "error", started)
			return mcp.NewToolResultError(fmt.Sprintf("marshal analysis: %v", err)), nil
		}

		text := string(payload)
		if h.decorate != nil {
			text = h.decorate(text)
		}

		metrics.ObserveToolCall(toolName, "ok", started)
		return mcp.NewToolResultText(text), nil
	}
}

// buildParams assembles the upstream query. currency is always present;
// network is omitted for "all"; the date bounds are omitted when unset.
func buildParams(network string, fromDate, toDate int64) url.Values {
	params := url.Values{}
	params.Set("currency", "usd")
	if network != "" && network != "all" {
		params.Set("network", network)
	}
	if fromDate != 0 {
		params.Set("fromDate", strconv.FormatInt(fromDate, 10))
	}
	if toDate != 0 {
		params.Set("toDate", strconv.FormatInt(toDate, 10))
	}
	return params
}
