package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chainfulness/chainfulness-mcp/internal/chainfulness"
	"github.com/chainfulness/chainfulness-mcp/internal/logging"
)

// registerResources derives one resource per catalog tool. The resource
// address encodes the tool name as the wallet segment, matching the listing
// format {resourceType}://{toolName}~analyze; reads resolve whatever wallet
// segment the host actually asks for.
func registerResources(s *server.MCPServer, h *Handlers, demoWallet string) {
	for _, entry := range Catalog() {
		uri := fmt.Sprintf("%s://%s~%s", entry.Resource, entry.Tool.Name, chainfulness.EndpointAnalyze)
		description := entry.Tool.Description
		if demoWallet != "" {
			description = fmt.Sprintf("%s Example read: %s://%s~%s",
				description, entry.Resource, demoWallet, chainfulness.EndpointAnalyze)
		}
		s.AddResource(
			mcp.NewResource(uri,
				entry.Tool.Name,
				mcp.WithResourceDescription(description),
				mcp.WithMIMEType("application/json"),
			),
			h.ReadResource,
		)
	}
}

// ReadResource parses the resource URI and composes an analysis with default
// query parameters (currency=usd, no filters).
func (h *Handlers) ReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	rt, wallet, endpoint, err := chainfulness.ParseURI(req.Params.URI)
	if err != nil {
		logging.L(ctx).Error("invalid resource URI", "uri", req.Params.URI, "error", err)
		return nil, err
	}

	params := url.Values{}
	params.Set("currency", "usd")

	result, err := h.composer.AnalyzeEndpoint(ctx, rt, wallet, endpoint, params)
	if err != nil {
		logging.L(ctx).Error("resource read failed", "resource", rt, "wallet", wallet, "error", err)
		return nil, err
	}

	payload, err := json.MarshalIndent(chainfulness.Envelope{Analysis: result}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(payload),
		},
	}, nil
}
