// Package mcpserver exposes the Chainfulness analysis pipeline as MCP tools
// and resources.
package mcpserver

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/chainfulness/chainfulness-mcp/internal/chainfulness"
	"github.com/chainfulness/chainfulness-mcp/internal/config"
	"github.com/chainfulness/chainfulness-mcp/internal/pooldata"
)

// Version is reported to MCP hosts during initialization.
const Version = "0.1.0"

// New creates a configured MCP server with the three analysis tools and
// their derived resources registered.
func New(cfg *config.Config, pools pooldata.Table, logger *slog.Logger) (*server.MCPServer, error) {
	client := chainfulness.NewClient(cfg, logger)
	composer := chainfulness.NewComposer(client, pools, logger)

	decorate, err := SteeringFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	h := NewHandlers(composer, logger, decorate)

	s := server.NewMCPServer("chainfulness", Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	for _, entry := range Catalog() {
		s.AddTool(entry.Tool, h.Analyze(entry.Tool.Name, entry.Resource))
	}
	registerResources(s, h, cfg.DemoWallet)

	return s, nil
}
