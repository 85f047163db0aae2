// Chainfulness MCP Server - exposes wallet analytics as MCP tools for LLMs
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/chainfulness/chainfulness-mcp/internal/config"
	"github.com/chainfulness/chainfulness-mcp/internal/health"
	"github.com/chainfulness/chainfulness-mcp/internal/logging"
	"github.com/chainfulness/chainfulness-mcp/internal/mcpserver"
	"github.com/chainfulness/chainfulness-mcp/internal/metrics"
	"github.com/chainfulness/chainfulness-mcp/internal/pooldata"
	"github.com/chainfulness/chainfulness-mcp/internal/traces"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx := context.Background()
	shutdownTraces, err := traces.Init(ctx, cfg.OTLPAddr, logger)
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTraces(ctx); err != nil {
			logger.Error("trace shutdown failed", "error", err)
		}
	}()

	pools, err := pooldata.Load(cfg.PoolDataFile)
	if err != nil {
		// Pool recommendations degrade gracefully; analysis still works.
		logger.Warn("failed to load pool data, recommendations disabled",
			"file", cfg.PoolDataFile, "error", err)
		pools = pooldata.Table{}
	}
	metrics.PoolTableRows.Set(float64(pools.Len()))
	logger.Info("pool data loaded", "file", cfg.PoolDataFile, "rows", pools.Len())

	if cfg.MetricsAddr != "" {
		go serveDiagnostics(cfg, pools, logger)
	}

	s, err := mcpserver.New(cfg, pools, logger)
	if err != nil {
		logger.Error("failed to build MCP server", "error", err)
		os.Exit(1)
	}

	if cfg.HTTPAddr != "" {
		logger.Info("serving MCP over streamable HTTP", "addr", cfg.HTTPAddr)
		httpServer := server.NewStreamableHTTPServer(s)
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			logger.Error("MCP server error", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("serving MCP over stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// serveDiagnostics runs the metrics and health endpoints on their own
// listener, away from the MCP transport.
func serveDiagnostics(cfg *config.Config, pools pooldata.Table, logger *slog.Logger) {
	registry := health.NewRegistry()
	registry.Register("pool_data", func(ctx context.Context) health.Status {
		return health.Status{
			Name:    "pool_data",
			Healthy: true,
			Detail:  fmt.Sprintf("%d rows", pools.Len()),
		}
	})
	registry.Register("upstream_config", func(ctx context.Context) health.Status {
		s := health.Status{Name: "upstream_config", Healthy: true}
		if cfg.APIKey == "" {
			s.Healthy = false
			s.Detail = "API key not configured"
		}
		return s
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/healthz", registry.Handler())

	logger.Info("diagnostics listener started", "addr", cfg.MetricsAddr)
	if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
		logger.Error("diagnostics listener failed", "error", err)
	}
}
