package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chainfulness/chainfulness-mcp/internal/chainfulness"
	"github.com/chainfulness/chainfulness-mcp/internal/validation"
)

// Tool definitions for the Chainfulness MCP server.
// Descriptions are what the LLM reads to decide which tool to use.

var ToolAnalyzeAssets = mcp.NewTool("analyze_assets",
	mcp.WithDescription(
		"Comprehensive blockchain asset analysis that combines detailed token information with portfolio summaries. "+
			"Includes token details (name, symbol, contract), financial metrics (current value, historical performance), "+
			"token classification (active/spam), and aggregated portfolio overview with asset category breakdowns across networks."),
	mcp.WithString("wallet",
		mcp.Required(),
		mcp.Description("The address of the wallet"),
		mcp.Pattern(validation.WalletPattern)),
	mcp.WithString("network",
		mcp.Description("The blockchain network to query"),
		mcp.Enum(validation.Networks()...),
		mcp.DefaultString("all")),
)

var ToolAnalyzeTransactions = mcp.NewTool("analyze_transactions",
	mcp.WithDescription(
		"Complete blockchain transaction analysis combining detailed history with aggregate summaries. "+
			"Provides transaction details (hash, timestamp, type), interaction data (contracts, tokens), security classification, "+
			"along with overall statistics including total transaction count, profit/loss values, and activity patterns across specified time periods."),
	mcp.WithString("wallet",
		mcp.Required(),
		mcp.Description("The address of the wallet"),
		mcp.Pattern(validation.WalletPattern)),
	mcp.WithString("network",
		mcp.Description("The blockchain network to query"),
		mcp.Enum(validation.Networks()...),
		mcp.DefaultString("all")),
	mcp.WithNumber("fromDate",
		mcp.Description("Start timestamp for transaction query (in milliseconds)")),
	mcp.WithNumber("toDate",
		mcp.Description("End timestamp for transaction query (in milliseconds)")),
)

var ToolAnalyzeInvestments = mcp.NewTool("analyze_investments",
	mcp.WithDescription(
		"In-depth investment position analysis combining position details with portfolio metrics. "+
			"Includes position information (type, platform, tokens), value metrics (ROI, APY), market context, collateral status, "+
			"along with portfolio-wide statistics, platform-specific details, and consolidated lending metrics across networks."),
	mcp.WithString("wallet",
		mcp.Required(),
		mcp.Description("The address of the wallet"),
		mcp.Pattern(validation.WalletPattern)),
	mcp.WithString("network",
		mcp.Description("The blockchain network to query"),
		mcp.Enum(validation.Networks()...),
		mcp.DefaultString("all")),
)

// CatalogEntry binds a tool to its analytic domain. The binding is fixed
// here, at catalog definition; dispatch never derives the domain from the
// tool name.
type CatalogEntry struct {
	Tool     mcp.Tool
	Resource chainfulness.ResourceType
}

// Catalog returns the three analysis tools in listing order.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{Tool: ToolAnalyzeAssets, Resource: chainfulness.ResourceAssets},
		{Tool: ToolAnalyzeTransactions, Resource: chainfulness.ResourceTransactions},
		{Tool: ToolAnalyzeInvestments, Resource: chainfulness.ResourceInvestments},
	}
}
