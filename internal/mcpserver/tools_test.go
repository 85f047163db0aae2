package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfulness/chainfulness-mcp/internal/chainfulness"
)

func TestCatalog_BindsEachToolToItsDomain(t *testing.T) {
	entries := Catalog()
	require.Len(t, entries, 3)

	want := map[string]chainfulness.ResourceType{
		"analyze_assets":       chainfulness.ResourceAssets,
		"analyze_transactions": chainfulness.ResourceTransactions,
		"analyze_investments":  chainfulness.ResourceInvestments,
	}
	seen := map[string]bool{}
	for _, entry := range entries {
		rt, ok := want[entry.Tool.Name]
		require.True(t, ok, "unexpected tool %q", entry.Tool.Name)
		assert.Equal(t, rt, entry.Resource, "tool %q", entry.Tool.Name)
		seen[entry.Tool.Name] = true
	}
	assert.Len(t, seen, 3)
}

func TestCatalog_ToolSchemas(t *testing.T) {
	for _, entry := range Catalog() {
		t.Run(entry.Tool.Name, func(t *testing.T) {
			assert.NotEmpty(t, entry.Tool.Description)
			assert.Contains(t, entry.Tool.InputSchema.Required, "wallet")

			wallet, ok := entry.Tool.InputSchema.Properties["wallet"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, `^0x[a-fA-F0-9]{40}$`, wallet["pattern"])

			network, ok := entry.Tool.InputSchema.Properties["network"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "all", network["default"])
			assert.NotContains(t, entry.Tool.InputSchema.Required, "network")
		})
	}
}

func TestCatalog_OnlyTransactionsHasDateParams(t *testing.T) {
	for _, entry := range Catalog() {
		_, hasFrom := entry.Tool.InputSchema.Properties["fromDate"]
		_, hasTo := entry.Tool.InputSchema.Properties["toDate"]
		if entry.Resource == chainfulness.ResourceTransactions {
			assert.True(t, hasFrom, "transactions tool needs fromDate")
			assert.True(t, hasTo, "transactions tool needs toDate")
		} else {
			assert.False(t, hasFrom, "tool %q should not expose fromDate", entry.Tool.Name)
			assert.False(t, hasTo, "tool %q should not expose toDate", entry.Tool.Name)
		}
	}
}
