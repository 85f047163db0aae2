package pooldata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `platform;network;pool;apy;tvl_usd
uniswap-v3;ethereum;USDC/WETH;12.4;120000000
aave-v3;polygon;USDC;4.1;80000000
curve;ethereum;3pool;2.9;150000000
`

func TestParse_Basic(t *testing.T) {
	table, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"platform", "network", "pool", "apy", "tvl_usd"}, table.Columns)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, "uniswap-v3", table.Rows[0].Get("platform"))
	assert.Equal(t, "80000000", table.Rows[1].Get("tvl_usd"))
}

func TestParse_RowJSONPreservesColumnOrder(t *testing.T) {
	table, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	data, err := json.Marshal(table.Rows[0])
	require.NoError(t, err)

	// Keys must appear in header order, not alphabetical order.
	assert.Equal(t, `{"platform":"uniswap-v3","network":"ethereum","pool":"USDC/WETH","apy":"12.4","tvl_usd":"120000000"}`, string(data))
}

func TestParse_ShortRowPadded(t *testing.T) {
	table, err := Parse(strings.NewReader("a;b;c\n1;2\n"))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "2", table.Rows[0].Get("b"))
	assert.Equal(t, "", table.Rows[0].Get("c"))
}

func TestParse_Empty(t *testing.T) {
	table, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestTable_EmptyMarshalsToArray(t *testing.T) {
	data, err := json.Marshal(Table{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestLoad_MissingFileYieldsEmptyTable(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}
