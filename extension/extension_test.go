package extension

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chain-registry/endpoint"
)

func Test_Parse(t *testing.T) {
	t.Parallel()

	give := `
chains:
  1:
    supported: true
    monitored: true
    rpc:
      - provider: alchemy
        family: eth
        subnetwork: mainnet
        own_node: true
      - url: https://mainnet.infura.io/v3/{INFURA_API_KEY}
    fetcher:
      type: etherscan
      url: https://etherscan.io/
  16718:
    supported: true
    monitored: false
`

	tbl, err := Parse([]byte(give))
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []uint64{1, 16718}, tbl.ChainIDs())

	ext, ok := tbl.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, Extension{
		Supported: true,
		Monitored: true,
		RPC: []endpoint.Source{
			{
				Provider:   endpoint.ProviderAlchemy,
				Family:     endpoint.FamilyEthereum,
				Subnetwork: "mainnet",
				OwnNode:    true,
			},
			{URL: "https://mainnet.infura.io/v3/{INFURA_API_KEY}"},
		},
		Fetcher: &Fetcher{Type: FetcherEtherscan, URL: "https://etherscan.io/"},
	}, ext)

	ext, ok = tbl.Lookup(16718)
	require.True(t, ok)
	assert.Equal(t, Extension{Supported: true}, ext)
	assert.Nil(t, ext.RPC)

	_, ok = tbl.Lookup(2)
	assert.False(t, ok)
}

func Test_Parse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			give:    "chains: [",
			wantErr: "failed to unmarshal extensions YAML",
		},
		{
			name: "duplicate chain id",
			give: `
chains:
  1:
    supported: true
  1:
    supported: false
`,
			wantErr: "failed to unmarshal extensions YAML",
		},
		{
			name: "invalid rpc source",
			give: `
chains:
  1:
    supported: true
    rpc:
      - provider: alchemy
        family: eth
`,
			wantErr: "extension for chain 1: rpc 0: subnetwork is required",
		},
		{
			name: "invalid fetcher",
			give: `
chains:
  137:
    supported: true
    fetcher:
      type: polygonscan
      url: https://polygonscan.com/
`,
			wantErr: `extension for chain 137: unknown fetcher type "polygonscan"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.give))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func Test_New_Empty(t *testing.T) {
	t.Parallel()

	tbl, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.ChainIDs())
}

func Test_New_CopiesInput(t *testing.T) {
	t.Parallel()

	in := map[uint64]Extension{1: {Supported: true}}
	tbl, err := New(in)
	require.NoError(t, err)

	in[2] = Extension{}
	assert.Equal(t, 1, tbl.Len())
}

func Test_Default(t *testing.T) {
	t.Parallel()

	tbl, err := Default()
	require.NoError(t, err)

	for _, id := range []uint64{16718, 30746, 22040} {
		ext, ok := tbl.Lookup(id)
		require.True(t, ok, "chain %d", id)
		assert.True(t, ext.Supported)
		assert.False(t, ext.Monitored)
	}

	mainnet, ok := tbl.Lookup(1)
	require.True(t, ok)
	require.Len(t, mainnet.RPC, 1)
	assert.True(t, mainnet.RPC[0].OwnNode)
	require.NotNil(t, mainnet.Fetcher)
	assert.Equal(t, "https://api.etherscan.io", mainnet.Fetcher.APIURL)
}

func Test_LoadFile(t *testing.T) {
	t.Parallel()

	fp := filepath.Join(t.TempDir(), "extensions.yaml")
	require.NoError(t, os.WriteFile(fp, []byte("chains:\n  10:\n    supported: true\n"), 0o600))

	tbl, err := LoadFile(fp)
	require.NoError(t, err)
	assert.Equal(t, []uint64{10}, tbl.ChainIDs())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read extensions file")
}
