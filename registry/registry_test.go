package registry

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chain-registry/catalog"
	"github.com/smartcontractkit/chain-registry/extension"
)

func Test_Registry_ReturnsCopies(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, catalog.Chain{
		ChainID: 16718,
		Name:    "Ambrosus Mainnet",
		RPC:     []string{"https://network.ambrosus.io"},
		Faucets: []string{"https://faucet.example"},
	})
	r, err := Build(cat, newTable(t, map[uint64]extension.Extension{16718: {Supported: true, Monitored: true}}), prodCfg)
	require.NoError(t, err)

	c, ok := r.Chain(16718)
	require.True(t, ok)
	c.Name = "changed"
	c.RPC[0].URL = "https://changed.example"
	c.Faucets[0] = "changed"

	all := r.All()
	delete(all, 16718)
	r.Sorted()[0].RPC[0].URL = "https://changed.example"
	r.SupportedSorted()[0].Faucets[0] = "changed"

	again, ok := r.Chain(16718)
	require.True(t, ok)
	assert.Equal(t, "Ambrosus Mainnet", again.Name)
	assert.Equal(t, "https://network.ambrosus.io", again.RPC[0].URL)
	assert.Equal(t, []string{"https://faucet.example"}, again.Faucets)
	assert.Len(t, r.All(), 1)
}

func Test_Once(t *testing.T) {
	t.Parallel()

	t.Run("builds once for concurrent callers", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		cat := newCatalog(t)
		once := NewOnce(func() (*Registry, error) {
			calls.Add(1)
			return Build(cat, nil, prodCfg)
		})

		const callers = 16
		results := make([]*Registry, callers)

		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r, err := once.Get()
				assert.NoError(t, err)
				results[i] = r
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		for _, r := range results {
			assert.Same(t, results[0], r)
		}
	})

	t.Run("error is cached", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		buildErr := errors.New("boom")
		once := NewOnce(func() (*Registry, error) {
			calls.Add(1)
			return nil, buildErr
		})

		_, err := once.Get()
		require.ErrorIs(t, err, buildErr)
		_, err = once.Get()
		require.ErrorIs(t, err, buildErr)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func Test_LocalChainsEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, LocalChainsEnabled(nil))
	assert.True(t, LocalChainsEnabled(devCfg))
	assert.False(t, LocalChainsEnabled(prodCfg))
}
