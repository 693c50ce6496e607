package registry

import (
	"github.com/smartcontractkit/chain-registry/catalog"
	"github.com/smartcontractkit/chain-registry/config/env"
	"github.com/smartcontractkit/chain-registry/endpoint"
)

const (
	GanacheChainID = 1337
	HardhatChainID = 31337

	localRPCURL = "http://localhost:8545"
)

// LocalChains returns the developer local test networks. They are registered ahead of the catalog
// outside production and take precedence over catalog records with the same chain ID.
func LocalChains() []Chain {
	localETH := catalog.NativeCurrency{Name: "localETH", Symbol: "localETH", Decimals: 18}

	return []Chain{
		{
			ChainID:        GanacheChainID,
			Name:           "Ganache Localhost",
			ShortName:      "Ganache",
			Network:        "testnet",
			NetworkID:      GanacheChainID,
			NativeCurrency: localETH,
			InfoURL:        "localhost",
			Faucets:        []string{},
			RPC:            []endpoint.Endpoint{{URL: localRPCURL}},
			Supported:      true,
			Monitored:      true,
			Local:          true,
		},
		{
			ChainID:        HardhatChainID,
			Name:           "Hardhat Network Localhost",
			ShortName:      "Hardhat Network",
			Network:        "testnet",
			NetworkID:      HardhatChainID,
			NativeCurrency: localETH,
			InfoURL:        "localhost",
			Faucets:        []string{},
			RPC:            []endpoint.Endpoint{{URL: localRPCURL}},
			Supported:      true,
			Monitored:      true,
			Local:          true,
		},
	}
}

// LocalChainsEnabled reports whether the local test networks are registered for cfg, which is the
// case for every environment except production.
func LocalChainsEnabled(cfg *env.Config) bool {
	return cfg == nil || !cfg.IsProduction()
}
