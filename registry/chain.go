package registry

import (
	"slices"
	"strconv"

	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/chain-registry/catalog"
	"github.com/smartcontractkit/chain-registry/endpoint"
	"github.com/smartcontractkit/chain-registry/extension"
)

// Chain is a registered chain: the catalog record with the extension applied and its RPC
// endpoints resolved.
type Chain struct {
	ChainID        uint64                 `json:"chainId"`
	Name           string                 `json:"name"`
	ShortName      string                 `json:"shortName"`
	Title          string                 `json:"title,omitempty"`
	Chain          string                 `json:"chain,omitempty"`
	Network        string                 `json:"network,omitempty"`
	NetworkID      uint64                 `json:"networkId"`
	NativeCurrency catalog.NativeCurrency `json:"nativeCurrency"`
	InfoURL        string                 `json:"infoURL"`
	Faucets        []string               `json:"faucets"`
	RPC            []endpoint.Endpoint    `json:"rpc"`
	// Supported marks the chain as eligible for verification requests.
	Supported bool `json:"supported"`
	// Monitored marks the chain as eligible for passive chain watching.
	Monitored bool `json:"monitored"`
	// ContractFetchAddress is the explorer URL template used to look up contract creation data.
	ContractFetchAddress string   `json:"contractFetchAddress,omitempty"`
	TxRegex              []string `json:"txRegex,omitempty"`
	// EtherscanAPI is the Etherscan API URL template returning the contract creation transaction.
	EtherscanAPI string `json:"etherscanAPI,omitempty"`
	// Selector is the CCIP chain selector of the chain, 0 when the chain has none.
	Selector uint64 `json:"chainSelector,omitempty"`
	// Local marks the developer local test networks.
	Local bool `json:"local,omitempty"`
}

// Overlay builds a registered chain from a catalog record and its extension. Extension fields win
// over catalog fields; fields the extension does not define are inherited. When the extension
// carries an RPC list it replaces the catalog templates.
func Overlay(base catalog.Chain, ext extension.Extension, resolver *endpoint.Resolver) Chain {
	c := Chain{
		ChainID:        base.ChainID,
		Name:           base.Name,
		ShortName:      base.ShortName,
		Title:          base.Title,
		Chain:          base.Chain,
		Network:        base.Network,
		NetworkID:      base.NetworkID,
		NativeCurrency: base.NativeCurrency,
		InfoURL:        base.InfoURL,
		Faucets:        slices.Clone(base.Faucets),
		Supported:      ext.Supported,
		Monitored:      ext.Monitored,
	}

	if ext.RPC != nil {
		c.RPC = resolver.Resolve(ext.RPC)
	} else {
		c.RPC = resolver.Templates(base.RPC)
	}

	if ext.Fetcher != nil {
		c.ContractFetchAddress = ext.Fetcher.ContractFetchAddress()
		c.TxRegex = ext.Fetcher.TxRegex()
	}

	return c
}

// clone returns a copy of c which shares no slices or maps with it.
func (c Chain) clone() Chain {
	c.Faucets = slices.Clone(c.Faucets)
	c.TxRegex = slices.Clone(c.TxRegex)

	if c.RPC != nil {
		rpcs := make([]endpoint.Endpoint, len(c.RPC))
		for i, ep := range c.RPC {
			rpcs[i] = endpoint.Endpoint{URL: ep.URL}
			if ep.Headers != nil {
				rpcs[i].Headers = make(map[string]string, len(ep.Headers))
				for k, v := range ep.Headers {
					rpcs[i].Headers[k] = v
				}
			}
		}
		c.RPC = rpcs
	}

	return c
}

// displayName is the primary sort key of a chain.
func (c Chain) displayName() string {
	if c.Name != "" {
		return c.Name
	}

	return c.Title
}

// evmSelector looks up the CCIP chain selector of an EVM chain ID, returning 0 if it has none.
func evmSelector(chainID uint64) uint64 {
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(strconv.FormatUint(chainID, 10), chainsel.FamilyEVM)
	if err != nil {
		return 0
	}

	return details.ChainSelector
}
