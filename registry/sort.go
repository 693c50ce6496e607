package registry

import (
	"sort"
)

// CanonicalOrder lists the Ethereum networks pinned to the top of the sorted chain list: mainnet,
// Goerli, Sepolia, then the retired Ropsten, Rinkeby and Kovan testnets.
var CanonicalOrder = []uint64{1, 5, 11155111, 3, 4, 42}

// SortChains returns chains in display order. Chains listed in canonical come first in that
// order, named by their long form title when they have one. The remaining chains follow sorted by
// name, keeping the input order for equal names. Canonical IDs missing from chains are skipped.
func SortChains(chains []Chain, canonical []uint64) []Chain {
	byID := make(map[uint64]Chain, len(chains))
	for _, c := range chains {
		byID[c.ChainID] = c
	}

	pinned := make(map[uint64]bool, len(canonical))
	sorted := make([]Chain, 0, len(chains))

	for _, id := range canonical {
		c, ok := byID[id]
		if !ok || pinned[id] {
			continue
		}
		if c.Title != "" {
			c.Name = c.Title
		}

		pinned[id] = true
		sorted = append(sorted, c)
	}

	rest := make([]Chain, 0, len(chains)-len(sorted))
	for _, c := range chains {
		if !pinned[c.ChainID] {
			rest = append(rest, c)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].displayName() < rest[j].displayName()
	})

	return append(sorted, rest...)
}
