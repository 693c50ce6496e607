package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/smartcontractkit/chain-registry/catalog"
	"github.com/smartcontractkit/chain-registry/config/env"
	"github.com/smartcontractkit/chain-registry/endpoint"
	"github.com/smartcontractkit/chain-registry/extension"
	"github.com/smartcontractkit/chain-registry/pkg/logger"
)

// Option customizes how Build assembles the registry.
type Option func(*buildConfig)

type buildConfig struct {
	lggr           logger.Logger
	resolver       *endpoint.Resolver
	localChains    []Chain
	localEnabled   *bool
	canonicalOrder []uint64
}

// WithLogger sets the logger receiving build progress and configuration warnings.
func WithLogger(lggr logger.Logger) Option {
	return func(c *buildConfig) {
		c.lggr = lggr
	}
}

// WithResolver sets the endpoint resolver. By default a resolver is created from the environment
// config passed to Build.
func WithResolver(r *endpoint.Resolver) Option {
	return func(c *buildConfig) {
		c.resolver = r
	}
}

// WithLocalChains replaces the local test networks registered outside production.
func WithLocalChains(chains []Chain) Option {
	return func(c *buildConfig) {
		c.localChains = chains
	}
}

// WithLocalChainsEnabled overrides whether the local test networks are registered, which by
// default depends on the environment mode. A collision between a local chain and a catalog record
// is only tolerated outside production.
func WithLocalChainsEnabled(enabled bool) Option {
	return func(c *buildConfig) {
		c.localEnabled = &enabled
	}
}

// WithCanonicalOrder replaces the chain IDs pinned to the top of the sorted chain list.
func WithCanonicalOrder(ids []uint64) Option {
	return func(c *buildConfig) {
		c.canonicalOrder = ids
	}
}

// Build merges the local test networks, the catalog and the extension table into a Registry.
//
// Local test networks are registered first when enabled. Catalog records are then visited in
// order: a record whose chain ID is already registered by a local network is skipped outside
// production, any other repeated chain ID fails the build with ErrDuplicateChainID. Records with
// an extension are overlaid with it and registered; records without one are not registered.
//
// Build either returns a complete registry or an error, never a partial registry.
func Build(cat *catalog.Catalog, exts *extension.Table, cfg *env.Config, opts ...Option) (*Registry, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if exts == nil {
		exts, _ = extension.New(nil)
	}
	if cfg == nil {
		cfg = &env.Config{}
	}

	bc := &buildConfig{
		lggr:           logger.Nop(),
		localChains:    LocalChains(),
		canonicalOrder: CanonicalOrder,
	}
	for _, opt := range opts {
		opt(bc)
	}

	lggr := bc.lggr.Named("registry")
	resolver := bc.resolver
	if resolver == nil {
		resolver = endpoint.NewResolver(cfg, bc.lggr)
	}

	localEnabled := LocalChainsEnabled(cfg)
	if bc.localEnabled != nil {
		localEnabled = *bc.localEnabled
	}

	var (
		local     = make(map[uint64]bool)
		inCatalog = make(map[uint64]int)
		extended  = make(map[uint64]bool)
		ordered   []Chain
	)

	if localEnabled {
		for _, c := range bc.localChains {
			if local[c.ChainID] {
				return nil, fmt.Errorf("%w: %d appears twice in the local chains", ErrDuplicateChainID, c.ChainID)
			}

			c = c.clone()
			c.Local = true
			c.Selector = evmSelector(c.ChainID)
			local[c.ChainID] = true
			ordered = append(ordered, c)
		}
	}

	for i, rec := range cat.Chains() {
		id := rec.ChainID

		if local[id] {
			if !cfg.IsProduction() {
				lggr.Debugw("Keeping local chain over catalog record", "chainID", id)
				continue
			}

			return nil, fmt.Errorf("%w: catalog record %d collides with local chain %d", ErrDuplicateChainID, i, id)
		}

		if first, dup := inCatalog[id]; dup {
			return nil, fmt.Errorf("%w: %d appears in catalog records %d and %d", ErrDuplicateChainID, id, first, i)
		}
		inCatalog[id] = i

		ext, ok := exts.Lookup(id)
		if !ok {
			continue
		}

		c := Overlay(rec, ext, resolver)
		c.Selector = evmSelector(id)
		if ext.Fetcher != nil && ext.Fetcher.APIURL != "" {
			if key := cfg.Etherscan.APIKey; key != "" {
				c.EtherscanAPI = ext.Fetcher.CreatorTxAPI(key)
			} else {
				lggr.Warnw("Etherscan API key not set, skipping creator transaction API",
					"error", endpoint.ErrMissingCredential,
					"chainID", id,
				)
			}
		}
		if len(c.RPC) == 0 {
			lggr.Debugw("Chain registered without RPC endpoints", "chainID", id, "name", c.Name)
		}

		extended[id] = true
		ordered = append(ordered, c)
	}

	var orphans []uint64
	for _, id := range exts.ChainIDs() {
		if !extended[id] && !local[id] {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) > 0 {
		lggr.Warnw("Ignoring extensions without a catalog record", "chainIDs", orphans)
	}

	r := newRegistry(SortChains(ordered, bc.canonicalOrder))

	lggr.Infow("Built chain registry",
		"chains", len(r.all),
		"supported", len(r.supported),
		"monitored", len(r.monitored),
	)

	return r, nil
}

// newRegistry indexes chains, which must be in display order and have unique chain IDs.
func newRegistry(sorted []Chain) *Registry {
	r := &Registry{
		all:       make(map[uint64]Chain, len(sorted)),
		supported: make(map[uint64]Chain),
		monitored: make(map[uint64]Chain),
		sorted:    slices.Clip(sorted),
	}

	for _, c := range sorted {
		r.all[c.ChainID] = c
		if c.Supported {
			r.supported[c.ChainID] = c
		}
		if c.Monitored {
			r.monitored[c.ChainID] = c
		}
	}

	return r
}
