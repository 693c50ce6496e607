// Package registry builds the immutable chain registry from the chain catalog, the local
// extension table and the environment configuration, and answers chain lookups against it.
//
// The registry is built once at startup with Build and passed by reference to its consumers.
// It is never modified afterwards, so it can be read concurrently without locking.
package registry

import (
	"maps"
	"sync"
)

// Registry is the set of registered chains, indexed by chain ID and in display order.
type Registry struct {
	all       map[uint64]Chain
	supported map[uint64]Chain
	monitored map[uint64]Chain
	sorted    []Chain
}

// Chain returns the registered chain with the chain ID.
func (r *Registry) Chain(chainID uint64) (Chain, bool) {
	c, ok := r.all[chainID]
	if !ok {
		return Chain{}, false
	}

	return c.clone(), true
}

// SupportedChain returns the chain with the chain ID if it is supported for verification.
func (r *Registry) SupportedChain(chainID uint64) (Chain, bool) {
	c, ok := r.supported[chainID]
	if !ok {
		return Chain{}, false
	}

	return c.clone(), true
}

// MonitoredChain returns the chain with the chain ID if it is monitored.
func (r *Registry) MonitoredChain(chainID uint64) (Chain, bool) {
	c, ok := r.monitored[chainID]
	if !ok {
		return Chain{}, false
	}

	return c.clone(), true
}

// All returns every registered chain keyed by chain ID.
func (r *Registry) All() map[uint64]Chain { return cloneMap(r.all) }

// Supported returns the chains supported for verification keyed by chain ID.
func (r *Registry) Supported() map[uint64]Chain { return cloneMap(r.supported) }

// Monitored returns the monitored chains keyed by chain ID.
func (r *Registry) Monitored() map[uint64]Chain { return cloneMap(r.monitored) }

// Sorted returns every registered chain in display order.
func (r *Registry) Sorted() []Chain {
	return r.filterSorted(func(Chain) bool { return true })
}

// SupportedSorted returns the supported chains in display order.
func (r *Registry) SupportedSorted() []Chain {
	return r.filterSorted(func(c Chain) bool { return c.Supported })
}

// MonitoredSorted returns the monitored chains in display order.
func (r *Registry) MonitoredSorted() []Chain {
	return r.filterSorted(func(c Chain) bool { return c.Monitored })
}

// Len returns the number of registered chains.
func (r *Registry) Len() int {
	return len(r.all)
}

func (r *Registry) filterSorted(keep func(Chain) bool) []Chain {
	out := make([]Chain, 0, len(r.sorted))
	for _, c := range r.sorted {
		if keep(c) {
			out = append(out, c.clone())
		}
	}

	return out
}

func cloneMap(m map[uint64]Chain) map[uint64]Chain {
	out := maps.Clone(m)
	for id, c := range out {
		out[id] = c.clone()
	}

	return out
}

// Once publishes a registry built on first use. Concurrent callers of Get wait for the build to
// complete and all observe the same result.
type Once struct {
	get func() (*Registry, error)
}

// NewOnce returns a Once which calls build the first time Get is called.
func NewOnce(build func() (*Registry, error)) *Once {
	return &Once{get: sync.OnceValues(build)}
}

// Get returns the registry, building it if needed.
func (o *Once) Get() (*Registry, error) {
	return o.get()
}
