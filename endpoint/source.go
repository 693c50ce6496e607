package endpoint

import (
	"errors"
	"fmt"
)

// Family identifies the chain family segment of a provider URL, e.g. "eth" in
// https://eth-mainnet.g.alchemy.com.
type Family string

const (
	FamilyEthereum Family = "eth"
	FamilyPolygon  Family = "polygon"
	FamilyArbitrum Family = "arb"
	FamilyOptimism Family = "opt"
)

// Provider names a credentialed third party RPC provider.
type Provider string

const (
	ProviderAlchemy Provider = "alchemy"
)

// Source describes one entry of a chain's RPC list before resolution. Either URL is set, and the
// entry is a literal template, or Provider is set and the entry expands into the operator node
// (when OwnNode is set) followed by the provider endpoint.
type Source struct {
	URL        string   `yaml:"url,omitempty"`
	Provider   Provider `yaml:"provider,omitempty"`
	Family     Family   `yaml:"family,omitempty"`
	Subnetwork string   `yaml:"subnetwork,omitempty"`
	OwnNode    bool     `yaml:"own_node,omitempty"`
}

// Validate checks that exactly one kind of source is described.
func (s Source) Validate() error {
	switch {
	case s.URL != "" && s.Provider != "":
		return errors.New("url and provider are mutually exclusive")
	case s.URL != "":
		return nil
	case s.Provider == "":
		return errors.New("either url or provider is required")
	case s.Provider != ProviderAlchemy:
		return fmt.Errorf("unknown provider %q", s.Provider)
	case s.Family == "":
		return errors.New("family is required")
	case s.Subnetwork == "":
		return errors.New("subnetwork is required")
	}

	return nil
}
