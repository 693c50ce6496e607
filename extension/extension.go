// Package extension holds the local table of catalog overrides. A chain of the catalog is only
// registered when it has an entry here; the entry decides whether the chain is supported and
// monitored and may replace its RPC list.
package extension

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/chain-registry/endpoint"
)

//go:embed extensions.yaml
var defaultManifest []byte

// Extension is a partial chain record overlaid onto a catalog record with the same chain ID.
type Extension struct {
	// Supported marks the chain as eligible for verification requests.
	Supported bool `yaml:"supported"`
	// Monitored marks the chain as eligible for passive chain watching.
	Monitored bool `yaml:"monitored"`
	// RPC replaces the catalog RPC templates when set.
	RPC []endpoint.Source `yaml:"rpc,omitempty"`
	// Fetcher sets the explorer used to look up contract creation data.
	Fetcher *Fetcher `yaml:"fetcher,omitempty"`
}

// Validate checks the RPC sources and fetcher of the extension.
func (e Extension) Validate() error {
	for i, src := range e.RPC {
		if err := src.Validate(); err != nil {
			return fmt.Errorf("rpc %d: %w", i, err)
		}
	}

	if e.Fetcher != nil {
		if err := e.Fetcher.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Manifest is the YAML representation of the extension table.
type Manifest struct {
	Chains map[uint64]Extension `yaml:"chains"`
}

// Table is an immutable set of extensions keyed by chain ID.
type Table struct {
	extensions map[uint64]Extension
}

// New validates the extensions and wraps them into a Table.
func New(extensions map[uint64]Extension) (*Table, error) {
	t := &Table{extensions: maps.Clone(extensions)}
	if t.extensions == nil {
		t.extensions = make(map[uint64]Extension)
	}

	for _, id := range t.ChainIDs() {
		if err := t.extensions[id].Validate(); err != nil {
			return nil, fmt.Errorf("extension for chain %d: %w", id, err)
		}
	}

	return t, nil
}

// Parse decodes a YAML manifest into a Table.
func Parse(data []byte) (*Table, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extensions YAML: %w", err)
	}

	return New(m.Chains)
}

// LoadFile reads a YAML manifest from filePath.
func LoadFile(filePath string) (*Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read extensions file: %w", err)
	}

	return Parse(data)
}

// Default returns the table compiled into the binary.
func Default() (*Table, error) {
	return Parse(defaultManifest)
}

// Lookup returns the extension for the chain ID.
func (t *Table) Lookup(chainID uint64) (Extension, bool) {
	ext, ok := t.extensions[chainID]

	return ext, ok
}

// ChainIDs returns the extended chain IDs in ascending order.
func (t *Table) ChainIDs() []uint64 {
	return slices.Sorted(maps.Keys(t.extensions))
}

// Len returns the number of extensions in the table.
func (t *Table) Len() int {
	return len(t.extensions)
}
