// Package chains provides CLI commands for inspecting the chain registry.
package chains

import (
	"github.com/smartcontractkit/chain-registry/catalog"
	"github.com/smartcontractkit/chain-registry/config/env"
	"github.com/smartcontractkit/chain-registry/extension"
	"github.com/smartcontractkit/chain-registry/pkg/logger"
	"github.com/smartcontractkit/chain-registry/registry"
)

// CatalogLoaderFunc loads the chain catalog from a chains.json file.
type CatalogLoaderFunc func(path string) (*catalog.Catalog, error)

// ExtensionLoaderFunc loads the extension table. An empty path selects the embedded table.
type ExtensionLoaderFunc func(path string) (*extension.Table, error)

// ConfigLoaderFunc loads the environment config. The file is optional.
type ConfigLoaderFunc func(path string) (*env.Config, error)

// RegistryBuilderFunc builds the registry from its loaded inputs.
type RegistryBuilderFunc func(
	cat *catalog.Catalog,
	exts *extension.Table,
	cfg *env.Config,
	lggr logger.Logger,
) (*registry.Registry, error)

func defaultExtensionLoader(path string) (*extension.Table, error) {
	if path == "" {
		return extension.Default()
	}

	return extension.LoadFile(path)
}

func defaultRegistryBuilder(
	cat *catalog.Catalog,
	exts *extension.Table,
	cfg *env.Config,
	lggr logger.Logger,
) (*registry.Registry, error) {
	return registry.Build(cat, exts, cfg, registry.WithLogger(lggr))
}

// Deps holds the injectable dependencies for chains commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// CatalogLoader loads the chain catalog.
	// Default: catalog.LoadFile
	CatalogLoader CatalogLoaderFunc

	// ExtensionLoader loads the extension table.
	// Default: extension.LoadFile, or extension.Default when no path is given
	ExtensionLoader ExtensionLoaderFunc

	// ConfigLoader loads the environment config.
	// Default: env.Load
	ConfigLoader ConfigLoaderFunc

	// RegistryBuilder builds the registry.
	// Default: registry.Build
	RegistryBuilder RegistryBuilderFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.CatalogLoader == nil {
		d.CatalogLoader = catalog.LoadFile
	}
	if d.ExtensionLoader == nil {
		d.ExtensionLoader = defaultExtensionLoader
	}
	if d.ConfigLoader == nil {
		d.ConfigLoader = env.Load
	}
	if d.RegistryBuilder == nil {
		d.RegistryBuilder = defaultRegistryBuilder
	}
}
