package chains

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chain-registry/pkg/commands/flags"
	"github.com/smartcontractkit/chain-registry/pkg/commands/text"
	"github.com/smartcontractkit/chain-registry/pkg/logger"
	"github.com/smartcontractkit/chain-registry/registry"
)

var (
	chainsShort = "Inspect the chain registry"

	chainsLong = text.LongDesc(`
		Builds the chain registry from a chains.json catalog, the extension table and the
		environment configuration, then prints or checks the registered chains.

		Credentials and operator node URLs are read from the environment (ALCHEMY_ID,
		INFURA_ID, NODE_URL_<SUBNETWORK>, ...) and override the --config file.
	`)
)

// Config holds the configuration for chains commands.
type Config struct {
	// Logger is the logger receiving registry build output. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	if c.Logger == nil {
		return errors.New("chains.Config: missing required fields: Logger")
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates the chains command with all subcommands.
//
// Usage:
//
//	cmd, err := chains.NewCommand(chains.Config{Logger: lggr})
//	rootCmd.AddCommand(cmd)
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:   "chains",
		Short: chainsShort,
		Long:  chainsLong,
	}

	cmd.AddCommand(newListCmd(cfg))
	cmd.AddCommand(newCheckCmd(cfg))
	cmd.AddCommand(newRPCsCmd(cfg))

	flags.Catalog(cmd)
	flags.Extensions(cmd)
	flags.Config(cmd)

	return cmd, nil
}

// loadRegistry loads the registry inputs named by the persistent flags and builds the registry.
func loadRegistry(cmd *cobra.Command, cfg Config) (*registry.Registry, error) {
	deps := cfg.deps()

	catalogPath := flags.MustString(cmd.Flags().GetString("catalog"))
	extensionsPath := flags.MustString(cmd.Flags().GetString("extensions"))
	configPath := flags.MustString(cmd.Flags().GetString("config"))

	envCfg, err := deps.ConfigLoader(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	cat, err := deps.CatalogLoader(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	exts, err := deps.ExtensionLoader(extensionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load extensions: %w", err)
	}

	reg, err := deps.RegistryBuilder(cat, exts, envCfg, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build chain registry: %w", err)
	}

	return reg, nil
}
