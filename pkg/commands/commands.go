// Package commands provides the CLI command groups of the chain registry.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	cmds := commands.New(lggr)
//	chainsCmd, err := cmds.Chains()
//	app.AddCommand(chainsCmd)
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/smartcontractkit/chain-registry/pkg/commands/chains"
//
//	cmd, err := chains.NewCommand(chains.Config{
//	    Logger: lggr,
//	    Deps:   chains.Deps{...}, // inject fixtures for testing
//	})
package commands

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chain-registry/pkg/commands/chains"
	"github.com/smartcontractkit/chain-registry/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
// This allows setting the logger once and reusing it across all commands.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
// The logger will be shared across all commands created by this factory.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Chains creates the chains command group for inspecting the chain registry.
func (c *Commands) Chains() (*cobra.Command, error) {
	return chains.NewCommand(chains.Config{
		Logger: c.lggr,
	})
}
