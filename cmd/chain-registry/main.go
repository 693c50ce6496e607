// Package main provides the chain-registry CLI, which builds the chain registry and prints or
// checks its chains.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chain-registry/pkg/commands"
	"github.com/smartcontractkit/chain-registry/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "chain-registry",
		Short:        "Build and inspect the chain registry",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	// The level is only known after flag parsing.
	lggr := &levelLogger{Logger: logger.Nop()}
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		l, err := logger.NewAtLevel(logLevel)
		if err != nil {
			return err
		}
		lggr.Logger = l

		return nil
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		_ = lggr.Sync()
	}

	chainsCmd, err := commands.New(lggr).Chains()
	if err != nil {
		// Only reachable with a nil logger.
		panic(fmt.Sprintf("failed to create chains command: %v", err))
	}
	root.AddCommand(chainsCmd)

	return root
}

// levelLogger defers to a logger chosen after flag parsing.
type levelLogger struct {
	logger.Logger
}
