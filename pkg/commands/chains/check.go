package chains

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chain-registry/pkg/commands/flags"
	"github.com/smartcontractkit/chain-registry/pkg/commands/text"
)

var checkExample = text.Examples(`
	# Check that a chain is registered
	chain-registry chains check 16718 --catalog chains.json

	# Check that a chain is supported for verification
	chain-registry chains check 16718 --catalog chains.json --supported
`)

func newCheckCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check <chain-id>",
		Short:   "Check that a chain is registered or supported",
		Example: checkExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, cfg, args[0])
		},
	}

	cmd.Flags().Bool("supported", false, "Require the chain to be supported for verification")

	return cmd
}

func runCheck(cmd *cobra.Command, cfg Config, chainID string) error {
	reg, err := loadRegistry(cmd, cfg)
	if err != nil {
		return err
	}

	if flags.MustBool(cmd.Flags().GetBool("supported")) {
		if _, err := reg.CheckSupportedChainID(chainID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "chain %s is supported\n", chainID)

		return nil
	}

	if _, err := reg.CheckKnownChainID(chainID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "chain %s is registered\n", chainID)

	return nil
}
