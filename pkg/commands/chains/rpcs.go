package chains

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chain-registry/endpoint"
	"github.com/smartcontractkit/chain-registry/registry"
)

func newRPCsCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rpcs <chain-id>",
		Short: "Print the resolved RPC endpoints of a chain with credentials redacted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRPCs(cmd, cfg, args[0])
		},
	}
}

func runRPCs(cmd *cobra.Command, cfg Config, chainID string) error {
	reg, err := loadRegistry(cmd, cfg)
	if err != nil {
		return err
	}

	id, ok := registry.ParseChainID(chainID)
	if !ok {
		return &registry.UnknownChainError{ChainID: chainID}
	}

	c, ok := reg.Chain(id)
	if !ok {
		return &registry.UnknownChainError{ChainID: chainID}
	}

	if len(c.RPC) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "chain %s (%s) has no RPC endpoints\n", chainID, c.Name)

		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"#", "URL", "Headers"})
	table.SetAutoWrapText(false)
	for i, ep := range c.RPC {
		table.Append([]string{strconv.Itoa(i), ep.Redacted(), headerNames(ep)})
	}
	table.Render()

	return nil
}

// headerNames lists the request headers of the endpoint without their values.
func headerNames(ep endpoint.Endpoint) string {
	if !ep.Authenticated() {
		return "-"
	}

	return strings.Join(slices.Sorted(maps.Keys(ep.HTTPHeader())), ", ")
}
