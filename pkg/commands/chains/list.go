package chains

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chain-registry/pkg/commands/flags"
	"github.com/smartcontractkit/chain-registry/pkg/commands/text"
	"github.com/smartcontractkit/chain-registry/registry"
)

var (
	listShort = "List registered chains in display order"

	listExample = text.Examples(`
		# List every registered chain
		chain-registry chains list --catalog chains.json

		# List the chains supported for verification
		chain-registry chains list --catalog chains.json --supported
	`)
)

func newListCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   listShort,
		Example: listExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, cfg)
		},
	}

	cmd.Flags().Bool("supported", false, "Only list chains supported for verification")
	cmd.Flags().Bool("monitored", false, "Only list monitored chains")
	cmd.MarkFlagsMutuallyExclusive("supported", "monitored")

	return cmd
}

func runList(cmd *cobra.Command, cfg Config) error {
	reg, err := loadRegistry(cmd, cfg)
	if err != nil {
		return err
	}

	var chains []registry.Chain
	switch {
	case flags.MustBool(cmd.Flags().GetBool("supported")):
		chains = reg.SupportedSorted()
	case flags.MustBool(cmd.Flags().GetBool("monitored")):
		chains = reg.MonitoredSorted()
	default:
		chains = reg.Sorted()
	}

	data := make([][]string, 0, len(chains))
	for _, c := range chains {
		data = append(data, []string{
			strconv.FormatUint(c.ChainID, 10),
			c.Name,
			c.ShortName,
			strconv.FormatBool(c.Supported),
			strconv.FormatBool(c.Monitored),
			strconv.Itoa(len(c.RPC)),
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Chain ID", "Name", "Short Name", "Supported", "Monitored", "RPCs"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	return nil
}
