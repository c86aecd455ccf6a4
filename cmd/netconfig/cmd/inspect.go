package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TeneoProtocolAI/teneo-contracts/internal/redact"
)

func newInspectCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the assembled networks with credentials masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}

			view, err := redact.NewView(cfg)
			if err != nil {
				return err
			}

			verification := "disabled"
			if view.Verification {
				verification = "enabled (" + view.EtherscanAPIKey + ")"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "compiler:\t%s (optimizer runs: %d)\n", view.Compiler, view.OptimizerRuns)
			fmt.Fprintf(w, "default network:\t%s\n", view.DefaultNetwork)
			fmt.Fprintf(w, "verification:\t%s\n\n", verification)

			fmt.Fprintln(w, "NETWORK\tURL\tADDRESS\tKEY")
			for _, n := range view.Networks {
				for _, a := range n.Accounts {
					address := a.Address
					if address == "" {
						address = "(invalid key)"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.Name, n.URL, address, a.Key)
				}
			}

			return w.Flush()
		},
	}
}
