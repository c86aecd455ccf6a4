package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TeneoProtocolAI/teneo-contracts/pkg/export"
)

func newExportCommand(o *rootOptions) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the toolchain network configuration",
		Long: `Export loads the environment, assembles every network and writes the
configuration document (solidity settings, default network, networks and
etherscan) as JSON or YAML. The output contains private keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := o.load()
			if err != nil {
				return err
			}
			doc := cfg.Document()

			if out == "" {
				return export.Encode(cmd.OutOrStdout(), doc, f)
			}
			if err := export.WriteFile(out, doc, f); err != nil {
				return err
			}
			log.Info().Str("path", out).Str("format", string(f)).Int("networks", len(cfg.Networks)).Msg("configuration exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "output format: json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
