package cmd

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TeneoProtocolAI/teneo-contracts/pkg/accounts"
	"github.com/TeneoProtocolAI/teneo-contracts/pkg/network"
)

// ErrCheckFailed is returned by check when any network is misconfigured.
var ErrCheckFailed = errors.New("configuration check failed")

var endpointSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if !endpointSchemes[u.Scheme] {
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url has no host")
	}
	return nil
}

// checkProfile returns one message per problem found in p.
func checkProfile(p network.Profile) []string {
	var problems []string
	if err := validateEndpoint(p.URL); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := accounts.Addresses(p.Accounts); err != nil {
		problems = append(problems, err.Error())
	}
	return problems
}

func newCheckCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate endpoint URLs and signing keys of every network",
		Long: `Check loads and assembles the configuration, then verifies that every
endpoint is an http(s) or ws(s) URL and every account is a valid secp256k1
private key. No network connection is made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range cfg.Names() {
				p, _ := cfg.Profile(name)
				problems := checkProfile(p)
				if len(problems) == 0 {
					fmt.Fprintf(out, "ok    %s\n", name)
					continue
				}

				failed++
				for _, problem := range problems {
					fmt.Fprintf(out, "FAIL  %s: %s\n", name, problem)
					log.Debug().Str("network", name).Str("problem", problem).Msg("check failed")
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d networks", ErrCheckFailed, failed, len(cfg.Networks))
			}
			return nil
		},
	}
}
