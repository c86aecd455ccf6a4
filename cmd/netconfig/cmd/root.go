package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TeneoProtocolAI/teneo-contracts/internal/logging"
	"github.com/TeneoProtocolAI/teneo-contracts/internal/settings"
	"github.com/TeneoProtocolAI/teneo-contracts/pkg/env"
	"github.com/TeneoProtocolAI/teneo-contracts/pkg/network"
	"github.com/TeneoProtocolAI/teneo-contracts/pkg/version"
)

type rootOptions struct {
	envFile        string
	requireEnvFile bool
	debug          bool
	logFormat      string

	// source replaces the process environment; nil means os.
	source env.Source
	logOut io.Writer
}

// NewRootCommand builds the netconfig command tree. Flag defaults come from s.
func NewRootCommand(s *settings.Settings) *cobra.Command {
	return newRootCommand(s, nil, os.Stderr)
}

func newRootCommand(s *settings.Settings, source env.Source, logOut io.Writer) *cobra.Command {
	o := &rootOptions{source: source, logOut: logOut}

	rootCmd := &cobra.Command{
		Use:   "netconfig",
		Short: "Deployment network configuration for the contracts toolchain",
		Long: `netconfig reads RPC endpoints and signing keys from the environment
(optionally backed by a local .env file) and assembles the network
configuration consumed by the contract compile/deploy toolchain.

Required variables:
  ETHEREUM_MAINNET_RPC, ETHEREUM_TESTNET_RPC,
  BASE_MAINNET_RPC, BASE_TESTNET_RPC,
  MAINNET_PRIVATE_KEY, TESTNET_PRIVATE_KEY

Optional:
  ETHERSCAN_API_KEY   enables contract verification`,
		Version:       version.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A non-default path, from the flag or NETCONFIG_ENV_FILE, must exist.
			o.requireEnvFile = cmd.Flags().Changed("env-file") || o.envFile != env.DefaultEnvFile
			logging.InitWriter(o.logOut, o.debug, o.logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.envFile, "env-file", s.EnvFile,
		"declarations file read before the environment (empty disables it)")
	rootCmd.PersistentFlags().BoolVar(&o.debug, "debug", s.Debug,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&o.logFormat, "log-format", s.LogFormat,
		"log output format: console or json")

	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	rootCmd.AddCommand(
		newExportCommand(o),
		newInspectCommand(o),
		newCheckCommand(o),
		newVersionCommand(),
	)

	return rootCmd
}

// load runs the environment loader and the assembler.
func (o *rootOptions) load() (*network.Config, error) {
	opts := []env.Option{env.WithEnvFile(o.envFile)}
	if o.requireEnvFile && o.envFile != "" {
		opts = append(opts, env.WithRequiredEnvFile())
	}
	if o.source != nil {
		opts = append(opts, env.WithSource(o.source))
	}

	cfg, err := env.Load(opts...)
	if err != nil {
		return nil, describe(err)
	}

	netCfg := network.Assemble(cfg)
	log.Debug().Strs("networks", netCfg.Names()).Msg("configuration ready")
	return netCfg, nil
}

// missingConfigError prints every missing key on one line and keeps the
// loader's error chain for errors.As and env.MissingKeys.
type missingConfigError struct {
	keys []string
	err  error
}

func (e *missingConfigError) Error() string {
	return fmt.Sprintf("%s: %s", env.ErrMissingRequiredConfig, strings.Join(e.keys, ", "))
}

func (e *missingConfigError) Unwrap() error {
	return e.err
}

// describe folds every missing key into one message.
func describe(err error) error {
	if keys := env.MissingKeys(err); len(keys) > 0 {
		return &missingConfigError{keys: keys, err: err}
	}
	return err
}
