// Package network assembles the toolchain network configuration from a
// loaded environment.
package network

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/TeneoProtocolAI/teneo-contracts/pkg/env"
)

// Compiler defaults handed to the toolchain.
const (
	CompilerVersion  = "0.8.18"
	OptimizerEnabled = true
	OptimizerRuns    = 200

	// DefaultNetwork is the toolchain's in-process network.
	DefaultNetwork = "hardhat"
)

// Profile is one deployment target.
type Profile struct {
	Name     string
	Chain    env.Chain
	Tier     env.Tier
	URL      string
	Accounts []string
}

// Optimizer is the compiler optimizer switch and run count.
type Optimizer struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

// SoliditySettings groups the compiler settings.
type SoliditySettings struct {
	Optimizer Optimizer `json:"optimizer" yaml:"optimizer"`
}

// Solidity selects the compiler version and its settings.
type Solidity struct {
	Version  string           `json:"version" yaml:"version"`
	Settings SoliditySettings `json:"settings" yaml:"settings"`
}

// Etherscan holds the cross-network verification settings.
type Etherscan struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// Config is the assembled network configuration.
type Config struct {
	Solidity       Solidity
	DefaultNetwork string
	Networks       map[string]Profile
	// Etherscan is nil when no explorer key is configured.
	Etherscan *Etherscan
}

// ProfileName returns the network name for a chain and tier.
func ProfileName(chain env.Chain, tier env.Tier) string {
	return fmt.Sprintf("%s_%s", chain, tier)
}

// Assemble maps every (chain, tier) endpoint in cfg to a Profile signed by
// the credential of the same tier.
func Assemble(cfg *env.Config) *Config {
	out := &Config{
		Solidity: Solidity{
			Version: CompilerVersion,
			Settings: SoliditySettings{
				Optimizer: Optimizer{Enabled: OptimizerEnabled, Runs: OptimizerRuns},
			},
		},
		DefaultNetwork: DefaultNetwork,
		Networks:       make(map[string]Profile),
	}

	for _, chain := range cfg.Chains() {
		for _, tier := range cfg.Tiers(chain) {
			url, _ := cfg.RPC(chain, tier)
			key, ok := cfg.PrivateKey(tier)
			if !ok {
				// Loader guarantees a key per tier; never borrow another tier's.
				continue
			}

			name := ProfileName(chain, tier)
			out.Networks[name] = Profile{
				Name:     name,
				Chain:    chain,
				Tier:     tier,
				URL:      url,
				Accounts: []string{key},
			}
		}
	}

	if key, ok := cfg.EtherscanAPIKey(); ok {
		out.Etherscan = &Etherscan{APIKey: key}
	}

	log.Debug().Int("networks", len(out.Networks)).Bool("etherscan", out.Etherscan != nil).Msg("network config assembled")
	return out
}

// Names returns the profile names, sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile looks up a profile by name.
func (c *Config) Profile(name string) (Profile, bool) {
	p, ok := c.Networks[name]
	return p, ok
}
