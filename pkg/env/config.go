package env

import "sort"

// Config is the validated environment snapshot. It is built once by a Loader
// and never changes afterwards; accessors hand out copies.
type Config struct {
	rpcs            map[Chain]map[Tier]string
	privateKeys     map[Tier]string
	etherscanAPIKey string
}

func newConfig() *Config {
	return &Config{
		rpcs:        make(map[Chain]map[Tier]string),
		privateKeys: make(map[Tier]string),
	}
}

// RPC returns the endpoint URL for a chain and tier.
func (c *Config) RPC(chain Chain, tier Tier) (string, bool) {
	url, ok := c.rpcs[chain][tier]
	return url, ok
}

// RPCs returns a copy of the chain -> tier -> URL table.
func (c *Config) RPCs() map[Chain]map[Tier]string {
	out := make(map[Chain]map[Tier]string, len(c.rpcs))
	for chain, tiers := range c.rpcs {
		inner := make(map[Tier]string, len(tiers))
		for tier, url := range tiers {
			inner[tier] = url
		}
		out[chain] = inner
	}
	return out
}

// PrivateKey returns the signing credential of a tier.
func (c *Config) PrivateKey(tier Tier) (string, bool) {
	key, ok := c.privateKeys[tier]
	return key, ok
}

// PrivateKeys returns a copy of the tier -> credential table.
func (c *Config) PrivateKeys() map[Tier]string {
	out := make(map[Tier]string, len(c.privateKeys))
	for tier, key := range c.privateKeys {
		out[tier] = key
	}
	return out
}

// EtherscanAPIKey returns the explorer key and whether it was configured.
func (c *Config) EtherscanAPIKey() (string, bool) {
	return c.etherscanAPIKey, c.etherscanAPIKey != ""
}

// Chains returns the configured chains, sorted.
func (c *Config) Chains() []Chain {
	chains := make([]Chain, 0, len(c.rpcs))
	for chain := range c.rpcs {
		chains = append(chains, chain)
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i] < chains[j] })
	return chains
}

// Tiers returns the tiers configured for chain, sorted.
func (c *Config) Tiers(chain Chain) []Tier {
	tiers := make([]Tier, 0, len(c.rpcs[chain]))
	for tier := range c.rpcs[chain] {
		tiers = append(tiers, tier)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })
	return tiers
}
