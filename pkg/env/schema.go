package env

// Chain identifies a deployment chain.
type Chain string

// Tier is a network tier: real funds or test funds.
type Tier string

const (
	ChainEthereum Chain = "ethereum"
	ChainBase     Chain = "base"
)

const (
	TierMainnet Tier = "mainnet"
	TierTestnet Tier = "testnet"
)

// Environment variable names
const (
	EnvEthereumMainnetRPC = "ETHEREUM_MAINNET_RPC"
	EnvEthereumTestnetRPC = "ETHEREUM_TESTNET_RPC"
	EnvBaseMainnetRPC     = "BASE_MAINNET_RPC"
	EnvBaseTestnetRPC     = "BASE_TESTNET_RPC"
	EnvMainnetPrivateKey  = "MAINNET_PRIVATE_KEY"
	EnvTestnetPrivateKey  = "TESTNET_PRIVATE_KEY"
	EnvEtherscanAPIKey    = "ETHERSCAN_API_KEY"
)

// Var describes one environment variable read by the loader.
type Var struct {
	Name     string
	Required bool
	// Default is only applied to optional variables.
	Default string

	assign func(*Config, string)
}

func rpcVar(name string, chain Chain, tier Tier) Var {
	return Var{
		Name:     name,
		Required: true,
		assign: func(c *Config, v string) {
			if c.rpcs[chain] == nil {
				c.rpcs[chain] = make(map[Tier]string)
			}
			c.rpcs[chain][tier] = v
		},
	}
}

func keyVar(name string, tier Tier) Var {
	return Var{
		Name:     name,
		Required: true,
		assign: func(c *Config, v string) {
			c.privateKeys[tier] = v
		},
	}
}

var schema = []Var{
	rpcVar(EnvEthereumMainnetRPC, ChainEthereum, TierMainnet),
	rpcVar(EnvEthereumTestnetRPC, ChainEthereum, TierTestnet),
	rpcVar(EnvBaseMainnetRPC, ChainBase, TierMainnet),
	rpcVar(EnvBaseTestnetRPC, ChainBase, TierTestnet),
	keyVar(EnvMainnetPrivateKey, TierMainnet),
	keyVar(EnvTestnetPrivateKey, TierTestnet),
	{
		Name: EnvEtherscanAPIKey,
		assign: func(c *Config, v string) {
			c.etherscanAPIKey = v
		},
	},
}

// Schema returns the declared variables in declaration order.
func Schema() []Var {
	out := make([]Var, len(schema))
	copy(out, schema)
	return out
}
