package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeneoProtocolAI/teneo-contracts/pkg/env"
)

func loadEnv(t *testing.T, overrides env.MapSource) *env.Config {
	t.Helper()

	src := env.MapSource{
		env.EnvEthereumMainnetRPC: "https://eth.example",
		env.EnvEthereumTestnetRPC: "https://sepolia.example",
		env.EnvBaseMainnetRPC:     "https://base.example",
		env.EnvBaseTestnetRPC:     "https://base-sepolia.example",
		env.EnvMainnetPrivateKey:  "0xabc",
		env.EnvTestnetPrivateKey:  "0xdef",
	}
	for k, v := range overrides {
		src[k] = v
	}

	cfg, err := env.NewLoader(src).Load()
	require.NoError(t, err)
	return cfg
}

func TestAssemble_FourProfiles(t *testing.T) {
	cfg := Assemble(loadEnv(t, nil))

	assert.Equal(t, []string{"base_mainnet", "base_testnet", "ethereum_mainnet", "ethereum_testnet"}, cfg.Names())
	for _, name := range cfg.Names() {
		p, ok := cfg.Profile(name)
		require.True(t, ok)
		assert.NotEmpty(t, p.URL, name)
		assert.Len(t, p.Accounts, 1, name)
	}
	assert.Nil(t, cfg.Etherscan)

	assert.Equal(t, CompilerVersion, cfg.Solidity.Version)
	assert.True(t, cfg.Solidity.Settings.Optimizer.Enabled)
	assert.Equal(t, 200, cfg.Solidity.Settings.Optimizer.Runs)
	assert.Equal(t, "hardhat", cfg.DefaultNetwork)
}

func TestAssemble_EthereumMainnetScenario(t *testing.T) {
	cfg := Assemble(loadEnv(t, nil))

	p, ok := cfg.Profile("ethereum_mainnet")
	require.True(t, ok)
	assert.Equal(t, "https://eth.example", p.URL)
	assert.Equal(t, []string{"0xabc"}, p.Accounts)
	assert.Equal(t, env.ChainEthereum, p.Chain)
	assert.Equal(t, env.TierMainnet, p.Tier)
	assert.Nil(t, cfg.Etherscan)
}

func TestAssemble_TierIsolation(t *testing.T) {
	cfg := Assemble(loadEnv(t, env.MapSource{
		env.EnvMainnetPrivateKey: "MAINNET-SENTINEL",
		env.EnvTestnetPrivateKey: "TESTNET-SENTINEL",
	}))

	tests := []struct {
		name    string
		account string
	}{
		{"ethereum_mainnet", "MAINNET-SENTINEL"},
		{"base_mainnet", "MAINNET-SENTINEL"},
		{"ethereum_testnet", "TESTNET-SENTINEL"},
		{"base_testnet", "TESTNET-SENTINEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := cfg.Profile(tt.name)
			require.True(t, ok)
			assert.Equal(t, []string{tt.account}, p.Accounts)
		})
	}
}

func TestAssemble_EtherscanCarriedThrough(t *testing.T) {
	cfg := Assemble(loadEnv(t, env.MapSource{env.EnvEtherscanAPIKey: "ETHERSCAN123"}))

	require.NotNil(t, cfg.Etherscan)
	assert.Equal(t, "ETHERSCAN123", cfg.Etherscan.APIKey)
}

func TestAssemble_Deterministic(t *testing.T) {
	e := loadEnv(t, env.MapSource{env.EnvEtherscanAPIKey: "k"})
	assert.Equal(t, Assemble(e), Assemble(e))
}

func TestDocument(t *testing.T) {
	cfg := Assemble(loadEnv(t, nil))
	doc := cfg.Document()

	assert.Len(t, doc.Networks, 5)
	assert.Equal(t, NetworkEntry{}, doc.Networks[DefaultNetwork])
	assert.Equal(t, NetworkEntry{URL: "https://eth.example", Accounts: []string{"0xabc"}}, doc.Networks["ethereum_mainnet"])
	assert.Nil(t, doc.Etherscan)

	doc.Networks["ethereum_mainnet"].Accounts[0] = "0xchanged"
	p, _ := cfg.Profile("ethereum_mainnet")
	assert.Equal(t, []string{"0xabc"}, p.Accounts, "document must not alias profiles")
}
