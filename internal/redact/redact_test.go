package redact

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeneoProtocolAI/teneo-contracts/pkg/env"
	"github.com/TeneoProtocolAI/teneo-contracts/pkg/network"
)

func TestNewView_MasksSecrets(t *testing.T) {
	mainnetKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	mainnetHex := hexutil.Encode(crypto.FromECDSA(mainnetKey))

	cfg, err := env.NewLoader(env.MapSource{
		env.EnvEthereumMainnetRPC: "https://eth.example",
		env.EnvEthereumTestnetRPC: "https://sepolia.example",
		env.EnvBaseMainnetRPC:     "https://base.example",
		env.EnvBaseTestnetRPC:     "https://base-sepolia.example",
		env.EnvMainnetPrivateKey:  mainnetHex,
		env.EnvTestnetPrivateKey:  "not-a-key",
		env.EnvEtherscanAPIKey:    "ETHERSCAN123",
	}).Load()
	require.NoError(t, err)

	view, err := NewView(network.Assemble(cfg))
	require.NoError(t, err)

	assert.Equal(t, "0.8.18", view.Compiler)
	assert.True(t, view.Verification)
	require.Len(t, view.Networks, 4)

	printed := fmt.Sprintf("%+v", view)
	assert.NotContains(t, printed, mainnetHex)
	assert.NotContains(t, printed, "not-a-key")
	assert.NotContains(t, printed, "ETHERSCAN123")

	byName := map[string]Network{}
	for _, n := range view.Networks {
		byName[n.Name] = n
	}

	eth := byName["ethereum_mainnet"]
	assert.Equal(t, "https://eth.example", eth.URL)
	require.Len(t, eth.Accounts, 1)
	assert.Equal(t, crypto.PubkeyToAddress(mainnetKey.PublicKey).Hex(), eth.Accounts[0].Address)
	assert.NotEmpty(t, eth.Accounts[0].Key)

	assert.Empty(t, byName["base_testnet"].Accounts[0].Address)
}
