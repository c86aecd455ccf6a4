// Package accounts derives signer addresses from tier private keys.
package accounts

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrInvalidPrivateKey is returned when a credential is not a secp256k1 key.
var ErrInvalidPrivateKey = errors.New("invalid private key")

// Address derives the account address controlled by a hex private key.
// The 0x prefix is optional.
func Address(privateKeyHex string) (common.Address, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	publicKeyECDSA, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: failed to derive public key", ErrInvalidPrivateKey)
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA), nil
}

// Addresses derives the address of every account, keeping order.
func Addresses(privateKeys []string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(privateKeys))
	for i, key := range privateKeys {
		addr, err := Address(key)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		out = append(out, addr)
	}
	return out, nil
}
