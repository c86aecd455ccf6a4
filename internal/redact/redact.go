// Package redact renders an assembled network configuration for humans with
// every credential masked.
package redact

import (
	"fmt"

	mask "github.com/showa-93/go-mask"

	"github.com/TeneoProtocolAI/teneo-contracts/pkg/accounts"
	"github.com/TeneoProtocolAI/teneo-contracts/pkg/network"
)

// Account is a signer with its derived address and masked key.
type Account struct {
	Address string
	Key     string `mask:"fixed"`
}

// Network is a masked network profile.
type Network struct {
	Name     string
	URL      string
	Accounts []Account
}

// View is a display-safe summary of a network.Config.
type View struct {
	Compiler        string
	OptimizerRuns   int
	DefaultNetwork  string
	Networks        []Network
	Verification    bool
	EtherscanAPIKey string `mask:"fixed"`
}

func newMasker() *mask.Masker {
	masker := mask.NewMasker()
	masker.RegisterMaskStringFunc(mask.MaskTypeFixed, masker.MaskFixedString)
	return masker
}

// NewView builds the masked view of cfg. Accounts whose key cannot be parsed
// keep an empty address.
func NewView(cfg *network.Config) (View, error) {
	v := View{
		Compiler:       cfg.Solidity.Version,
		OptimizerRuns:  cfg.Solidity.Settings.Optimizer.Runs,
		DefaultNetwork: cfg.DefaultNetwork,
		Networks:       make([]Network, 0, len(cfg.Networks)),
	}

	for _, name := range cfg.Names() {
		p, _ := cfg.Profile(name)
		n := Network{Name: p.Name, URL: p.URL}
		for _, key := range p.Accounts {
			var address string
			if addr, err := accounts.Address(key); err == nil {
				address = addr.Hex()
			}
			n.Accounts = append(n.Accounts, Account{Address: address, Key: key})
		}
		v.Networks = append(v.Networks, n)
	}

	if cfg.Etherscan != nil {
		v.Verification = true
		v.EtherscanAPIKey = cfg.Etherscan.APIKey
	}

	masked, err := newMasker().Mask(v)
	if err != nil {
		return View{}, fmt.Errorf("failed to mask config: %w", err)
	}
	out, ok := masked.(View)
	if !ok {
		return View{}, fmt.Errorf("failed to mask config: unexpected type %T", masked)
	}

	return out, nil
}
