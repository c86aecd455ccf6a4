package network

// NetworkEntry is a network as the toolchain reads it. The in-process network
// has neither url nor accounts.
type NetworkEntry struct {
	URL      string   `json:"url,omitempty" yaml:"url,omitempty"`
	Accounts []string `json:"accounts,omitempty" yaml:"accounts,omitempty"`
}

// Document is the configuration object consumed by the toolchain.
type Document struct {
	Solidity       Solidity                `json:"solidity" yaml:"solidity"`
	DefaultNetwork string                  `json:"defaultNetwork" yaml:"defaultNetwork"`
	Networks       map[string]NetworkEntry `json:"networks" yaml:"networks"`
	Etherscan      *Etherscan              `json:"etherscan,omitempty" yaml:"etherscan,omitempty"`
}

// Document renders c in the toolchain's schema, including the empty
// in-process network entry.
func (c *Config) Document() *Document {
	doc := &Document{
		Solidity:       c.Solidity,
		DefaultNetwork: c.DefaultNetwork,
		Networks:       make(map[string]NetworkEntry, len(c.Networks)+1),
	}

	doc.Networks[DefaultNetwork] = NetworkEntry{}
	for name, p := range c.Networks {
		accounts := make([]string, len(p.Accounts))
		copy(accounts, p.Accounts)
		doc.Networks[name] = NetworkEntry{URL: p.URL, Accounts: accounts}
	}

	if c.Etherscan != nil {
		e := *c.Etherscan
		doc.Etherscan = &e
	}

	return doc
}
