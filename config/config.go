package config

import (
	"encoding/json"
	"math/big"
	"os"
	"strings"
)

// Page identifies the active screen
type Page int

const (
	PageBooking Page = iota
	PageSettings
)

// ProviderEnv overrides the configured wallet provider URL when set
const ProviderEnv = "HANDYLINK_PROVIDER_URL"

// Config represents the application configuration
type Config struct {
	ProviderURL     string  `json:"provider_url"`
	Network         Network `json:"network"`
	DepositReceiver string  `json:"deposit_receiver"`
	DepositWei      string  `json:"deposit_wei"`
	Logger          bool    `json:"logger"`
}

// Network is the chain the wallet is asked to add and switch to
type Network struct {
	ChainID           uint64   `json:"chain_id"`
	ChainName         string   `json:"chain_name"`
	CurrencyName      string   `json:"currency_name"`
	CurrencySymbol    string   `json:"currency_symbol"`
	CurrencyDecimals  uint8    `json:"currency_decimals"`
	RPCURLs           []string `json:"rpc_urls"`
	BlockExplorerURLs []string `json:"block_explorer_urls"`
}

// Deposit parses DepositWei. Invalid or negative values count as zero.
func (c Config) Deposit() *big.Int {
	v, ok := new(big.Int).SetString(strings.TrimSpace(c.DepositWei), 10)
	if !ok || v.Sign() < 0 {
		return new(big.Int)
	}
	return v
}

// ResolveProviderURL returns the provider URL, preferring the environment
func (c Config) ResolveProviderURL() string {
	if env := strings.TrimSpace(os.Getenv(ProviderEnv)); env != "" {
		return env
	}
	return strings.TrimSpace(c.ProviderURL)
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultNetwork is Manta Pacific Mainnet
func DefaultNetwork() Network {
	return Network{
		ChainID:           169,
		ChainName:         "Manta Pacific Mainnet",
		CurrencyName:      "MANTA",
		CurrencySymbol:    "MANTA",
		CurrencyDecimals:  18,
		RPCURLs:           []string{"https://pacific-rpc.manta.network/http"},
		BlockExplorerURLs: []string{"https://pacific-explorer.manta.network"},
	}
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		ProviderURL:     "",
		Network:         DefaultNetwork(),
		DepositReceiver: "0x829ee0644aa28E6002E357A1F41a6CCBb521fb30",
		DepositWei:      "0",
		Logger:          false,
	}
}

// withDefaults fills fields an older or hand-edited file left out
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Network.ChainID == 0 {
		c.Network = def.Network
	}
	if len(c.Network.RPCURLs) == 0 {
		c.Network.RPCURLs = def.Network.RPCURLs
	}
	if c.Network.CurrencySymbol == "" {
		c.Network.CurrencyName = def.Network.CurrencyName
		c.Network.CurrencySymbol = def.Network.CurrencySymbol
		c.Network.CurrencyDecimals = def.Network.CurrencyDecimals
	}
	if c.DepositReceiver == "" {
		c.DepositReceiver = def.DepositReceiver
	}
	if c.DepositWei == "" {
		c.DepositWei = def.DepositWei
	}
	return c
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := DefaultConfig()
		_ = Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}

	return cfg.withDefaults()
}
