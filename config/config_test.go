package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := LoadOrCreate(path)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err := os.Stat(path)
	require.NoError(t, err, "default config should be written to disk")

	assert.Equal(t, cfg, Load(path))
}

func TestDefaultNetworkIsMantaPacific(t *testing.T) {
	n := DefaultNetwork()
	assert.Equal(t, uint64(169), n.ChainID)
	assert.Equal(t, "Manta Pacific Mainnet", n.ChainName)
	assert.Equal(t, "MANTA", n.CurrencySymbol)
	assert.Equal(t, uint8(18), n.CurrencyDecimals)
	assert.Equal(t, []string{"https://pacific-rpc.manta.network/http"}, n.RPCURLs)
	assert.Equal(t, []string{"https://pacific-explorer.manta.network"}, n.BlockExplorerURLs)
}

func TestLoadOrCreateFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider_url":"http://127.0.0.1:1248","logger":true}`), 0644))

	cfg := LoadOrCreate(path)
	assert.Equal(t, "http://127.0.0.1:1248", cfg.ProviderURL)
	assert.True(t, cfg.Logger)
	assert.Equal(t, DefaultNetwork(), cfg.Network)
	assert.Equal(t, DefaultConfig().DepositReceiver, cfg.DepositReceiver)
	assert.Equal(t, "0", cfg.DepositWei)
}

func TestLoadOrCreateInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	assert.Equal(t, DefaultConfig(), LoadOrCreate(path))
	assert.Equal(t, Config{}, Load(path))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.ProviderURL = "ws://localhost:8546"
	cfg.Network.ChainID = 3441006
	cfg.Network.ChainName = "Manta Pacific Sepolia"
	require.NoError(t, Save(path, cfg))

	assert.Equal(t, cfg, LoadOrCreate(path))
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"", "0"},
		{"garbage", "0"},
		{"-5", "0"},
		{" 1000000000000000000 ", "1000000000000000000"},
	}

	for _, tt := range tests {
		cfg := Config{DepositWei: tt.in}
		assert.Equal(t, tt.want, cfg.Deposit().String(), "Deposit(%q)", tt.in)
	}
}

func TestResolveProviderURL(t *testing.T) {
	cfg := Config{ProviderURL: " http://127.0.0.1:1248 "}

	t.Setenv(ProviderEnv, "")
	assert.Equal(t, "http://127.0.0.1:1248", cfg.ResolveProviderURL())

	t.Setenv(ProviderEnv, "ws://127.0.0.1:8546")
	assert.Equal(t, "ws://127.0.0.1:8546", cfg.ResolveProviderURL())
}
