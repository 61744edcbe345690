package wallet_test

import (
	"context"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	"handylink-tui/wallet"
	"handylink-tui/wallet/wallettest"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manta = wallet.ChainParams{
	ChainID:   0xA9,
	ChainName: "Manta Pacific Mainnet",
	NativeCurrency: wallet.NativeCurrency{
		Name:     "MANTA",
		Symbol:   "MANTA",
		Decimals: 18,
	},
	RPCURLs:           []string{"https://pacific-rpc.manta.network/http"},
	BlockExplorerURLs: []string{"https://pacific-explorer.manta.network"},
}

const receiver = "0x829ee0644aa28E6002E357A1F41a6CCBb521fb30"

func newBridge(t *testing.T, p *wallettest.Provider) *wallet.Bridge {
	t.Helper()
	return wallet.NewBridge(wallettest.Start(t, p), "inproc", manta)
}

func TestConnect(t *testing.T) {
	t.Run("adds chain then requests accounts", func(t *testing.T) {
		p := &wallettest.Provider{Accounts: []string{"0xABCDEF1234567890", "0x2222222222222222"}}
		b := newBridge(t, p)

		account, err := b.Connect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "0xABCDEF1234567890", account)
		assert.Equal(t, []string{"wallet_addEthereumChain", "eth_chainId", "eth_requestAccounts"}, p.Calls())

		added := p.Added()
		require.Len(t, added, 1)
		assert.Equal(t, manta.ChainName, added[0].ChainName)
		assert.Equal(t, uint64(169), uint64(added[0].ChainID))
		assert.Equal(t, "MANTA", added[0].NativeCurrency.Symbol)
		assert.Equal(t, uint8(18), added[0].NativeCurrency.Decimals)
		assert.Equal(t, manta.RPCURLs, added[0].RPCURLs)
		assert.Equal(t, manta.BlockExplorerURLs, added[0].BlockExplorerURLs)
	})

	tests := []struct {
		name     string
		provider *wallettest.Provider
		wantOp   string
	}{
		{
			name:     "add chain rejected",
			provider: &wallettest.Provider{RejectAddChain: wallettest.ErrUserRejected, Accounts: []string{"0x1"}},
			wantOp:   "wallet_addEthereumChain",
		},
		{
			name:     "wallet stays on another chain",
			provider: &wallettest.Provider{ChainID: 1, IgnoreSwitch: true, Accounts: []string{"0x1"}},
			wantOp:   "eth_chainId",
		},
		{
			name:     "account request rejected",
			provider: &wallettest.Provider{RejectAccounts: wallettest.ErrUserRejected},
			wantOp:   "eth_requestAccounts",
		},
		{
			name:     "no accounts",
			provider: &wallettest.Provider{},
			wantOp:   "eth_requestAccounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBridge(t, tt.provider)

			account, err := b.Connect(context.Background())
			require.Error(t, err)
			assert.Empty(t, account)
			assert.True(t, errors.Is(err, wallet.ErrConnection))
			assert.False(t, errors.Is(err, wallet.ErrTransaction))

			var werr *wallet.Error
			require.True(t, errors.As(err, &werr))
			assert.Equal(t, tt.wantOp, werr.Op)
		})
	}
}

func TestNilBridge(t *testing.T) {
	var b *wallet.Bridge

	_, err := b.Connect(context.Background())
	assert.True(t, errors.Is(err, wallet.ErrNoProvider))

	_, err = b.CheckBalance(context.Background(), "0x1")
	assert.True(t, errors.Is(err, wallet.ErrNoProvider))

	_, err = b.Transfer(context.Background(), "0x1", receiver, big.NewInt(0))
	assert.True(t, errors.Is(err, wallet.ErrNoProvider))

	b.Close()
}

func TestDialWithoutProvider(t *testing.T) {
	result := wallet.Dial("", manta)
	assert.Nil(t, result.Bridge)
	assert.True(t, errors.Is(result.Error, wallet.ErrNoProvider))

	result = wallet.Dial("   ", manta)
	assert.True(t, errors.Is(result.Error, wallet.ErrNoProvider))
}

func TestCheckBalance(t *testing.T) {
	oneManta, _ := new(big.Int).SetString("1000000000000000000", 10)
	p := &wallettest.Provider{
		Balances: map[string]*big.Int{"0xabcdef1234567890": oneManta},
	}
	b := newBridge(t, p)

	bal, err := b.CheckBalance(context.Background(), "0xABCDEF1234567890")
	require.NoError(t, err)
	assert.Equal(t, 0, bal.Cmp(oneManta))

	bal, err = b.CheckBalance(context.Background(), "0x9999999999999999")
	require.NoError(t, err)
	assert.Zero(t, bal.Sign())

	p.RejectBalance = errors.New("header not found")
	_, err = b.CheckBalance(context.Background(), "0xABCDEF1234567890")
	require.Error(t, err)
	assert.True(t, errors.Is(err, wallet.ErrTransaction))
}

func TestTransfer(t *testing.T) {
	p := &wallettest.Provider{}
	b := newBridge(t, p)

	hash, err := b.Transfer(context.Background(), "0xABCDEF1234567890", receiver, big.NewInt(0))
	require.NoError(t, err)
	assert.NotEqual(t, common.Hash{}, hash)

	sent := p.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "0xABCDEF1234567890", sent[0].From)
	assert.Equal(t, common.HexToAddress(receiver).Hex(), sent[0].To)
	require.NotNil(t, sent[0].Value)
	assert.Zero(t, sent[0].Value.ToInt().Sign())

	t.Run("nil amount sends zero", func(t *testing.T) {
		_, err := b.Transfer(context.Background(), "0xABCDEF1234567890", receiver, nil)
		require.NoError(t, err)
		assert.Zero(t, p.Sent()[1].Value.ToInt().Sign())
	})

	t.Run("user rejects", func(t *testing.T) {
		p.RejectSend = wallettest.ErrUserRejected
		_, err := b.Transfer(context.Background(), "0xABCDEF1234567890", receiver, big.NewInt(0))
		require.Error(t, err)
		assert.True(t, errors.Is(err, wallet.ErrTransaction))
		assert.Contains(t, err.Error(), "User rejected")
	})

	t.Run("invalid destination never reaches the wallet", func(t *testing.T) {
		before := len(p.Calls())
		_, err := b.Transfer(context.Background(), "0xABCDEF1234567890", "not-an-address", big.NewInt(0))
		require.Error(t, err)
		assert.True(t, errors.Is(err, wallet.ErrTransaction))
		assert.Len(t, p.Calls(), before)
	})
}

func TestExplorerTxURL(t *testing.T) {
	assert.Equal(t, "https://pacific-explorer.manta.network/tx/0xabc", wallet.ExplorerTxURL(manta, "0xabc"))

	trailing := manta
	trailing.BlockExplorerURLs = []string{"https://explorer.example/"}
	assert.Equal(t, "https://explorer.example/tx/0xabc", wallet.ExplorerTxURL(trailing, "0xabc"))

	none := manta
	none.BlockExplorerURLs = nil
	assert.Empty(t, wallet.ExplorerTxURL(none, "0xabc"))
	assert.Empty(t, wallet.ExplorerTxURL(manta, ""))
}

func TestGenerateQRCode(t *testing.T) {
	assert.Empty(t, wallet.GenerateQRCode(""))

	qr := wallet.GenerateQRCode("https://pacific-explorer.manta.network/tx/0xabc")
	assert.NotEmpty(t, qr)
	assert.Greater(t, strings.Count(qr, "\n"), 5)
}

func TestDialLiveProvider(t *testing.T) {
	url := os.Getenv("HANDYLINK_PROVIDER_URL")
	if url == "" {
		t.Skip("HANDYLINK_PROVIDER_URL not set, skipping live provider test")
	}

	result := wallet.DialWithTimeout(url, manta, 10*time.Second)
	require.NoError(t, result.Error)
	require.NotNil(t, result.Bridge)
	defer result.Bridge.Close()
	assert.Equal(t, url, result.Bridge.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	account, err := result.Bridge.Connect(ctx)
	if err != nil {
		t.Logf("connect failed (wallet may have rejected): %v", err)
		return
	}
	t.Logf("connected account: %s", account)

	bal, err := result.Bridge.CheckBalance(ctx, account)
	require.NoError(t, err)
	t.Logf("balance: %s", bal)
}
