package wallet

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// NativeCurrency describes the chain's native currency
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// ChainParams is the record sent with wallet_addEthereumChain (EIP-3085)
type ChainParams struct {
	ChainID           hexutil.Uint64 `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls,omitempty"`
}

// TransferRequest is the eth_sendTransaction payload
type TransferRequest struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Value *hexutil.Big `json:"value"`
}

// Bridge talks to a wallet provider over JSON-RPC
type Bridge struct {
	rpc   *rpc.Client
	eth   *ethclient.Client
	chain ChainParams
	URL   string
}

// DialResult holds the result of a provider dial attempt
type DialResult struct {
	Bridge *Bridge
	Error  error
}

// Dial connects to the wallet provider at url
func Dial(url string, chain ChainParams) DialResult {
	return DialWithTimeout(url, chain, 8*time.Second)
}

// DialWithTimeout connects with a custom timeout
func DialWithTimeout(url string, chain ChainParams, timeout time.Duration) DialResult {
	if strings.TrimSpace(url) == "" {
		return DialResult{Error: ErrNoProvider}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return DialResult{Error: errors.Wrapf(err, "dial wallet provider %s", url)}
	}
	return DialResult{Bridge: NewBridge(client, url, chain)}
}

// NewBridge wraps an existing RPC client
func NewBridge(client *rpc.Client, url string, chain ChainParams) *Bridge {
	return &Bridge{
		rpc:   client,
		eth:   ethclient.NewClient(client),
		chain: chain,
		URL:   url,
	}
}

// Chain returns the target chain
func (b *Bridge) Chain() ChainParams { return b.chain }

// Close releases the underlying connection
func (b *Bridge) Close() {
	if b != nil && b.rpc != nil {
		b.rpc.Close()
	}
}

// Connect asks the wallet to add and switch to the target chain, then
// requests account access. It returns the first account.
func (b *Bridge) Connect(ctx context.Context) (string, error) {
	if b == nil || b.rpc == nil {
		return "", ErrNoProvider
	}

	if err := b.rpc.CallContext(ctx, nil, "wallet_addEthereumChain", b.chain); err != nil {
		return "", connectionError("wallet_addEthereumChain", err)
	}

	chainID, err := b.eth.ChainID(ctx)
	if err != nil {
		return "", connectionError("eth_chainId", err)
	}
	if !chainID.IsUint64() || chainID.Uint64() != uint64(b.chain.ChainID) {
		return "", connectionError("eth_chainId",
			errors.Errorf("wallet is on chain %s, want %d", chainID, uint64(b.chain.ChainID)))
	}

	var accounts []string
	if err := b.rpc.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return "", connectionError("eth_requestAccounts", err)
	}
	if len(accounts) == 0 || accounts[0] == "" {
		return "", connectionError("eth_requestAccounts", errors.New("wallet returned no accounts"))
	}
	return accounts[0], nil
}

// CheckBalance returns the native balance of account in the smallest unit
func (b *Bridge) CheckBalance(ctx context.Context, account string) (*big.Int, error) {
	if b == nil || b.rpc == nil {
		return nil, ErrNoProvider
	}

	var balance hexutil.Big
	if err := b.rpc.CallContext(ctx, &balance, "eth_getBalance", account, "latest"); err != nil {
		return nil, transactionError("eth_getBalance", err)
	}
	return balance.ToInt(), nil
}

// Transfer submits a value transfer and returns the transaction hash
func (b *Bridge) Transfer(ctx context.Context, from, to string, amount *big.Int) (common.Hash, error) {
	if b == nil || b.rpc == nil {
		return common.Hash{}, ErrNoProvider
	}
	if !common.IsHexAddress(to) {
		return common.Hash{}, transactionError("eth_sendTransaction", errors.Errorf("invalid destination %q", to))
	}
	if amount == nil {
		amount = new(big.Int)
	}

	req := TransferRequest{
		From:  from,
		To:    common.HexToAddress(to).Hex(),
		Value: (*hexutil.Big)(amount),
	}

	var hash common.Hash
	if err := b.rpc.CallContext(ctx, &hash, "eth_sendTransaction", req); err != nil {
		return common.Hash{}, transactionError("eth_sendTransaction", err)
	}
	return hash, nil
}

// ExplorerTxURL links a transaction on the chain's first block explorer
func ExplorerTxURL(chain ChainParams, hash string) string {
	if len(chain.BlockExplorerURLs) == 0 || hash == "" {
		return ""
	}
	return strings.TrimRight(chain.BlockExplorerURLs[0], "/") + "/tx/" + hash
}
