// Package wallettest runs an in-process wallet provider for tests.
package wallettest

import (
	"math/big"
	"strings"
	"sync"
	"testing"

	"handylink-tui/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// ErrUserRejected mimics the EIP-1193 4001 rejection a wallet returns
var ErrUserRejected = errors.New("User rejected the request.")

// Provider is a scriptable fake wallet. Zero values behave like an
// unlocked wallet on chain 1 that switches chains on request.
type Provider struct {
	mu sync.Mutex

	ChainID  uint64
	Accounts []string
	Balances map[string]*big.Int

	// Set to make the matching call fail
	RejectAddChain error
	RejectAccounts error
	RejectBalance  error
	RejectSend     error

	// IgnoreSwitch keeps ChainID unchanged on wallet_addEthereumChain
	IgnoreSwitch bool

	calls []string
	added []wallet.ChainParams
	sent  []wallet.TransferRequest
	nonce uint64
}

// Start serves p in-process and returns a client bound to it. The client
// and server are shut down when the test ends.
func Start(t testing.TB, p *Provider) *rpc.Client {
	t.Helper()

	server := rpc.NewServer()
	if err := server.RegisterName("eth", &ethService{p: p}); err != nil {
		t.Fatalf("register eth service: %v", err)
	}
	if err := server.RegisterName("wallet", &walletService{p: p}); err != nil {
		t.Fatalf("register wallet service: %v", err)
	}

	client := rpc.DialInProc(server)
	t.Cleanup(func() {
		client.Close()
		server.Stop()
	})
	return client
}

// Calls returns the methods invoked so far, in order
func (p *Provider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

// Added returns the chains passed to wallet_addEthereumChain
func (p *Provider) Added() []wallet.ChainParams {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]wallet.ChainParams(nil), p.added...)
}

// Sent returns the accepted eth_sendTransaction payloads
func (p *Provider) Sent() []wallet.TransferRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]wallet.TransferRequest(nil), p.sent...)
}

func (p *Provider) record(method string) {
	p.calls = append(p.calls, method)
}

type walletService struct{ p *Provider }

func (s *walletService) AddEthereumChain(params wallet.ChainParams) error {
	p := s.p
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("wallet_addEthereumChain")
	if p.RejectAddChain != nil {
		return p.RejectAddChain
	}
	p.added = append(p.added, params)
	if !p.IgnoreSwitch {
		p.ChainID = uint64(params.ChainID)
	}
	return nil
}

type ethService struct{ p *Provider }

func (s *ethService) ChainId() (*hexutil.Big, error) {
	p := s.p
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("eth_chainId")
	id := p.ChainID
	if id == 0 {
		id = 1
	}
	return (*hexutil.Big)(new(big.Int).SetUint64(id)), nil
}

func (s *ethService) RequestAccounts() ([]string, error) {
	p := s.p
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("eth_requestAccounts")
	if p.RejectAccounts != nil {
		return nil, p.RejectAccounts
	}
	return append([]string{}, p.Accounts...), nil
}

func (s *ethService) GetBalance(account string, block string) (*hexutil.Big, error) {
	p := s.p
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("eth_getBalance")
	if p.RejectBalance != nil {
		return nil, p.RejectBalance
	}
	if block != "latest" {
		return nil, errors.Errorf("unsupported block tag %q", block)
	}
	for addr, bal := range p.Balances {
		if strings.EqualFold(addr, account) {
			return (*hexutil.Big)(new(big.Int).Set(bal)), nil
		}
	}
	return (*hexutil.Big)(new(big.Int)), nil
}

func (s *ethService) SendTransaction(req wallet.TransferRequest) (common.Hash, error) {
	p := s.p
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("eth_sendTransaction")
	if p.RejectSend != nil {
		return common.Hash{}, p.RejectSend
	}
	p.sent = append(p.sent, req)
	p.nonce++
	return crypto.Keccak256Hash([]byte(req.From), []byte(req.To), new(big.Int).SetUint64(p.nonce).Bytes()), nil
}
