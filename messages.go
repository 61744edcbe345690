package main

import (
	"handylink-tui/wallet"

	"github.com/ethereum/go-ethereum/common"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct{}

// clearCopiedMsg clears the clipboard feedback line
type clearCopiedMsg struct{}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// providerDialedMsg contains result of dialing the wallet provider
type providerDialedMsg struct {
	url    string
	bridge *wallet.Bridge
	err    error
}

// walletConnectedMsg contains result of a wallet connect attempt
type walletConnectedMsg struct {
	token   uint64
	account string
	err     error
}

// bookingResultMsg contains result of the deposit transfer for a submission
type bookingResultMsg struct {
	token  uint64
	txHash common.Hash
	err    error
}
