package main

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"handylink-tui/booking"
	"handylink-tui/config"
	"handylink-tui/helpers"
	"handylink-tui/wallet"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// chainParams converts the configured network into the wallet_addEthereumChain record
func chainParams(n config.Network) wallet.ChainParams {
	return wallet.ChainParams{
		ChainID:   hexutil.Uint64(n.ChainID),
		ChainName: n.ChainName,
		NativeCurrency: wallet.NativeCurrency{
			Name:     n.CurrencyName,
			Symbol:   n.CurrencySymbol,
			Decimals: n.CurrencyDecimals,
		},
		RPCURLs:           n.RPCURLs,
		BlockExplorerURLs: n.BlockExplorerURLs,
	}
}

// currency describes the configured native currency for balance messages
func currency(n config.Network) booking.Currency {
	return booking.Currency{
		Symbol:   n.CurrencySymbol,
		Decimals: n.CurrencyDecimals,
		Chain:    n.ChainName,
	}
}

// dialProvider opens the JSON-RPC connection to the wallet provider
func dialProvider(url string, chain wallet.ChainParams) tea.Cmd {
	return func() tea.Msg {
		result := wallet.Dial(url, chain)
		return providerDialedMsg{url: url, bridge: result.Bridge, err: result.Error}
	}
}

// connectWallet adds the target chain and requests account access
func connectWallet(b *wallet.Bridge, token uint64) tea.Cmd {
	return func() tea.Msg {
		account, err := b.Connect(context.Background())
		return walletConnectedMsg{token: token, account: account, err: err}
	}
}

// submitBooking checks the balance against the deposit and sends the
// deposit transfer. No retries; a failure ends the submission.
func submitBooking(b *wallet.Bridge, ticket booking.Ticket, receiver string, deposit *big.Int, cur booking.Currency) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		account := ticket.Booking.Account

		balance, err := b.CheckBalance(ctx, account)
		if err != nil {
			return bookingResultMsg{token: ticket.Token, err: err}
		}
		if err := booking.CheckDeposit(balance, deposit, cur); err != nil {
			return bookingResultMsg{token: ticket.Token, err: err}
		}

		hash, err := b.Transfer(ctx, account, receiver, deposit)
		return bookingResultMsg{token: ticket.Token, txHash: hash, err: err}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		if err == nil {
			return clipboardCopiedMsg{}
		}
		return nil
	}
}

// clearClipboardMsg waits 2 seconds then clears clipboard feedback
func clearClipboardMsg() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// bookingSummary is the plain-text confirmation copied to the clipboard
func bookingSummary(b booking.Booking, explorerURL string) string {
	lines := []string{
		"HandyLink booking " + b.Reference,
		"Service: " + b.Service.Name,
		"Customer: " + b.Customer.Name,
		"Address: " + b.Customer.Address,
		"Phone: " + b.Customer.Phone,
		"Email: " + b.Customer.Email,
		"Wallet: " + helpers.ShortenAddr(b.Account),
		"Transaction: " + b.TxHash,
	}
	if explorerURL != "" {
		lines = append(lines, explorerURL)
	}
	return strings.Join(lines, "\n")
}

// -------------------- MODEL HELPER METHODS --------------------
// These methods help with state management and command generation

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// textInputActive returns true if any text input is currently active
func (m *model) textInputActive() bool {
	if m.activePage == config.PageSettings && m.form != nil {
		return true
	}
	_, editing := m.focus.field()
	return editing && m.state.FormVisible()
}

// selectService makes the highlighted service active
func (m *model) selectService(idx int) {
	if idx < 0 || idx >= len(m.services) {
		return
	}
	svc := m.services[idx]
	m.cursor = idx
	m.state.SelectService(svc)
	m.copiedMsg = ""
	m.addLog("info", fmt.Sprintf("Selected service `%s`", svc.Name))
}

// setField writes a customer field into both the state and its input
func (m *model) setField(f booking.Field, value string) {
	m.state.SetField(f, value)
	if int(f) < len(m.inputs) && m.inputs[f].Value() != value {
		m.inputs[f].SetValue(value)
	}
}

// startConnect begins a wallet connection. It is a no-op without a
// provider or while a connection is pending or established.
func (m *model) startConnect() tea.Cmd {
	if m.bridge == nil {
		m.addLog("debug", "Connect ignored: no wallet provider")
		return nil
	}
	token, ok := m.state.BeginConnect()
	if !ok {
		return nil
	}
	m.addLog("info", fmt.Sprintf("Requesting wallet switch to `%s`", m.cfg.Network.ChainName))
	return connectWallet(m.bridge, token)
}

// startSubmit validates the form and starts the deposit transfer. Invalid
// submissions raise the blocking alert and touch no network.
func (m *model) startSubmit() tea.Cmd {
	if m.state.Processing() {
		return nil
	}
	if err := m.state.Validate(); err != nil {
		m.blockSubmit(err.Error())
		return nil
	}
	if m.bridge == nil {
		m.blockSubmit("no wallet provider")
		return nil
	}

	ticket, err := m.state.BeginSubmit(time.Now())
	if err != nil {
		m.blockSubmit(err.Error())
		return nil
	}

	m.addLog("info", fmt.Sprintf("Submitting `%s` booking %s from `%s`",
		ticket.Booking.Service.Name, ticket.Booking.Reference, helpers.ShortenAddr(ticket.Booking.Account)))
	return submitBooking(m.bridge, ticket, m.cfg.DepositReceiver, m.cfg.Deposit(), currency(m.cfg.Network))
}

// blockSubmit raises the validation alert
func (m *model) blockSubmit(reason string) {
	m.showAlert = true
	m.alertMsg = booking.ValidationMessage
	m.addLog("warning", "Booking blocked: "+reason)
}

// setFocus moves keyboard focus, blurring and focusing form inputs
func (m *model) setFocus(f focusArea) tea.Cmd {
	if !m.state.FormVisible() {
		f = focusServices
	}
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if field, ok := f.field(); ok && int(field) == i {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// cycleFocus moves focus forward or backward through the visible areas
func (m *model) cycleFocus(delta int) tea.Cmd {
	if !m.state.FormVisible() {
		return m.setFocus(focusServices)
	}
	n := int(focusSubmit) + 1
	next := (int(m.focus) + delta + n) % n
	return m.setFocus(focusArea(next))
}

// resetProvider drops the current bridge and wallet connection and dials
// the configured provider again
func (m *model) resetProvider() tea.Cmd {
	if m.bridge != nil {
		m.bridge.Close()
		m.bridge = nil
	}
	m.state.Disconnect()
	m.dialErr = ""
	m.providerURL = m.cfg.ResolveProviderURL()
	m.setFocus(focusServices)
	if m.providerURL == "" {
		m.dialing = false
		m.addLog("warning", "No wallet provider configured")
		return nil
	}
	m.dialing = true
	return dialProvider(m.providerURL, chainParams(m.cfg.Network))
}
