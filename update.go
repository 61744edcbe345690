package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"handylink-tui/config"
	"handylink-tui/helpers"
	"handylink-tui/wallet"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/ethereum/go-ethereum/common"
)

// -------------------- TEMP FORM STORAGE --------------------
// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var (
	tempProviderURL string
	tempChainName   string
	tempChainID     string
	tempRPCURL      string
	tempExplorerURL string
	tempReceiver    string
	tempDepositWei  string
)

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

func (m *model) createSettingsForm() {
	tempProviderURL = m.cfg.ProviderURL
	tempChainName = m.cfg.Network.ChainName
	tempChainID = strconv.FormatUint(m.cfg.Network.ChainID, 10)
	tempRPCURL = firstOrEmpty(m.cfg.Network.RPCURLs)
	tempExplorerURL = firstOrEmpty(m.cfg.Network.BlockExplorerURLs)
	tempReceiver = m.cfg.DepositReceiver
	tempDepositWei = m.cfg.DepositWei

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Wallet Provider URL").
				Description("JSON-RPC endpoint of your wallet (empty disables wallet features)").
				Value(&tempProviderURL).
				Placeholder("http://127.0.0.1:1248"),

			huh.NewInput().
				Title("Chain Name").
				Value(&tempChainName).
				Placeholder("Manta Pacific Mainnet").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("chain name is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Chain ID").
				Description("Decimal chain id").
				Value(&tempChainID).
				Placeholder("169").
				Validate(func(s string) error {
					id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
					if err != nil || id == 0 {
						return fmt.Errorf("invalid chain id")
					}
					return nil
				}),

			huh.NewInput().
				Title("RPC URL").
				Value(&tempRPCURL).
				Placeholder("https://pacific-rpc.manta.network/http").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("rpc url is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Block Explorer URL").
				Value(&tempExplorerURL).
				Placeholder("https://pacific-explorer.manta.network"),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Deposit Receiver").
				Description("Address receiving the booking deposit").
				Value(&tempReceiver).
				Placeholder("0x...").
				Validate(func(s string) error {
					if !common.IsHexAddress(strings.TrimSpace(s)) {
						return fmt.Errorf("invalid address")
					}
					return nil
				}),

			huh.NewInput().
				Title("Deposit (smallest unit)").
				Description("Required balance and transfer value").
				Value(&tempDepositWei).
				Placeholder("0").
				Validate(func(s string) error {
					v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
					if !ok || v.Sign() < 0 {
						return fmt.Errorf("invalid amount")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.form.Init()
}

// applySettingsForm copies the completed form into the config
func (m *model) applySettingsForm() {
	chainID, _ := strconv.ParseUint(strings.TrimSpace(tempChainID), 10, 64)

	m.cfg.ProviderURL = strings.TrimSpace(tempProviderURL)
	m.cfg.Network.ChainName = strings.TrimSpace(tempChainName)
	m.cfg.Network.ChainID = chainID
	m.cfg.Network.RPCURLs = []string{strings.TrimSpace(tempRPCURL)}
	m.cfg.Network.BlockExplorerURLs = nil
	if u := strings.TrimSpace(tempExplorerURL); u != "" {
		m.cfg.Network.BlockExplorerURLs = []string{u}
	}
	m.cfg.DepositReceiver = strings.TrimSpace(tempReceiver)
	m.cfg.DepositWei = strings.TrimSpace(tempDepositWei)
}

func (m *model) saveConfig() {
	if m.configPath == "" {
		return
	}
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.addLog("error", "Failed to save config: "+err.Error())
	}
}

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Settings form gets every message while open
	if m.activePage == config.PageSettings && m.form != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.form = nil
			m.activePage = config.PageBooking
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f

			if m.form.State == huh.StateCompleted {
				m.applySettingsForm()
				m.saveConfig()
				m.addLog("success", fmt.Sprintf("Saved settings for `%s`", m.cfg.Network.ChainName))
				m.form = nil
				m.activePage = config.PageBooking
				return m, m.resetProvider()
			}

			if m.form.State == huh.StateAborted {
				m.form = nil
				m.activePage = config.PageBooking
				return m, nil
			}
		}
		return m, cmd
	}

	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		m.logger = newActivityLogger(m.logBuffer)
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case providerDialedMsg:
		if msg.url != m.providerURL {
			// settings changed while dialing
			msg.bridge.Close()
			return m, nil
		}
		m.dialing = false
		if msg.err != nil {
			m.bridge = nil
			m.dialErr = msg.err.Error()
			m.addLog("error", fmt.Sprintf("Wallet provider unavailable: `%s`", msg.err.Error()))
			return m, nil
		}
		m.bridge = msg.bridge
		m.dialErr = ""
		m.addLog("success", fmt.Sprintf("Wallet provider at `%s`", msg.url))
		return m, nil

	case walletConnectedMsg:
		if msg.err != nil {
			if m.state.ConnectFailed(msg.token, msg.err) {
				m.addLog("error", "Wallet connection failed: "+msg.err.Error())
			}
			return m, nil
		}
		if m.state.ConnectSucceeded(msg.token, msg.account) {
			m.addLog("success", fmt.Sprintf("Wallet connected: `%s`", helpers.ShortenAddr(msg.account)))
		} else {
			m.addLog("debug", "Dropped stale wallet connection result")
		}
		return m, nil

	case bookingResultMsg:
		if msg.err != nil {
			if m.state.Fail(msg.token, msg.err) {
				m.addLog("error", "Booking transaction failed: "+msg.err.Error())
			} else {
				m.addLog("debug", "Dropped stale booking failure")
			}
			return m, nil
		}
		if !m.state.Confirm(msg.token, msg.txHash.Hex(), time.Now()) {
			m.addLog("debug", fmt.Sprintf("Dropped stale booking result `%s`", msg.txHash.Hex()))
			return m, nil
		}
		b, _ := m.state.Confirmed()
		m.addLog("success", fmt.Sprintf("Booking %s confirmed in tx `%s`", b.Reference, helpers.ShortenAddr(b.TxHash)))
		return m, m.setFocus(focusServices)

	case clipboardCopiedMsg:
		m.copiedMsg = "✓ Copied booking to clipboard"
		m.copiedMsgTime = time.Now()
		m.addLog("info", "Copied booking to clipboard")
		return m, clearClipboardMsg()

	case clearCopiedMsg:
		if time.Since(m.copiedMsgTime) >= 2*time.Second {
			m.copiedMsg = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.help.Width = max(0, msg.Width-4)

		if m.logEnabled {
			m.logViewport.Width = max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward everything else (cursor blink) to the focused input
	return m.updateFocusedInput(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The validation alert blocks everything until dismissed
	if m.showAlert {
		switch msg.String() {
		case "enter", "esc", " ":
			m.showAlert = false
			m.alertMsg = ""
		}
		return m, nil
	}

	if !m.textInputActive() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Logger):
			return m, m.toggleLogger()

		case key.Matches(msg, m.keys.Settings):
			m.activePage = config.PageSettings
			m.createSettingsForm()
			return m, nil

		case key.Matches(msg, m.keys.Connect):
			return m, m.startConnect()

		case key.Matches(msg, m.keys.Copy):
			if b, ok := m.state.Confirmed(); ok {
				return m, copyToClipboard(bookingSummary(b, wallet.ExplorerTxURL(chainParams(m.cfg.Network), b.TxHash)))
			}
			return m, nil

		case msg.String() == "pgup" || msg.String() == "pgdown":
			if m.logEnabled && m.logReady {
				var cmd tea.Cmd
				m.logViewport, cmd = m.logViewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.cycleFocus(-1)
	}

	switch m.focus {
	case focusServices:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.services)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selectService(m.cursor)
		}
		return m, nil

	case focusSubmit:
		switch {
		case key.Matches(msg, m.keys.Select):
			return m, m.startSubmit()
		case key.Matches(msg, m.keys.Back):
			return m, m.setFocus(focusServices)
		case key.Matches(msg, m.keys.Up):
			return m, m.setFocus(focusEmail)
		}
		return m, nil
	}

	// a form field has focus
	switch msg.String() {
	case "esc":
		return m, m.setFocus(focusServices)
	case "enter", "down":
		return m, m.setFocus(m.focus + 1)
	case "up":
		return m, m.setFocus(m.focus - 1)
	}
	return m.updateFocusedInput(msg)
}

// updateFocusedInput feeds msg to the focused text input and mirrors its
// value into the booking state
func (m *model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	field, ok := m.focus.field()
	if !ok || !m.state.FormVisible() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[field], cmd = m.inputs[field].Update(msg)
	if v := m.inputs[field].Value(); v != m.state.Customer().Get(field) {
		m.state.SetField(field, v)
	}
	return m, cmd
}

// toggleLogger switches the log panel on or off and persists the choice
func (m *model) toggleLogger() tea.Cmd {
	m.logEnabled = !m.logEnabled
	m.cfg.Logger = m.logEnabled
	m.saveConfig()

	if m.logEnabled {
		if m.w > 0 {
			m.logViewport.Width = m.w - 6
		}
		m.logReady = false
		return tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}

	if m.logBuffer != nil {
		m.logBuffer.Reset()
	}
	m.logger = nil
	m.logReady = false
	return nil
}
