package main

import (
	"strings"
	"time"

	"handylink-tui/booking"
	"handylink-tui/config"
	"handylink-tui/styles"
	"handylink-tui/wallet"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// focusArea is the part of the booking page receiving keys
type focusArea int

const (
	focusServices focusArea = iota
	focusName
	focusAddress
	focusPhone
	focusEmail
	focusSubmit
)

// field maps a form focus to the customer field it edits
func (f focusArea) field() (booking.Field, bool) {
	switch f {
	case focusName:
		return booking.FieldName, true
	case focusAddress:
		return booking.FieldAddress, true
	case focusPhone:
		return booking.FieldPhone, true
	case focusEmail:
		return booking.FieldEmail, true
	}
	return 0, false
}

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	activePage config.Page

	cfg        config.Config
	configPath string

	// booking flow
	state    booking.State
	services []booking.Service
	cursor   int // highlighted service
	focus    focusArea
	inputs   []textinput.Model

	// wallet provider
	providerURL string
	bridge      *wallet.Bridge
	dialing     bool
	dialErr     string

	// blocking validation alert
	showAlert bool
	alertMsg  string

	spin spinner.Model

	// clipboard feedback
	copiedMsg     string
	copiedMsgTime time.Time

	// settings form
	form *huh.Form

	keys keyMap
	help help.Model

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// -------------------- INIT --------------------

func newInput(f booking.Field, placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = f.String() + ": "
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = 120
	in.Width = 48
	return in
}

// newModel creates a model from a loaded configuration
func newModel(cfg config.Config, configPath string) model {
	inputs := []textinput.Model{
		newInput(booking.FieldName, "Jane Doe"),
		newInput(booking.FieldAddress, "221B Baker Street"),
		newInput(booking.FieldPhone, "+1 555 0100"),
		newInput(booking.FieldEmail, "jane@example.com"),
	}

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 20) // resized on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	h := help.New()
	h.ShortSeparator = "   "
	h.Styles.ShortKey = styles.HotkeyKeyStyle
	h.Styles.ShortDesc = styles.HotkeyStyle
	h.Styles.FullKey = styles.HotkeyKeyStyle
	h.Styles.FullDesc = styles.HotkeyStyle

	return model{
		activePage:  config.PageBooking,
		cfg:         cfg,
		configPath:  configPath,
		state:       booking.NewState(),
		services:    booking.Catalog(),
		focus:       focusServices,
		inputs:      inputs,
		providerURL: cfg.ResolveProviderURL(),
		spin:        sp,
		keys:        newKeyMap(),
		help:        h,
		logEnabled:  cfg.Logger,
		logBuffer:   &strings.Builder{},
		logViewport: vp,
		logSpinner:  logSpin,
	}
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	// no provider URL means no injected wallet; connect stays inert
	if m.providerURL != "" {
		m.dialing = true
		cmds = append(cmds, dialProvider(m.providerURL, chainParams(m.cfg.Network)))
	}
	return tea.Batch(cmds...)
}
