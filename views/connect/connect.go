package connect

import (
	"handylink-tui/booking"
	"handylink-tui/config"
	"handylink-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Provider describes the wallet provider link as seen by the UI
type Provider struct {
	URL     string
	Dialing bool
	Err     string
}

// Render renders the wallet section. Without a provider the connect
// control is shown disabled with a hint instead of an action.
func Render(conn booking.Connection, p Provider, spinnerView string) string {
	h := styles.TitleStyle.Render("Connect Wallet")
	if conn.Status == booking.Connected {
		h = styles.TitleStyle.Render("Wallet Connected")
	}

	var status string
	switch conn.Status {
	case booking.Connecting:
		status = spinnerView + " " + conn.Display()
	case booking.Connected:
		status = lipgloss.NewStyle().Foreground(styles.CAccent).Render("● " + conn.Display())
	case booking.ConnectFailed:
		status = styles.ErrorStyle.Render("⚠ " + conn.Display())
	}

	var action string
	switch {
	case p.URL == "":
		action = styles.MutedStyle.Render("No wallet provider found. Set ") +
			lipgloss.NewStyle().Foreground(styles.CAccent).Render(config.ProviderEnv) +
			styles.MutedStyle.Render(" or press ") + styles.Key("s") +
			styles.MutedStyle.Render(" to configure one.")
	case p.Dialing:
		action = spinnerView + styles.MutedStyle.Render(" reaching wallet provider…")
	case p.Err != "":
		action = lipgloss.NewStyle().Foreground(styles.CWarn).Render("⚠ " + p.Err)
	case conn.Status == booking.Disconnected || conn.Status == booking.ConnectFailed:
		action = styles.ButtonStyle.Render("Connect Wallet") + "  " + styles.Key("w")
	}

	out := h
	if status != "" {
		out += "\n" + status
	}
	if action != "" {
		out += "\n" + action
	}
	return out
}
