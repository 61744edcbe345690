package confirmation

import (
	"fmt"
	"strings"

	"handylink-tui/booking"
	"handylink-tui/helpers"
	"handylink-tui/styles"
	"handylink-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// Note is printed under every confirmation
const Note = "Payment will be processed securely using Aptos and Manta Chain once the job is verified."

// Render renders the confirmation panel for a booking. explorerURL may be
// empty when the network has no block explorer.
func Render(b booking.Booking, explorerURL, copiedMsg string) string {
	h := styles.TitleStyle.Render(helpers.FadeString("Booking Confirmed!", "#7EE787", "#82CFFD"))

	label := lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
	value := lipgloss.NewStyle().Foreground(styles.CText)
	row := func(k, v string) string {
		return fmt.Sprintf("%s %s", label.Render(k+":"), value.Render(v))
	}

	lines := []string{
		h,
		"",
		row("Service", b.Service.Name),
		row("Name", b.Customer.Name),
		row("Address", b.Customer.Address),
		row("Phone", b.Customer.Phone),
		row("Email", b.Customer.Email),
		"",
		row("Reference", b.Reference),
		row("Wallet", helpers.ShortenAddr(b.Account)),
	}

	tx := b.TxHash
	if explorerURL != "" {
		// OSC 8 hyperlink to the block explorer
		linkStyle := lipgloss.NewStyle().Foreground(styles.CMuted).Underline(true)
		tx = fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", explorerURL, linkStyle.Render(helpers.ShortenAddr(b.TxHash)))
	}
	lines = append(lines, label.Render("Transaction:")+" "+tx)

	if explorerURL != "" {
		lines = append(lines, "", wallet.GenerateQRCode(explorerURL))
	}

	lines = append(lines, styles.MutedStyle.Italic(true).Render(Note))

	hint := styles.MutedStyle.Render("Press ") + styles.Key("c") + styles.MutedStyle.Render(" to copy the booking")
	if copiedMsg != "" {
		hint += "  " + lipgloss.NewStyle().Foreground(styles.CAccent).Render(copiedMsg)
	}
	lines = append(lines, hint)

	return strings.Join(lines, "\n")
}
