package home

import (
	"strings"

	"handylink-tui/helpers"
	"handylink-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Tagline is shown under the app title
const Tagline = "Connecting you with local repair professionals."

// PaymentOptions lists the payment methods. None are selectable yet.
var PaymentOptions = []string{"Pay with Aptos - Coming Soon"}

// RenderIntro renders the welcome panel
func RenderIntro() string {
	title := styles.TitleStyle.Render(helpers.FadeString("Welcome to HandyLink", "#7EE787", "#82CFFD"))
	body := lipgloss.NewStyle().Foreground(styles.CText).Render(
		"Find trusted professionals for plumbing, electrical, carpentry and more. " +
			"Book a service and pay securely using blockchain technology.")
	return title + "\n" + body
}

// RenderPayments renders the disabled payment option buttons
func RenderPayments() string {
	h := styles.TitleStyle.Render("Payment Options")

	buttons := make([]string, 0, len(PaymentOptions))
	for _, opt := range PaymentOptions {
		buttons = append(buttons, styles.ButtonStyle.Faint(true).Render(opt))
	}

	return h + "\n" + strings.Join(buttons, "\n")
}
