package settings

import (
	"fmt"
	"strings"

	"handylink-tui/config"
	"handylink-tui/styles"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Nav returns the navigation bar for the settings page
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Tab") + " next field",
		styles.Key("Enter") + " next/save",
		styles.Key("Esc") + " cancel",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the settings page around the huh form
func Render(form *huh.Form, cfg config.Config) string {
	h := styles.TitleStyle.Render("Wallet & Network Settings")

	current := styles.MutedStyle.Render(fmt.Sprintf("Current network: %s (chain %d)",
		cfg.Network.ChainName, cfg.Network.ChainID))

	provider := cfg.ProviderURL
	if provider == "" {
		provider = "not set"
	}
	providerLine := styles.MutedStyle.Render("Provider: ") + lipgloss.NewStyle().Foreground(styles.CText).Render(provider)

	lines := []string{h, current, providerLine, ""}
	if form != nil {
		lines = append(lines, form.View())
	} else {
		lines = append(lines, styles.MutedStyle.Render("Loading settings..."))
	}
	return strings.Join(lines, "\n")
}
