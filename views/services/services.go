package services

import (
	"strings"

	"handylink-tui/booking"
	"handylink-tui/helpers"
	"handylink-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// RenderList renders the service buttons. cursor is the highlighted row,
// selected the ID of the chosen service or 0.
func RenderList(list []booking.Service, cursor, selected int, focused bool) string {
	if len(list) == 0 {
		return styles.MutedStyle.Render("No services available.")
	}

	items := make([]string, 0, len(list))
	for i, svc := range list {
		var marker string
		var itemStyle lipgloss.Style
		label := svc.Label()

		switch {
		case i == cursor && focused:
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			itemStyle = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
		case svc.ID == selected:
			marker = "  "
			itemStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
		default:
			marker = "  "
			itemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e1a2aa"))
			label = helpers.FadeString(label, "#F25D94", "#EDFF82")
		}

		if svc.ID == selected {
			label = "✓ " + label
		}
		items = append(items, marker+itemStyle.Render(label))
	}

	return strings.Join(items, "\n")
}

// Render renders the services section with its title
func Render(list []booking.Service, cursor, selected int, focused bool) string {
	header := styles.TitleStyle.Render("Available Services")
	subtitle := styles.MutedStyle.Render("Connect wallet to continue")

	return header + "\n" + subtitle + "\n\n" + RenderList(list, cursor, selected, focused)
}
