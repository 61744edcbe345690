package log

import (
	"fmt"

	"handylink-tui/helpers"
	"handylink-tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// PanelHeight is how many viewport lines the log panel gets for a
// terminal of the given height
func PanelHeight(height int) int {
	// header, nav, borders and margins
	available := helpers.Max(5, height-10)
	return helpers.Min(available, helpers.Min(height/3, 15))
}

// Render renders the log panel
func Render(width, height int, logReady bool, logSpinnerView string, vp viewport.Model) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Activity Log")

	panelHeight := PanelHeight(height)
	vp.Height = panelHeight

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(panelHeight + 2)

	if !logReady {
		return border.Render(title + "\n\n" + "starting logger...\n" + logSpinnerView)
	}

	scroll := ""
	if vp.TotalLineCount() > vp.Height {
		scroll = styles.MutedStyle.Render(fmt.Sprintf(" [%d%%] pgup/pgdown", int(vp.ScrollPercent()*100)))
	}

	return border.Render(title + scroll + "\n\n" + vp.View())
}
