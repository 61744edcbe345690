package form

import (
	"strings"

	"handylink-tui/booking"
	"handylink-tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
)

// Render renders the booking form for svc. inputs are in booking.Fields()
// order; errMsg is the inline error from the last failed submission.
func Render(svc booking.Service, inputs []textinput.Model, submitFocused, processing bool, errMsg, spinnerView string) string {
	h := styles.TitleStyle.Render("Book " + svc.Name + " Service")

	lines := []string{h, ""}
	for _, in := range inputs {
		lines = append(lines, in.View())
	}

	label := "Confirm Booking"
	if processing {
		label = "Processing..."
	}

	var button string
	switch {
	case processing:
		button = styles.ButtonStyle.Faint(true).Render(label) + " " + spinnerView
	case submitFocused:
		button = styles.ActiveButtonStyle.Render(label)
	default:
		button = styles.ButtonStyle.Render(label)
	}
	lines = append(lines, button)

	if errMsg != "" {
		lines = append(lines, "", styles.ErrorStyle.Render(errMsg))
	}

	return strings.Join(lines, "\n")
}
