package main

import (
	"strings"

	"handylink-tui/config"
	"handylink-tui/helpers"
	"handylink-tui/styles"
	"handylink-tui/views/confirmation"
	"handylink-tui/views/connect"
	"handylink-tui/views/form"
	"handylink-tui/views/home"
	logview "handylink-tui/views/log"
	"handylink-tui/views/services"
	"handylink-tui/views/settings"
	"handylink-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) renderAlert() string {
	msg := helpers.FadeString(m.alertMsg, "#F25D94", "#EDFF82")
	question := lipgloss.NewStyle().Width(50).Align(lipgloss.Center).Render(msg)
	ok := styles.ActiveButtonStyle.Render("OK")

	ui := lipgloss.JoinVertical(lipgloss.Center, question, ok)
	dialog := styles.DialogBoxStyle.Render(ui)

	return lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-8)

	titleText := lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("HandyLink", "#7EE787", "#82CFFD"))
	tagline := lipgloss.NewStyle().Foreground(cMuted).Render(home.Tagline)

	var statusIcon, statusText string
	statusColor := cError
	switch {
	case m.providerURL == "":
		statusIcon, statusText = "○", "No wallet provider"
	case m.dialing:
		statusIcon, statusText = "○", "Connecting..."
	case m.bridge == nil:
		statusIcon, statusText = "○", "Provider unavailable"
	default:
		statusIcon, statusText = "●", m.cfg.Network.ChainName
		statusColor = cAccent
	}
	status := lipgloss.NewStyle().Foreground(statusColor).Bold(true).Render(statusIcon + " " + statusText)

	left := titleText + "  " + tagline
	var headerLine string
	if lipgloss.Width(left)+lipgloss.Width(status)+2 > availableWidth {
		headerLine = left + "\n" + status
	} else {
		spacer := strings.Repeat(" ", availableWidth-lipgloss.Width(left)-lipgloss.Width(status))
		headerLine = left + spacer + status
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

// bookingColumn renders the wallet section and, depending on phase, the
// booking form or the confirmation
func (m *model) bookingColumn() string {
	conn := m.state.Connection()
	sections := []string{
		connect.Render(conn, connect.Provider{
			URL:     m.providerURL,
			Dialing: m.dialing,
			Err:     m.dialErr,
		}, m.spin.View()),
	}

	if b, ok := m.state.Confirmed(); ok {
		explorer := wallet.ExplorerTxURL(chainParams(m.cfg.Network), b.TxHash)
		sections = append(sections, confirmation.Render(b, explorer, m.copiedMsg))
		return strings.Join(sections, "\n\n")
	}

	if svc, ok := m.state.Service(); ok && m.state.FormVisible() {
		sections = append(sections, form.Render(svc, m.inputs, m.focus == focusSubmit,
			m.state.Processing(), m.state.Err(), m.spin.View()))
	} else if ok {
		sections = append(sections, styles.MutedStyle.Render("Connect your wallet to book "+svc.Name+"."))
	}

	return strings.Join(sections, "\n\n")
}

func (m *model) View() string {
	headerPanel := panelStyle.Width(max(0, m.w-2)).Render(m.globalHeader())

	var pageContent, nav string

	switch m.activePage {
	case config.PageSettings:
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(settings.Render(m.form, m.cfg))
		nav = settings.Nav(m.w - 2)

	default:
		selected := 0
		if svc, ok := m.state.Service(); ok {
			selected = svc.ID
		}
		left := strings.Join([]string{
			home.RenderIntro(),
			services.Render(m.services, m.cursor, selected, m.focus == focusServices),
			home.RenderPayments(),
		}, "\n\n")

		listWidth := max(0, (m.w*4)/10-2)
		bookingWidth := max(0, (m.w*6)/10-2)

		leftPanel := panelStyle.Width(listWidth).Render(left)
		rightPanel := panelStyle.
			Width(bookingWidth + 1).
			Height(max(0, lipgloss.Height(leftPanel)-2)).
			Render(m.bookingColumn())

		pageContent = lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
		nav = navStyle.Width(max(0, m.w-2)).Render(m.help.View(m.keys))
	}

	parts := []string{headerPanel, pageContent, nav}
	if m.logEnabled {
		m.logViewport.Height = logview.PanelHeight(m.h)
		parts = append(parts, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	if m.showAlert {
		return m.renderAlert()
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
