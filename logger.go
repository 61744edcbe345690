package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// newActivityLogger builds the logger behind the activity log panel
func newActivityLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})

	level := func(c lipgloss.Color, name string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true).SetString(name)
	}

	styles := log.DefaultStyles()
	styles.Timestamp = lipgloss.NewStyle().Foreground(cMuted)
	styles.Message = lipgloss.NewStyle().Foreground(cText)
	styles.Key = lipgloss.NewStyle().Foreground(cAccent)
	styles.Value = lipgloss.NewStyle().Foreground(cText)
	styles.Separator = lipgloss.NewStyle().Faint(true)
	styles.Levels = map[log.Level]lipgloss.Style{
		log.DebugLevel: level(cMuted, "DEBUG"),
		log.InfoLevel:  level(cAccent2, "INFO"),
		log.WarnLevel:  level(cWarn, "WARN"),
		log.ErrorLevel: level(cError, "ERROR"),
	}
	l.SetStyles(styles)

	return l
}
