package main

import (
	"fmt"
	"os"
	"path/filepath"

	"handylink-tui/config"

	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- MAIN --------------------

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".handylink-config.json"
	}
	return filepath.Join(home, ".handylink-config.json")
}

func main() {
	path := configPath()
	m := newModel(config.LoadOrCreate(path), path)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
