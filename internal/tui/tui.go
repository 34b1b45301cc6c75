package tui

import (
	"daylist/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(kv store.KV) error {
	applyColorProfilePreference()
	applyGlyphPreference()
	LoadTheme(kv)
	m := newAppModel(kv)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
