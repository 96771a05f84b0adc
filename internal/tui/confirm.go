package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks before a destructive action and runs onYes when the
// user agrees.
type confirmModel struct {
	message string
	onYes   tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
