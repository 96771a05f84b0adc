package tui

import (
	"github.com/MKhiriev/nudge/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	hiddenStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

var statusColors = map[models.Status]lipgloss.Color{
	models.StatusCritical:    lipgloss.Color("196"),
	models.StatusApproaching: lipgloss.Color("214"),
	models.StatusSafe:        lipgloss.Color("42"),
}

func statusStyle(status models.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(statusColors[status])
}
