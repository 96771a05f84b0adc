package tui

import (
	"github.com/MKhiriev/nudge/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes between the pages of the auth flow. It quits once a page
// reports a successful AuthResult or the user presses ctrl+c; every other
// message goes to the active page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	result     AuthResult

	buildInfo models.AppBuildInfo
	aboutOpen bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		next, ok := r.pages[msg.Page]
		if !ok {
			return r, nil
		}
		r.aboutOpen = false
		r.current = next
		return r, next.Init()
	case AuthResult:
		if msg.Err == nil {
			r.result = msg
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleKey consumes the keys owned by the router. The about window
// swallows all input until it is closed.
func (r *RootModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.forceQuit):
		r.quitByUser = true
		return true, tea.Quit
	case r.aboutOpen:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			r.aboutOpen = false
		}
		return true, nil
	case key.Matches(msg, keys.version) && r.isMenuPage():
		r.aboutOpen = true
		return true, nil
	}
	return false, nil
}

func (r RootModel) View() string {
	switch {
	case r.aboutOpen:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("NUDGE", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
