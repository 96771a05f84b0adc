package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	errEmptyName = errors.New("name is required")
	errBadDate   = errors.New("expiry date must be YYYY-MM-DD")
)

// itemForm edits the name and expiry date of a new or existing item.
type itemForm struct {
	itemID int64 // 0 for a new item
	inputs []textinput.Model
	focus  int
	saving bool
	errMsg string
}

func newItemForm(item *models.ClassifiedItem) itemForm {
	name := textinput.New()
	name.Placeholder = "Passport"
	name.CharLimit = 200
	name.Width = 40
	name.Focus()

	date := textinput.New()
	date.Placeholder = models.DateLayout
	date.CharLimit = len(models.DateLayout)
	date.Width = 12

	form := itemForm{inputs: []textinput.Model{name, date}}
	if item != nil {
		form.itemID = item.ID
		form.inputs[0].SetValue(item.Name)
		form.inputs[1].SetValue(item.ExpiryDate)
	}
	return form
}

func (f itemForm) update(msg tea.Msg) (itemForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.moveFocus(1)
			return f, nil
		case "shift+tab", "up":
			f.moveFocus(-1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// input validates the fields the way the server does before a round trip.
func (f itemForm) input() (models.ItemInput, error) {
	in := models.ItemInput{
		Name:       strings.TrimSpace(f.inputs[0].Value()),
		ExpiryDate: strings.TrimSpace(f.inputs[1].Value()),
	}
	if in.Name == "" {
		return in, errEmptyName
	}
	if _, err := expiry.ParseExpiryDate(in.ExpiryDate); err != nil {
		return in, errBadDate
	}
	return in, nil
}

func (f *itemForm) moveFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f itemForm) view() string {
	title := "NEW ITEM"
	if f.itemID != 0 {
		title = "EDIT ITEM"
	}

	var b strings.Builder
	b.WriteString("Name        │ ")
	b.WriteString(f.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Expiry date │ ")
	b.WriteString(f.inputs[1].View())
	b.WriteString("\n")

	if f.saving {
		b.WriteString("\n[Saving...]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}
