// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const nameColumnWidth = 32

// mainLoopModel is the list screen. The active view is sorted and filtered
// through the filter session; the archive view is sorted only.
type mainLoopModel struct {
	ctx     context.Context
	source  service.ItemSource
	session *expiry.FilterSession
	guest   bool
	logger  *logger.Logger
	copy    func(string) error

	all      []models.ClassifiedItem
	visible  []models.ClassifiedItem
	idx      int
	archived bool
	loading  bool
	status   string
	errMsg   string

	form    *itemForm
	confirm *confirmModel

	logout bool
}

func newMainLoopModel(ctx context.Context, source service.ItemSource, session *expiry.FilterSession, guest bool, log *logger.Logger) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		source:  source,
		session: session,
		guest:   guest,
		logger:  log,
		copy:    clipboard.WriteAll,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.archived != m.archived {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.all = msg.items
		m.refresh()
		return m, nil
	case itemSavedMsg:
		if m.form == nil {
			return m, nil
		}
		m.form.saving = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form = nil
		m.status = fmt.Sprintf("Saved %q: %s", msg.item.Name, expiryLabel(msg.item.DaysUntilExpiry))
		return m.reload()
	case itemsChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = msg.status
		return m.reload()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggleCritical):
		m.toggle(models.StatusCritical)
	case key.Matches(msg, keys.toggleApproach):
		m.toggle(models.StatusApproaching)
	case key.Matches(msg, keys.toggleSafe):
		m.toggle(models.StatusSafe)
	case key.Matches(msg, keys.switchView):
		m.archived = !m.archived
		m.all, m.visible, m.idx = nil, nil, 0
		m.status = ""
		return m.reload()
	case key.Matches(msg, keys.reload):
		m.status = ""
		return m.reload()
	case key.Matches(msg, keys.newItem):
		if !m.archived {
			form := newItemForm(nil)
			m.form = &form
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.edit):
		if item, ok := m.current(); ok && !m.archived {
			form := newItemForm(&item)
			m.form = &form
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.archive):
		if item, ok := m.current(); ok && !m.archived {
			return m, m.cmdArchive(item)
		}
	case key.Matches(msg, keys.archiveAll):
		if !m.archived && len(m.all) > 0 {
			m.confirm = &confirmModel{message: "Archive all active items?", onYes: m.cmdArchiveAll()}
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.current(); ok {
			m.confirm = &confirmModel{message: fmt.Sprintf("Delete %q?", item.Name), onYes: m.cmdDelete(item)}
		}
	case key.Matches(msg, keys.deleteAll):
		if m.archived && len(m.all) > 0 {
			m.confirm = &confirmModel{message: "Delete every archived item?", onYes: m.cmdDeleteAllArchived()}
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.current(); ok {
			return m, m.cmdCopy(item)
		}
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.form = nil
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.saving {
				return m, nil
			}
			input, err := m.form.input()
			if err != nil {
				m.form.errMsg = err.Error()
				return m, nil
			}
			m.form.errMsg = ""
			m.form.saving = true
			return m, m.cmdSave(m.form.itemID, input)
		}
	}

	form, cmd := m.form.update(msg)
	m.form = &form
	return m, cmd
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		cmd := m.confirm.onYes
		m.confirm = nil
		return m, cmd
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m *mainLoopModel) toggle(status models.Status) {
	if m.archived || m.session.State() == expiry.StateUninitialized {
		return
	}
	pref := m.session.Toggle(m.ctx, status)
	m.logger.Debug().
		Str("status", status.String()).
		Bool("visible", pref.Visible(status)).
		Msg("status filter toggled")
	m.refresh()
}

// refresh rebuilds the visible rows from the loaded items.
func (m *mainLoopModel) refresh() {
	if m.archived {
		m.visible = expiry.Sort(m.all)
	} else {
		m.visible = m.session.Apply(m.ctx, m.all)
	}

	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (models.ClassifiedItem, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return models.ClassifiedItem{}, false
	}
	return m.visible[m.idx], true
}

func (m mainLoopModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, m.cmdLoad()
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx, source, archived := m.ctx, m.source, m.archived
	return func() tea.Msg {
		var (
			items []models.ClassifiedItem
			err   error
		)
		if archived {
			items, err = source.ListArchived(ctx)
		} else {
			items, err = source.ListActive(ctx)
		}
		return listLoadedMsg{items: items, archived: archived, err: err}
	}
}

func (m mainLoopModel) cmdSave(itemID int64, input models.ItemInput) tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		if itemID == 0 {
			item, err := source.Create(ctx, input)
			return itemSavedMsg{item: item, err: err}
		}
		item, err := source.Update(ctx, itemID, input)
		return itemSavedMsg{item: item, err: err}
	}
}

func (m mainLoopModel) cmdArchive(item models.ClassifiedItem) tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		return itemsChangedMsg{status: fmt.Sprintf("Archived %q", item.Name), err: source.Archive(ctx, item.ID)}
	}
}

func (m mainLoopModel) cmdArchiveAll() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		n, err := source.ArchiveAll(ctx)
		return itemsChangedMsg{status: fmt.Sprintf("Archived %d items", n), err: err}
	}
}

func (m mainLoopModel) cmdDelete(item models.ClassifiedItem) tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		return itemsChangedMsg{status: fmt.Sprintf("Deleted %q", item.Name), err: source.Delete(ctx, item.ID)}
	}
}

func (m mainLoopModel) cmdDeleteAllArchived() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		n, err := source.DeleteAllArchived(ctx)
		return itemsChangedMsg{status: fmt.Sprintf("Deleted %d archived items", n), err: err}
	}
}

func (m mainLoopModel) cmdCopy(item models.ClassifiedItem) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{err: copyFn(itemLine(item))}
	}
}

func (m mainLoopModel) View() string {
	if m.form != nil {
		return m.form.view()
	}

	title := "NUDGE · Active"
	if m.archived {
		title = "NUDGE · Archive"
	}
	if m.guest {
		title += " (guest)"
	}

	var b strings.Builder
	if !m.archived {
		b.WriteString(statusBadges(expiry.CountByStatus(m.all), m.session.Visible()))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.all) == 0:
		b.WriteString("Loading...\n")
	case len(m.all) == 0 && m.archived:
		b.WriteString("The archive is empty.\n")
	case len(m.all) == 0:
		b.WriteString("No items yet. Press n to add one.\n")
	case len(m.visible) == 0:
		b.WriteString("Every item is hidden by the status filter.\n")
	default:
		for i, item := range m.visible {
			b.WriteString(m.renderRow(i, item))
			b.WriteString("\n")
		}
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m mainLoopModel) renderRow(i int, item models.ClassifiedItem) string {
	cursor := "  "
	if i == m.idx {
		cursor = "> "
	}

	name := fmt.Sprintf("%-*s", nameColumnWidth, fitText(item.Name, nameColumnWidth))
	if i == m.idx {
		name = selectedStyle.Render(name)
	}

	label := expiryLabel(item.DaysUntilExpiry)
	if m.archived {
		label = helpStyle.Render(label)
	} else {
		label = statusStyle(item.Status).Render(label)
	}

	return fmt.Sprintf("%s%s %s  %s  %s", cursor, itemIcon(item.Name), name, item.ExpiryDate, label)
}

func (m mainLoopModel) hotKeys() string {
	if m.archived {
		return "v: active │ d: delete │ D: delete all │ c: copy │ r: reload │ l: sign out │ q: quit"
	}
	return "1/2/3: critical/approaching/safe │ n: new │ e: edit │ a: archive │ A: archive all │ d: delete │ v: archive │ c: copy │ r: reload │ l: sign out │ q: quit"
}
