package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/entry"
	"tableflip.dev/vita/pkg/timeutil"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()

	case tea.KeyPressMsg:
		if m.handleKeyPress(msg, &cmds) {
			return m, tea.Batch(cmds...)
		}
		if m.mode == modeNormal {
			var cmd tea.Cmd
			m.entryList, cmd = m.entryList.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case mutationMsg:
		cmds = append(cmds, m.coord.Invalidate()...)
		cmds = append(cmds, m.waitForMutation())

	case mutationDoneMsg:
		if msg.err != nil {
			if m.observe(msg.err, &cmds) {
				return m, tea.Batch(cmds...)
			}
			m.status = errorStatus(msg.err)
		} else {
			m.status = msg.verb + "."
		}

	case entriesMsg:
		if m.observe(msg.err, &cmds) {
			return m, tea.Batch(cmds...)
		}
		if m.entries.Complete(msg.ticket, &msg.entries, msg.err) && msg.err == nil {
			m.setEntryItems(msg.entries)
		}

	case dailyMsg:
		if m.observe(msg.err, &cmds) {
			return m, tea.Batch(cmds...)
		}
		m.daily.Complete(msg.ticket, msg.summary, msg.err)

	case weeklyMsg:
		if m.observe(msg.err, &cmds) {
			return m, tea.Batch(cmds...)
		}
		m.weekly.Complete(msg.ticket, msg.summary, msg.err)

	case trendsMsg:
		if m.observe(msg.err, &cmds) {
			return m, tea.Batch(cmds...)
		}
		m.trends.Complete(msg.ticket, msg.report, msg.err)
	}

	return m, tea.Batch(cmds...)
}

// observe routes unauthorized responses to the session manager and quits;
// the login command is the only way back in.
func (m *Model) observe(err error, cmds *[]tea.Cmd) bool {
	if !api.IsUnauthorized(err) {
		return false
	}
	m.fatal = m.session.Observe(err)
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	*cmds = append(*cmds, tea.Quit)
	return true
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch m.mode {
	case modeInsert:
		return m.handleInsertKey(msg, cmds)
	case modeConfirm:
		return m.handleConfirmKey(msg, cmds)
	default:
		return m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		*cmds = append(*cmds, tea.Quit)
		return true
	case "r":
		m.status = "Refreshing"
		*cmds = append(*cmds, m.coord.Invalidate()...)
		return true
	case "[", "left":
		*cmds = append(*cmds, m.navigateDaily(m.nav.Prev()))
		return true
	case "]", "right":
		*cmds = append(*cmds, m.navigateDaily(m.nav.Next()))
		return true
	case "t":
		*cmds = append(*cmds, m.navigateDaily(m.nav.Set(timeutil.Today())))
		return true
	case "g":
		m.toggleTrends(cmds)
		return true
	case "o":
		m.action = actionAdd
		m.enterInsert("", cmds)
		return true
	case "e", "i":
		if it := m.currentEntry(); it != nil {
			m.action = actionEdit
			m.editID = it.ID
			m.enterInsert(it.Text, cmds)
		}
		return true
	case "d":
		if it := m.currentEntry(); it != nil {
			m.confirmID = it.ID
			m.mode = modeConfirm
		}
		return true
	}
	return false
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.exitInsert()
		switch m.action {
		case actionAdd:
			*cmds = append(*cmds, m.addCmd(text, m.nav.Date()))
		case actionEdit:
			if text != "" {
				*cmds = append(*cmds, m.editCmd(m.editID, text))
			} else {
				m.status = "Edit cancelled"
			}
		}
		m.action = actionNone
		return true
	case "esc":
		m.exitInsert()
		m.action = actionNone
		m.status = "Cancelled"
		return true
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		return true
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "y", "enter":
		*cmds = append(*cmds, m.deleteCmd(m.confirmID))
		m.confirmID = 0
		m.mode = modeNormal
		return true
	case "n", "esc", "q":
		m.confirmID = 0
		m.mode = modeNormal
		m.status = "Delete cancelled"
		return true
	}
	return true
}

// toggleTrends mounts or unmounts the trend pane. While unmounted the
// coordinator must not schedule fetches for it.
func (m *Model) toggleTrends(cmds *[]tea.Cmd) {
	if m.showTrends {
		m.showTrends = false
		m.coord.Unmount(viewTrends)
		m.status = "Trends hidden"
		return
	}
	m.showTrends = true
	m.coord.Mount(viewTrends, m.refetchTrends)
	m.status = "Trends shown"
	*cmds = append(*cmds, m.refetchTrends())
}

func (m *Model) enterInsert(prefill string, cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.input.SetValue(prefill)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) exitInsert() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) currentEntry() *entry.Entry {
	it, ok := m.entryList.SelectedItem().(entryItem)
	if !ok {
		return nil
	}
	return it.e
}

func (m *Model) setEntryItems(entries []*entry.Entry) {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{e: e})
	}
	m.entryList.SetItems(items)
}

func errorStatus(err error) string {
	var verr *api.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return "ERR: " + err.Error()
}
