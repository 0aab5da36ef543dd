package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/entry"
	"tableflip.dev/vita/pkg/timeutil"
	"tableflip.dev/vita/pkg/view"
)

// messages
type mutationMsg struct{}

type entriesMsg struct {
	ticket  view.Ticket
	entries []*entry.Entry
	err     error
}

type dailyMsg struct {
	ticket  view.Ticket
	summary *api.DailySummary
	err     error
}

type weeklyMsg struct {
	ticket  view.Ticket
	summary *api.WeeklySummary
	err     error
}

type trendsMsg struct {
	ticket view.Ticket
	report *api.TrendReport
	err    error
}

type mutationDoneMsg struct {
	verb string
	err  error
}

// Every fetch carries the ticket issued when it began; the completion
// handler discards it if the pane has since moved to a different key.

func (m *Model) refetchEntries() tea.Cmd {
	t := m.entries.Refetch()
	return func() tea.Msg {
		got, err := m.diary.Reload(m.ctx)
		return entriesMsg{ticket: t, entries: got, err: err}
	}
}

func (m *Model) fetchDaily(t view.Ticket) tea.Cmd {
	on := timeutil.Date(t.Key())
	return func() tea.Msg {
		s, err := m.api.DailySummary(m.ctx, m.session.Token(), on)
		return dailyMsg{ticket: t, summary: s, err: err}
	}
}

func (m *Model) refetchDaily() tea.Cmd {
	return m.fetchDaily(m.daily.Refetch())
}

// navigateDaily rekeys the day pane and starts the fetch for the new date.
func (m *Model) navigateDaily(d timeutil.Date) tea.Cmd {
	return m.fetchDaily(m.daily.Begin(string(d)))
}

func (m *Model) refetchWeekly() tea.Cmd {
	t := m.weekly.Refetch()
	return func() tea.Msg {
		s, err := m.api.WeeklySummary(m.ctx, m.session.Token())
		return weeklyMsg{ticket: t, summary: s, err: err}
	}
}

func (m *Model) refetchTrends() tea.Cmd {
	t := m.trends.Refetch()
	window := t.Key()
	return func() tea.Msg {
		from, to, err := timeutil.ParseTrendWindow(window)
		if err != nil {
			return trendsMsg{ticket: t, err: err}
		}
		r, err := m.api.Trends(m.ctx, m.session.Token(), from, to)
		return trendsMsg{ticket: t, report: r, err: err}
	}
}

func (m *Model) addCmd(text string, on timeutil.Date) tea.Cmd {
	return func() tea.Msg {
		_, err := m.diary.Create(m.ctx, text, on, "")
		return mutationDoneMsg{verb: "Logged", err: err}
	}
}

func (m *Model) editCmd(id int64, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.diary.Update(m.ctx, id, api.UpdateFields{Text: &text})
		return mutationDoneMsg{verb: "Updated", err: err}
	}
}

func (m *Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.diary.Delete(m.ctx, id)
		return mutationDoneMsg{verb: "Deleted", err: err}
	}
}
