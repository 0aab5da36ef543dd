// Package tui hosts the Bubble Tea program for the vita dashboard: the
// entry log on the left, the day / week / trend aggregates on the right,
// all kept consistent through one invalidation coordinator.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/diary"
	"tableflip.dev/vita/pkg/entry"
	"tableflip.dev/vita/pkg/timeutil"
	"tableflip.dev/vita/pkg/view"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeConfirm
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionEdit
)

// SummaryAPI is the slice of the server the aggregate panes need.
type SummaryAPI interface {
	DailySummary(ctx context.Context, token string, on timeutil.Date) (*api.DailySummary, error)
	WeeklySummary(ctx context.Context, token string) (*api.WeeklySummary, error)
	Trends(ctx context.Context, token string, from, to timeutil.Date) (*api.TrendReport, error)
}

// Session is what the dashboard needs from the session manager: a token to
// present and a place to report request failures so an invalid session is
// torn down.
type Session interface {
	Token() string
	Observe(err error) error
}

// Deps wires the dashboard to the rest of the client.
type Deps struct {
	Diary   *diary.Repository
	API     SummaryAPI
	Session Session
}

const (
	viewEntries = "entries"
	viewDaily   = "daily"
	viewWeekly  = "weekly"
	viewTrends  = "trends"
)

// Model contains UI state.
type Model struct {
	diary   *diary.Repository
	api     SummaryAPI
	session Session
	ctx     context.Context
	cancel  context.CancelFunc

	mode   mode
	action action

	entryList list.Model
	input     textinput.Model

	nav     *view.Navigator
	coord   *view.Coordinator[tea.Cmd]
	entries *view.State[[]*entry.Entry]
	daily   *view.State[api.DailySummary]
	weekly  *view.State[api.WeeklySummary]
	trends  *view.State[api.TrendReport]

	showTrends   bool
	trendsWindow string

	editID    int64
	confirmID int64

	mutCh chan struct{}

	termWidth  int
	termHeight int
	status     string
	fatal      error
}

type entryItem struct {
	e *entry.Entry
}

func (i entryItem) FilterValue() string { return i.e.DisplayText() }
func (i entryItem) Title() string       { return i.e.DisplayText() }
func (i entryItem) Description() string {
	return i.e.Timestamp.Local().Format("2006-01-02 15:04")
}

// New creates the dashboard model. Mutations flow back in through the
// repository's mutation signal; every pane registered with the coordinator
// is refetched when one fires.
func New(deps Deps) *Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 40, 20)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "e.g. 2 eggs and toast / weight 81.5kg / 8000 steps"
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock

	ctx, cancel := context.WithCancel(context.Background())
	nav := view.NewNavigator()

	m := &Model{
		diary:        deps.Diary,
		api:          deps.API,
		session:      deps.Session,
		ctx:          ctx,
		cancel:       cancel,
		mode:         modeNormal,
		action:       actionNone,
		entryList:    l,
		input:        ti,
		nav:          nav,
		coord:        view.NewCoordinator[tea.Cmd](),
		entries:      view.NewState[[]*entry.Entry](viewEntries),
		daily:        view.NewState[api.DailySummary](string(nav.Date())),
		weekly:       view.NewState[api.WeeklySummary](viewWeekly),
		trends:       view.NewState[api.TrendReport](timeutil.DefaultTrendWindow),
		showTrends:   true,
		trendsWindow: timeutil.DefaultTrendWindow,
		mutCh:        make(chan struct{}, 8),
	}

	m.coord.Mount(viewEntries, m.refetchEntries)
	m.coord.Mount(viewDaily, m.refetchDaily)
	m.coord.Mount(viewWeekly, m.refetchWeekly)
	m.coord.Mount(viewTrends, m.refetchTrends)

	if deps.Diary != nil {
		deps.Diary.OnMutation(m.signalMutation)
	}
	return m
}

// signalMutation is safe to call from any goroutine; the channel is
// drained by waitForMutation and a full buffer just coalesces signals.
func (m *Model) signalMutation() {
	select {
	case m.mutCh <- struct{}{}:
	default:
	}
}

// Init kicks off the initial fetch for every pane and starts listening for
// mutation signals.
func (m *Model) Init() tea.Cmd {
	cmds := m.coord.Invalidate()
	cmds = append(cmds, m.waitForMutation())
	return tea.Batch(cmds...)
}

func (m *Model) waitForMutation() tea.Cmd {
	ch := m.mutCh
	return func() tea.Msg {
		<-ch
		return mutationMsg{}
	}
}

// Run launches the dashboard.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*Model); ok && m.fatal != nil {
		return m.fatal
	}
	return nil
}
