package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vita/pkg/api"
)

var (
	paneTitleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	sparkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

const (
	leftWidth     = 44
	bottomReserve = 2
)

func (m *Model) applySizes() {
	h := m.termHeight - bottomReserve
	if h < 4 {
		h = 4
	}
	m.entryList.SetSize(leftWidth, h-2)
}

func (m *Model) View() string {
	left := paneStyle.Width(leftWidth).Render(
		paneTitleStyle.Render("Log") + "\n" + m.entriesView(),
	)

	panes := []string{m.dailyView(), m.weeklyView()}
	if m.showTrends {
		panes = append(panes, m.trendsView())
	}
	right := lipgloss.JoinVertical(lipgloss.Left, panes...)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return body + "\n" + m.bottomView()
}

// Panes never show data from a superseded fetch: while a fetch is in
// flight they render a neutral placeholder, and errors render in place of
// data.
func (m *Model) entriesView() string {
	switch {
	case m.entries.Loading():
		return faintStyle.Render("loading…")
	case m.entries.Err() != "":
		return errorStyle.Render(m.entries.Err())
	case len(m.entryList.Items()) == 0:
		return faintStyle.Render("no entries yet; press o to log one")
	default:
		return m.entryList.View()
	}
}

func (m *Model) dailyView() string {
	title := "Day " + m.nav.Date().String()
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(title))
	b.WriteString("\n")

	switch {
	case m.daily.Loading():
		b.WriteString(faintStyle.Render("loading…"))
	case m.daily.Err() != "":
		b.WriteString(errorStyle.Render(m.daily.Err()))
	case m.daily.Data() == nil:
		b.WriteString(faintStyle.Render("no data"))
	default:
		s := m.daily.Data()
		b.WriteString("Calories  " + fmtFloat(s.TotalCalories, 0, " kcal") + "\n")
		b.WriteString("Steps     " + fmtFloat(s.TotalSteps, 0, "") + "\n")
		b.WriteString("Weight    " + fmtFloat(s.LastWeightKg, 1, " kg"))
	}
	return paneStyle.Render(b.String())
}

func (m *Model) weeklyView() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("This week"))
	b.WriteString("\n")

	switch {
	case m.weekly.Loading():
		b.WriteString(faintStyle.Render("loading…"))
	case m.weekly.Err() != "":
		b.WriteString(errorStyle.Render(m.weekly.Err()))
	case m.weekly.Data() == nil:
		b.WriteString(faintStyle.Render("no data"))
	default:
		s := m.weekly.Data()
		b.WriteString("Calories  " + fmtFloat(s.AvgDailyCalories, 0, " kcal/day") + "\n")
		b.WriteString("Protein   " + fmtFloat(s.AvgDailyProteinG, 1, " g/day") + "\n")
		b.WriteString("Weight    " + fmtFloat(s.AvgWeightKg, 1, " kg") + "\n")
		b.WriteString("Steps     " + fmtFloat(s.AvgDailySteps, 0, "/day"))
	}
	return paneStyle.Render(b.String())
}

func (m *Model) trendsView() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Trends " + m.trendsWindow))
	b.WriteString("\n")

	switch {
	case m.trends.Loading():
		b.WriteString(faintStyle.Render("loading…"))
	case m.trends.Err() != "":
		b.WriteString(errorStyle.Render(m.trends.Err()))
	case m.trends.Data() == nil:
		b.WriteString(faintStyle.Render("no data"))
	default:
		r := m.trends.Data()
		b.WriteString("Weight " + sparkStyle.Render(sparkline(r.WeightTrends)) + "\n")
		b.WriteString("Steps  " + sparkStyle.Render(sparkline(r.StepsTrends)))
	}
	return paneStyle.Render(b.String())
}

func (m *Model) bottomView() string {
	switch m.mode {
	case modeInsert:
		prompt := "log"
		if m.action == actionEdit {
			prompt = "edit"
		}
		return statusStyle.Render(prompt+"> ") + m.input.View()
	case modeConfirm:
		return statusStyle.Render(fmt.Sprintf("Delete entry %d? y/n", m.confirmID))
	default:
		help := "o log  e edit  d delete  [/] day  t today  g trends  r refresh  q quit"
		if m.status != "" {
			return statusStyle.Render(m.status + "  ·  " + help)
		}
		return statusStyle.Render(help)
	}
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func sparkline(points []api.TrendPoint) string {
	if len(points) == 0 {
		return "·"
	}
	min, max := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	out := make([]rune, len(points))
	for i, p := range points {
		n := len(sparkRunes) / 2
		if max > min {
			n = int(float64(len(sparkRunes)-1) * (p.Value - min) / (max - min))
		}
		out[i] = sparkRunes[n]
	}
	return string(out)
}

func fmtFloat(v *float64, decimals int, suffix string) string {
	if v == nil {
		return faintStyle.Render("n/a")
	}
	return fmt.Sprintf("%.*f%s", decimals, *v, suffix)
}
