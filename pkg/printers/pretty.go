// Package printers renders entries and report aggregates for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/entry"
)

type PrettyPrint struct {
	ShowID bool
}

const timeLayout = "2006-01-02 15:04"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries prints the log list, newest first.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, e := range entries {
		when := e.Timestamp.Local().Format(timeLayout)
		if pp.ShowID {
			tbl.AddRow(fmt.Sprintf("%d", e.ID), when, e.DisplayText())
		} else {
			tbl.AddRow(when, e.DisplayText())
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Daily prints one day's aggregate.
func (pp *PrettyPrint) Daily(s *api.DailySummary) {
	pp.Title("Summary for " + s.Date.String())

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Total Calories", fmtValue(s.TotalCalories, 0, " kcal"))
	tbl.AddRow("Total Steps", fmtValue(s.TotalSteps, 0, ""))
	tbl.AddRow("Last Weight", fmtValue(s.LastWeightKg, 1, " kg"))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Weekly prints the week aggregate.
func (pp *PrettyPrint) Weekly(s *api.WeeklySummary) {
	pp.Title(fmt.Sprintf("Week %s to %s", s.WeekStartDate, s.WeekEndDate))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Avg Calories", fmtValue(s.AvgDailyCalories, 0, " kcal/day"))
	tbl.AddRow("Avg Protein", fmtValue(s.AvgDailyProteinG, 1, " g/day"))
	tbl.AddRow("Avg Carbs", fmtValue(s.AvgDailyCarbsG, 1, " g/day"))
	tbl.AddRow("Avg Fat", fmtValue(s.AvgDailyFatG, 1, " g/day"))
	tbl.AddRow("Avg Weight", fmtValue(s.AvgWeightKg, 1, " kg"))
	tbl.AddRow("Avg Steps", fmtValue(s.AvgDailySteps, 0, "/day"))
	if s.TotalSteps != nil {
		tbl.AddRow("Total Steps", fmt.Sprintf("%d", *s.TotalSteps))
	} else {
		tbl.AddRow("Total Steps", "n/a")
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Trends prints both series as bar charts.
func (pp *PrettyPrint) Trends(r *api.TrendReport) {
	pp.Title(fmt.Sprintf("Trends %s to %s", r.StartDate, r.EndDate))
	pp.NewLine()
	pp.series("Weight (kg)", r.WeightTrends, 1)
	pp.NewLine()
	pp.series("Steps", r.StepsTrends, 0)
}

const barWidth = 30

func (pp *PrettyPrint) series(name string, points []api.TrendPoint, decimals int) {
	h := color.New(color.Bold)
	_, _ = h.Fprintln(color.Output, name)

	if len(points) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no data\n")
		return
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

	bar := color.New(color.FgHiCyan)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range points {
		n := barWidth
		if max > min {
			n = 1 + int(float64(barWidth-1)*(p.Value-min)/(max-min))
		}
		tbl.AddRow(
			p.Timestamp.Local().Format("Jan _2"),
			fmt.Sprintf("%.*f", decimals, p.Value),
			bar.Sprint(strings.Repeat("▇", n)),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// User prints the resolved identity.
func (pp *PrettyPrint) User(u *api.User) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Email", u.Email)
	if pp.ShowID {
		tbl.AddRow("ID", fmt.Sprintf("%d", u.ID))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func fmtValue(v *float64, decimals int, suffix string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.*f%s", decimals, *v, suffix)
}
