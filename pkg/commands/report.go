package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/report"
)

func addDay(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show one day's totals",
		Example: `
vita day
vita day --on 2026-08-25
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			if err := d.requireAuth(); err != nil {
				return oo.HandleError(err)
			}
			target, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			s := report.Day{
				On:      target,
				API:     d.API,
				Session: d.Session,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}

func addWeek(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the current week's averages",
		Example: `
vita week
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			if err := d.requireAuth(); err != nil {
				return oo.HandleError(err)
			}
			s := report.Week{
				API:     d.API,
				Session: d.Session,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTrends(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Chart weight and step series over a window",
		Example: `
vita trends
vita trends --window 90d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			if err := d.requireAuth(); err != nil {
				return oo.HandleError(err)
			}
			s := report.Trends{
				Window:  wo.Window,
				API:     d.API,
				Session: d.Session,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
