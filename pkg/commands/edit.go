package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rewrite an entry's text or move it to another day",
		Example: `
vita edit 42 --text "3 eggs and toast"
vita edit 42 --on 2026-08-25
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return cobra.ExactArgs(1)(cmd, args)
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			io.ID = id
			return nil
		},
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
			s := edit.Edit{
				ID:      io.ID,
				Text:    eo.Text,
				On:      target,
				ShowID:  io.ShowID,
				Diary:   d.Diary,
				Session: d.Session,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTextArgs(cmd, eo)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
