package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Log a meal, weight, or step count",
		Long: "Log a free-form health entry. The server parses the text into a\n" +
			"typed entry (food, weight, or steps); a meal photo can stand in for\n" +
			"or accompany the text.",
		Example: `
vita add 2 eggs and toast
vita add weight 81.5kg --on 2026-08-25
vita add --image lunch.jpg
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
			s := add.Add{
				Text:    strings.Join(args, " "),
				On:      target,
				Image:   eo.Image,
				ShowID:  io.ShowID,
				Diary:   d.Diary,
				Session: d.Session,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddImageArgs(cmd, eo)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
