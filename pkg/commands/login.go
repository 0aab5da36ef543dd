package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Example: `
vita login
vita login --email me@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			s := login.Login{
				Email:    ao.Email,
				Password: ao.Password,
				Session:  d.Session,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddAuthArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
