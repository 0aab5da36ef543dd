package options

import (
	"github.com/spf13/cobra"
)

// AuthOptions
type AuthOptions struct {
	Email    string
	Password string
}

func AddAuthArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email. Prompted for when omitted.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password. Prompted for when omitted.")
}
