package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Target calendar day, example: --on="2026-08-27". Defaults to today.`)
}

func (o *OnOptions) GetOn() (timeutil.Date, error) {
	if o.OnString == "" {
		return "", nil
	}
	return timeutil.ParseDate(o.OnString)
}
