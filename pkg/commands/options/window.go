package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", timeutil.DefaultTrendWindow,
		`How far back the series reaches, example: --window=90d or --window=3mo.`)
}
