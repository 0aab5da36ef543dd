package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions
type EntryOptions struct {
	Text  string
	Image string
}

func AddImageArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Image, "image", "",
		"Attach a meal photo for the server to analyze.")
}

func AddTextArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Text, "text", "t", "",
		"Replacement entry text.")
}
