// Package ui opens the interactive dashboard.
package ui

import (
	"context"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/diary"
	"tableflip.dev/vita/pkg/session"
	"tableflip.dev/vita/pkg/tui"
)

type UI struct {
	API     *api.Client
	Diary   *diary.Repository
	Session *session.Manager
}

func (n *UI) Do(_ context.Context) error {
	if !n.Session.Authenticated() {
		f := color.New(color.Faint)
		_, _ = f.Fprintln(color.Output, "Not logged in. Run 'vita login'.")
		return nil
	}
	return tui.Run(tui.Deps{
		Diary:   n.Diary,
		API:     n.API,
		Session: n.Session,
	})
}
