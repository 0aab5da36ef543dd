// Package get lists the user's entries, newest first.
package get

import (
	"context"

	"tableflip.dev/vita/pkg/diary"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/session"
)

type Get struct {
	ShowID bool

	Diary   *diary.Repository
	Session *session.Manager
}

func (n *Get) Do(ctx context.Context) error {
	entries, err := n.Diary.Reload(ctx)
	if err != nil {
		return n.Session.Observe(err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Entries", len(entries))
	pp.Entries(entries...)
	return nil
}
