// Package edit updates an existing entry.
package edit

import (
	"context"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/diary"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/session"
	"tableflip.dev/vita/pkg/timeutil"
)

type Edit struct {
	ID     int64
	Text   string
	On     timeutil.Date
	ShowID bool

	Diary   *diary.Repository
	Session *session.Manager
}

func (n *Edit) Do(ctx context.Context) error {
	fields := api.UpdateFields{}
	if n.Text != "" {
		fields.Text = &n.Text
	}
	if n.On != "" {
		fields.On = &n.On
	}
	if fields.Text == nil && fields.On == nil {
		return &api.ValidationError{Message: "nothing to change; pass --text or --on"}
	}

	e, err := n.Diary.Update(ctx, n.ID, fields)
	if err != nil {
		return n.Session.Observe(err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Updated")
	pp.Entries(e)
	return nil
}
