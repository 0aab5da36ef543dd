// Package add logs a new health entry.
package add

import (
	"context"

	"tableflip.dev/vita/pkg/diary"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/session"
	"tableflip.dev/vita/pkg/timeutil"
)

type Add struct {
	Text   string
	On     timeutil.Date
	Image  string
	ShowID bool

	Diary   *diary.Repository
	Session *session.Manager
}

func (n *Add) Do(ctx context.Context) error {
	if n.On == "" {
		n.On = timeutil.Today()
	}

	e, err := n.Diary.Create(ctx, n.Text, n.On, n.Image)
	if err != nil {
		return n.Session.Observe(err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Logged")
	pp.Entries(e)
	return nil
}
