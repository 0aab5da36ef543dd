package report

import (
	"context"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/session"
	"tableflip.dev/vita/pkg/timeutil"
)

type Trends struct {
	Window string

	API     *api.Client
	Session *session.Manager
}

func (n *Trends) Do(ctx context.Context) error {
	if n.Window == "" {
		n.Window = timeutil.DefaultTrendWindow
	}
	from, to, err := timeutil.ParseTrendWindow(n.Window)
	if err != nil {
		return err
	}

	r, err := n.API.Trends(ctx, n.Session.Token(), from, to)
	if err != nil {
		return n.Session.Observe(err)
	}

	pp := printers.PrettyPrint{}
	pp.Trends(r)
	return nil
}
