package report

import (
	"context"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/session"
)

type Week struct {
	API     *api.Client
	Session *session.Manager
}

func (n *Week) Do(ctx context.Context) error {
	s, err := n.API.WeeklySummary(ctx, n.Session.Token())
	if err != nil {
		return n.Session.Observe(err)
	}

	pp := printers.PrettyPrint{}
	pp.Weekly(s)
	return nil
}
