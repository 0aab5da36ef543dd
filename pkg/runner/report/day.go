// Package report renders the server-side aggregates: a single day, the
// rolling week, and the trend series.
package report

import (
	"context"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/session"
	"tableflip.dev/vita/pkg/timeutil"
)

type Day struct {
	On timeutil.Date

	API     *api.Client
	Session *session.Manager
}

func (n *Day) Do(ctx context.Context) error {
	if n.On == "" {
		n.On = timeutil.Today()
	}

	s, err := n.API.DailySummary(ctx, n.Session.Token(), n.On)
	if err != nil {
		return n.Session.Observe(err)
	}

	pp := printers.PrettyPrint{}
	pp.Daily(s)
	return nil
}
