// Package rm deletes an entry.
package rm

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/diary"
	"tableflip.dev/vita/pkg/session"
)

type Rm struct {
	ID int64

	Diary   *diary.Repository
	Session *session.Manager
}

func (n *Rm) Do(ctx context.Context) error {
	if err := n.Diary.Delete(ctx, n.ID); err != nil {
		return n.Session.Observe(err)
	}
	_, _ = fmt.Fprintf(color.Output, "Deleted entry %d.\n", n.ID)
	return nil
}
