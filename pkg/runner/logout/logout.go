// Package logout tears the local session down.
package logout

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/session"
)

type Logout struct {
	Session *session.Manager
}

// Do clears the credential store and in-memory session. No server call is
// made; the token simply stops being presented.
func (n *Logout) Do(_ context.Context) error {
	n.Session.Logout()
	_, _ = fmt.Fprintln(color.Output, "Logged out.")
	return nil
}
