// Package whoami reports the identity behind the current session.
package whoami

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/session"
)

type Whoami struct {
	ShowID bool

	Session *session.Manager
}

func (n *Whoami) Do(_ context.Context) error {
	if !n.Session.Authenticated() {
		f := color.New(color.Faint)
		_, _ = f.Fprintln(color.Output, "Not logged in. Run 'vita login'.")
		return nil
	}

	u := n.Session.User()
	if u == nil {
		return fmt.Errorf("session has no resolved identity")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.User(u)
	return nil
}
