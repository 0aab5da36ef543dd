// Package signup registers a new account and signs it in.
package signup

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/session"
)

type Signup struct {
	Email    string
	Password string

	API     *api.Client
	Session *session.Manager
}

func (n *Signup) Do(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)

	if n.Email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		n.Email = strings.TrimSpace(line)
	}
	if n.Password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		n.Password = strings.TrimSpace(line)
	}

	u, err := n.API.Signup(ctx, n.Email, n.Password)
	if err != nil {
		return err
	}

	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "Account created for %s.\n", u.Email)

	// Sign straight in so the first command after signup just works.
	if err := n.Session.Login(ctx, n.Email, n.Password); err != nil {
		f := color.New(color.Faint)
		_, _ = f.Fprintln(color.Output, "Automatic login failed; run 'vita login'.")
		return err
	}
	_, _ = g.Fprintln(color.Output, "Logged in.")
	return nil
}
