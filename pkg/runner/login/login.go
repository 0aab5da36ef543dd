// Package login signs the user in and persists the session token.
package login

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/session"
)

type Login struct {
	Email    string
	Password string

	Session *session.Manager
}

func (n *Login) Do(ctx context.Context) error {
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

	if err := n.Session.Login(ctx, n.Email, n.Password); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	g := color.New(color.FgGreen)
	_, _ = g.Fprintln(color.Output, "Logged in.")
	if u := n.Session.User(); u != nil {
		pp.User(u)
	}
	return nil
}
