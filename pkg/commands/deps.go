package commands

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/credential"
	"tableflip.dev/vita/pkg/diary"
	"tableflip.dev/vita/pkg/session"
)

// deps is everything a command needs, built once per invocation.
type deps struct {
	API     *api.Client
	Session *session.Manager
	Diary   *diary.Repository
}

// loadDeps wires config, credential slot, API client, session manager, and
// the entry mirror. A stored token that no longer resolves is cleared during
// Initialize; the command then runs logged out rather than failing here.
func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := credential.LoadConfig()
	if err != nil {
		return nil, err
	}
	creds, err := credential.Load(cfg)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.Server())
	sess := session.NewManager(creds, client)
	if err := sess.Initialize(ctx); err != nil {
		f := color.New(color.Faint)
		_, _ = f.Fprintln(color.Output, "Session expired. Run 'vita login'.")
	}

	return &deps{
		API:     client,
		Session: sess,
		Diary:   diary.NewRepository(client, sess),
	}, nil
}

var errNotLoggedIn = errors.New("not logged in; run 'vita login'")

func (d *deps) requireAuth() error {
	if !d.Session.Authenticated() {
		return errNotLoggedIn
	}
	return nil
}
