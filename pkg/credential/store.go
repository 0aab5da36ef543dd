// Package credential persists the session token between runs. The store is
// a single named slot: present means a session may exist, absent means
// logged out. Only the session manager's login, logout, and invalidation
// paths write it.
package credential

import (
	"bytes"
	"errors"
	"io/fs"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
)

// tokenKey is the well-known slot name.
const tokenKey = "token"

// Store is the persistent credential slot.
type Store interface {
	// Token returns the stored token; ok is false when the slot is empty.
	// An empty slot is a valid, expected state.
	Token() (token string, ok bool)
	Write(token string) error
	Clear() error
}

// Load opens the credential slot under the configured base path.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath, err := homedir.Expand(cfg.BasePath())
	if err != nil {
		return nil, err
	}

	return &slot{d: diskv.New(diskv.Options{
		BasePath: basePath,
		Transform: func(string) []string {
			return []string{"credentials"}
		},
		CacheSizeMax: 1024,
	})}, nil
}

type slot struct {
	d *diskv.Diskv
}

func (s *slot) Token() (string, bool) {
	val, err := s.d.Read(tokenKey)
	if err != nil {
		return "", false
	}
	token := string(bytes.TrimSpace(val))
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *slot) Write(token string) error {
	if token == "" {
		return s.Clear()
	}
	return s.d.Write(tokenKey, []byte(token))
}

func (s *slot) Clear() error {
	if err := s.d.Erase(tokenKey); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
