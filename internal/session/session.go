// Package session holds the auth credential for each browsing session.
// At most one credential is live per session; authenticated API calls read
// it, login/signup write it, logout clears it.
package session

import (
	"context"
	"fmt"
)

// Credentials is the single-slot credential view the API client works
// against. Get returns "" (and no error) when nothing is stored.
type Credentials interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Store persists credentials keyed by browser session id. Set replaces any
// prior value for the sid.
type Store interface {
	Get(ctx context.Context, sid string) (string, error)
	Set(ctx context.Context, sid, token string) error
	Clear(ctx context.Context, sid string) error
}

type scoped struct {
	store Store
	sid   string
}

// Scoped binds one browser session to a backend, yielding the single-slot
// view the API client expects.
func Scoped(s Store, sid string) Credentials {
	return &scoped{store: s, sid: sid}
}

func (s *scoped) Get(ctx context.Context) (string, error) { return s.store.Get(ctx, s.sid) }

func (s *scoped) Set(ctx context.Context, token string) error {
	return s.store.Set(ctx, s.sid, token)
}

func (s *scoped) Clear(ctx context.Context) error { return s.store.Clear(ctx, s.sid) }

// Open picks a backend by name: "memory", "sqlite" (dsn is the database
// file, ":memory:" works) or "redis" (dsn is the address).
func Open(backend, dsn string) (Store, error) {
	switch backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return OpenSQLiteStore(dsn)
	case "redis":
		return NewRedisStore(dsn), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", backend)
	}
}
