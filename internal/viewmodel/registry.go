package viewmodel

import (
	"sync"
	"time"
)

// Views bundles the view models of one browsing session. State such as the
// last cart snapshot lives here between requests.
type Views struct {
	Catalog *CatalogViewModel
	Cart    *CartViewModel
	Auth    *AuthViewModel
	Users   *UserListViewModel
}

// viewsIdleTTL bounds how long an untouched session keeps its view models.
// Anonymous visitors mint a sid per browser, so without an idle cutoff the
// registry would grow for every crawler that ever loads a page.
const viewsIdleTTL = 24 * time.Hour

type registryEntry struct {
	views    *Views
	lastSeen time.Time
}

// Registry hands out the Views for a session id, building them once per
// sid through the supplied factory and dropping entries idle past the TTL.
type Registry struct {
	mu      sync.Mutex
	factory func(sid string) *Views
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*registryEntry
}

func NewRegistry(factory func(sid string) *Views) *Registry {
	return &Registry{
		factory: factory,
		ttl:     viewsIdleTTL,
		now:     time.Now,
		entries: make(map[string]*registryEntry),
	}
}

func (r *Registry) For(sid string) *Views {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictIdleLocked()
	e, ok := r.entries[sid]
	if !ok {
		e = &registryEntry{views: r.factory(sid)}
		r.entries[sid] = e
	}
	e.lastSeen = r.now()
	return e.views
}

func (r *Registry) evictIdleLocked() {
	cutoff := r.now().Add(-r.ttl)
	for sid, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, sid)
		}
	}
}

// Drop forgets a session's views, e.g. after logout.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sid)
}
