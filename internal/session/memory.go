package session

import (
	"context"
	"sync"
)

// MemoryStore keeps credentials in process memory. Suitable for tests and
// single-instance deployments that accept re-login after a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, sid string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokens[sid], nil
}

func (m *MemoryStore) Set(_ context.Context, sid, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[sid] = token
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, sid)
	return nil
}
