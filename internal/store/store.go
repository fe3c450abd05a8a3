// Package store persists the bearer token and the cached profile snapshot
// across process restarts. Reads never fail: a missing or malformed value
// is reported as absent.
package store

import (
	"context"
	"sync"

	"github.com/btechwala999/Ignitia-client/internal/api"
)

// Store defines how the credential pair is persisted. The two keys are
// independent at this layer; the session controller is what keeps them
// moving together on success paths.
type Store interface {
	Token(ctx context.Context) (string, bool)
	// SetToken overwrites the token; an empty value deletes the key.
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (*api.User, bool)
	// SetUser overwrites the snapshot; nil deletes the key.
	SetUser(ctx context.Context, u *api.User) error
	// Clear deletes both keys.
	Clear(ctx context.Context) error
}

// MemStore is an in-process Store for tests and ephemeral runs.
type MemStore struct {
	mu    sync.RWMutex
	token string
	user  *api.User
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Token(ctx context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) User(ctx context.Context) (*api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *MemStore) SetUser(ctx context.Context, u *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return nil
	}
	copied := *u
	s.user = &copied
	return nil
}

func (s *MemStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}
