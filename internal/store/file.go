package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/btechwala999/Ignitia-client/internal/api"
)

// FileStore keeps the credential pair in a single JSON file, the
// process-restart-surviving equivalent of the browser's origin storage.
type FileStore struct {
	path string

	mu    sync.RWMutex
	state fileState
}

type fileState struct {
	Token string    `json:"token,omitempty"`
	User  *api.User `json:"user,omitempty"`
}

func NewFileStore(path string) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("store: state file path is required")
	}

	s := &FileStore{path: path}
	s.load()
	return s, nil
}

func (s *FileStore) Token(ctx context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token, s.state.Token != ""
}

func (s *FileStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.persistLocked()
}

func (s *FileStore) User(ctx context.Context) (*api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil, false
	}
	u := *s.state.User
	return &u, true
}

func (s *FileStore) SetUser(ctx context.Context, u *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.state.User = nil
	} else {
		copied := *u
		s.state.User = &copied
	}
	return s.persistLocked()
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fileState{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: remove state file: %w", err)
	}
	return nil
}

// load swallows every failure: an unreadable or malformed state file is
// indistinguishable from a fresh one.
func (s *FileStore) load() {
	b, err := os.ReadFile(s.path)
	if err != nil || len(b) == 0 {
		return
	}

	var decoded fileState
	if err := json.Unmarshal(b, &decoded); err != nil {
		return
	}
	s.state = decoded
}

func (s *FileStore) persistLocked() error {
	b, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode state file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("store: mkdir state dir: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot corrupt the stored
	// credential into a "malformed" (and therefore absent) state.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("store: write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("store: replace state file: %w", err)
	}
	return nil
}
