package session

import (
	"context"
	"sync"
)

// TokenKey names the credential slot, matching the key the mobile client
// used for its preference store.
const TokenKey = "jwt_token"

// TokenStore persists one bearer credential. Token returns "" when nothing
// is stored.
type TokenStore interface {
	SaveToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) SaveToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryTokenStore) ClearToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
