package session

import (
	"context"

	"accessitrip/pkg/utils"
)

// Service is the process-wide credential holder. It is constructed once and
// handed to the API client and to every state holder that needs it.
type Service struct {
	store TokenStore
}

func NewService(store TokenStore) *Service {
	return &Service{store: store}
}

func (s *Service) Token(ctx context.Context) (string, error) {
	return s.store.Token(ctx)
}

func (s *Service) SaveToken(ctx context.Context, token string) error {
	return s.store.SaveToken(ctx, token)
}

func (s *Service) Clear(ctx context.Context) error {
	return s.store.ClearToken(ctx)
}

// CurrentUserID recovers the user id from the stored token's claims.
func (s *Service) CurrentUserID(ctx context.Context) (string, error) {
	token, err := s.store.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", utils.ErrNoSession
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		return "", err
	}
	if claims.UserID == "" {
		return "", utils.ErrInvalidToken
	}
	return claims.UserID, nil
}
