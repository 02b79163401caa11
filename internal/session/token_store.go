// Package session holds the client's proof of authentication: a bearer token
// and the username it was issued for.
package session

import (
	"context"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
)

const (
	TokenKey    = "@worksafe_token"
	UsernameKey = "@worksafe_username"
)

// TokenStore never returns errors: failed writes are logged, failed or empty
// reads yield "".
type TokenStore struct {
	kv     storage.KeyValueStore
	logger internal.Logger
}

func NewTokenStore(kv storage.KeyValueStore, logger internal.Logger) *TokenStore {
	return &TokenStore{kv: kv, logger: logger}
}

func (s *TokenStore) SaveToken(ctx context.Context, token string) {
	if err := s.kv.Set(ctx, TokenKey, token); err != nil {
		s.logger.Errorf("session: failed to save token: %v", err)
	}
}

func (s *TokenStore) SaveUsername(ctx context.Context, username string) {
	if err := s.kv.Set(ctx, UsernameKey, username); err != nil {
		s.logger.Errorf("session: failed to save username: %v", err)
	}
}

func (s *TokenStore) GetToken(ctx context.Context) string {
	return s.get(ctx, TokenKey)
}

func (s *TokenStore) GetUsername(ctx context.Context) string {
	return s.get(ctx, UsernameKey)
}

// RemoveToken ends the session, clearing both token and username.
func (s *TokenStore) RemoveToken(ctx context.Context) {
	if err := s.kv.Delete(ctx, TokenKey); err != nil {
		s.logger.Errorf("session: failed to remove token: %v", err)
	}
	if err := s.kv.Delete(ctx, UsernameKey); err != nil {
		s.logger.Errorf("session: failed to remove username: %v", err)
	}
}

func (s *TokenStore) Session(ctx context.Context) internal.Session {
	return internal.Session{Token: s.GetToken(ctx), Username: s.GetUsername(ctx)}
}

func (s *TokenStore) get(ctx context.Context, key string) string {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Errorf("session: failed to read %s: %v", key, err)
		return ""
	}
	if !ok {
		return ""
	}
	return v
}
