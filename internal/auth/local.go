package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider keeps issued tokens in memory. Tokens live until Revoke or
// process exit.
type LocalProvider struct {
	users  storage.UserRepository
	logger internal.Logger

	mu     sync.RWMutex
	tokens map[string]string // token -> username
}

var _ Provider = (*LocalProvider)(nil)

func NewLocalProvider(users storage.UserRepository, logger internal.Logger) *LocalProvider {
	return &LocalProvider{users: users, logger: logger, tokens: make(map[string]string)}
}

func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func (p *LocalProvider) Login(ctx context.Context, username, password string) (*internal.LoginResponse, error) {
	acc, err := p.users.GetAccountByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		p.logger.Warnf("login for unknown user %q", username)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		p.logger.Warnf("wrong password for %q", username)
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	p.mu.Lock()
	p.tokens[token] = acc.Username
	p.mu.Unlock()
	return &internal.LoginResponse{Token: token, Username: acc.Username, Roles: []string{"USER"}}, nil
}

func (p *LocalProvider) ValidateToken(ctx context.Context, token string) (*storage.Account, error) {
	p.mu.RLock()
	username, ok := p.tokens[token]
	p.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}
	acc, err := p.users.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return acc, nil
}

// Revoke invalidates token; later requests carrying it get 401.
func (p *LocalProvider) Revoke(token string) {
	p.mu.Lock()
	delete(p.tokens, token)
	p.mu.Unlock()
}
