package auth

import (
	"context"
	"errors"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// Provider issues and checks the bearer tokens of the fake API.
type Provider interface {
	Login(ctx context.Context, username, password string) (*internal.LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*storage.Account, error)
}
