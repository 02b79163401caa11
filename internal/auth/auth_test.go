package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T) *LocalProvider {
	t.Helper()
	repo := storage.NewMemoryRepository()
	hash, err := HashPassword("segredo1")
	require.NoError(t, err)
	require.NoError(t, repo.CreateAccount(context.Background(), &storage.Account{
		User:         internal.User{Name: "Ana Souza"},
		Username:     "ana",
		PasswordHash: hash,
	}))
	return NewLocalProvider(repo, internal.NopLogger())
}

func TestLocalProvider_Login(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()

	resp, err := p.Login(ctx, "ana", "segredo1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana", resp.Username)
	assert.Equal(t, []string{"USER"}, resp.Roles)

	acc, err := p.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", acc.Username)

	_, err = p.Login(ctx, "ana", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = p.Login(ctx, "nobody", "segredo1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocalProvider_Revoke(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()
	resp, err := p.Login(ctx, "ana", "segredo1")
	require.NoError(t, err)

	p.Revoke(resp.Token)
	_, err = p.ValidateToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := newProvider(t)
	resp, err := p.Login(context.Background(), "ana", "segredo1")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", AuthMiddleware(p), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentAccount(c).Username)
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Token " + resp.Token, http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + resp.Token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "ana", w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), "Unauthorized")
			}
		})
	}
}
