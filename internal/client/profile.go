package client

import (
	"context"
	"net/url"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/httpclient"
	"github.com/Kauesamartino/WorksafeApp/internal/session"
)

// ProfileResolver finds the profile of whoever holds the current session.
type ProfileResolver interface {
	CurrentUser(ctx context.Context) (*internal.User, error)
}

// UsernameProfileResolver looks the profile up by the username stored at
// login, not by the token. The API offers no "me" endpoint.
type UsernameProfileResolver struct {
	http   *httpclient.Client
	tokens *session.TokenStore
}

var _ ProfileResolver = (*UsernameProfileResolver)(nil)

func (r *UsernameProfileResolver) CurrentUser(ctx context.Context) (*internal.User, error) {
	username := r.tokens.GetUsername(ctx)
	if username == "" {
		return nil, internal.ErrNoSession
	}
	var user internal.User
	if err := r.http.Get(ctx, "/usuarios/username/"+url.PathEscape(username), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
