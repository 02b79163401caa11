package httpclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/google/uuid"
)

// TokenSource is the part of the session store the transport needs.
type TokenSource interface {
	GetToken(ctx context.Context) string
	RemoveToken(ctx context.Context)
}

// IsPublicEndpoint reports whether a request must go out without a bearer
// token: login, and the POST that registers a new user.
func IsPublicEndpoint(method, path string) bool {
	if strings.Contains(path, "/auth/login") {
		return true
	}
	return strings.Contains(path, "/usuarios") && strings.EqualFold(method, http.MethodPost)
}

// authTransport attaches the current token to outgoing requests and ends the
// session when the server answers 401.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
	logger internal.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if !IsPublicEndpoint(req.Method, req.URL.Path) {
		// read on every request so a token replaced mid-session is picked up
		if token := t.tokens.GetToken(ctx); token != "" {
			req = req.Clone(ctx)
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		t.tokens.RemoveToken(ctx)
		t.logger.Warnf("%s %s returned 401, session cleared; login required", req.Method, req.URL.Path)
	}
	return resp, nil
}

// requestIDTransport tags each request with a correlation ID.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-ID") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	return t.base.RoundTrip(req)
}
