// Package client is the typed WorkSafe API: one method per endpoint, plus the
// session side effects of login and logout.
package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/cep"
	"github.com/Kauesamartino/WorksafeApp/internal/config"
	"github.com/Kauesamartino/WorksafeApp/internal/httpclient"
	"github.com/Kauesamartino/WorksafeApp/internal/session"
)

type Client struct {
	http     *httpclient.Client
	tokens   *session.TokenStore
	cep      *cep.Client
	profiles ProfileResolver
	logger   internal.Logger
}

func New(api *httpclient.Client, tokens *session.TokenStore, postal *cep.Client, logger internal.Logger) *Client {
	if logger == nil {
		logger = internal.NopLogger()
	}
	return &Client{
		http:     api,
		tokens:   tokens,
		cep:      postal,
		profiles: &UsernameProfileResolver{http: api, tokens: tokens},
		logger:   logger,
	}
}

// NewFromConfig wires the primary and CEP HTTP clients from cfg around an
// existing token store. transport may be nil.
func NewFromConfig(cfg *config.Config, tokens *session.TokenStore, transport http.RoundTripper, logger internal.Logger) *Client {
	if logger == nil {
		logger = internal.NopLogger()
	}
	api := httpclient.New(httpclient.Options{
		BaseURL:         cfg.APIBaseURL,
		Timeout:         cfg.APITimeout,
		NotFoundRetries: cfg.NotFoundRetries,
		RetryDelay:      cfg.RetryDelay,
		Tokens:          tokens,
		Transport:       transport,
		Logger:          logger,
	})
	postal := cep.NewClient(cfg.CEPBaseURL, cfg.CEPTimeout, transport, logger)
	return New(api, tokens, postal, logger)
}

// SetProfileResolver replaces how UserInfo finds the current profile.
func (c *Client) SetProfileResolver(r ProfileResolver) {
	c.profiles = r
}

// Login exchanges credentials for a token. A response carrying a token starts
// the session: token and the submitted username are stored before returning.
func (c *Client) Login(ctx context.Context, req internal.LoginRequest) (*internal.LoginResponse, error) {
	var resp internal.LoginResponse
	if err := c.http.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		c.tokens.SaveToken(ctx, resp.Token)
		c.tokens.SaveUsername(ctx, req.Username)
		c.logger.Infof("logged in as %s", req.Username)
	}
	return &resp, nil
}

// Logout ends the session locally. The server is not involved.
func (c *Client) Logout(ctx context.Context) {
	c.tokens.RemoveToken(ctx)
	c.logger.Infof("logged out")
}

func (c *Client) Register(ctx context.Context, req internal.CreateUserRequest) (*internal.User, error) {
	var user internal.User
	if err := c.http.Post(ctx, "/usuarios", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UserInfo(ctx context.Context) (*internal.User, error) {
	return c.profiles.CurrentUser(ctx)
}

func (c *Client) Session(ctx context.Context) internal.Session {
	return c.tokens.Session(ctx)
}

func (c *Client) LookupPostalCode(ctx context.Context, code string) (*internal.PostalAddress, error) {
	return c.cep.Lookup(ctx, code)
}

func (c *Client) ListSelfAssessments(ctx context.Context) ([]internal.SelfAssessment, error) {
	var out []internal.SelfAssessment
	if err := c.http.Get(ctx, "/autoavaliacoes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSelfAssessment(ctx context.Context, a internal.SelfAssessment) (*internal.SelfAssessment, error) {
	var out internal.SelfAssessment
	if err := c.http.Post(ctx, "/autoavaliacoes", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSelfAssessment(ctx context.Context, id int64, patch internal.SelfAssessmentPatch) (*internal.SelfAssessment, error) {
	var out internal.SelfAssessment
	if err := c.http.Put(ctx, fmt.Sprintf("/autoavaliacoes/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSelfAssessment(ctx context.Context, id int64) error {
	return c.http.Delete(ctx, fmt.Sprintf("/autoavaliacoes/%d", id))
}

func (c *Client) ListRecommendations(ctx context.Context) ([]internal.Recommendation, error) {
	var out []internal.Recommendation
	if err := c.http.Get(ctx, "/recomendacoes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRecommendation(ctx context.Context, r internal.Recommendation) (*internal.Recommendation, error) {
	var out internal.Recommendation
	if err := c.http.Post(ctx, "/recomendacoes", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRecommendation(ctx context.Context, id int64, patch internal.RecommendationPatch) (*internal.Recommendation, error) {
	var out internal.Recommendation
	if err := c.http.Put(ctx, fmt.Sprintf("/recomendacoes/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRecommendation(ctx context.Context, id int64) error {
	return c.http.Delete(ctx, fmt.Sprintf("/recomendacoes/%d", id))
}

// ToggleConsumed flips the consumed flag of r on the server.
func (c *Client) ToggleConsumed(ctx context.Context, r internal.Recommendation) (*internal.Recommendation, error) {
	consumed := !r.Consumed
	return c.UpdateRecommendation(ctx, r.ID, internal.RecommendationPatch{Consumed: &consumed})
}

func (c *Client) ListAlerts(ctx context.Context) ([]internal.Alert, error) {
	var out []internal.Alert
	if err := c.http.Get(ctx, "/alertas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListWearableReadings(ctx context.Context) ([]internal.WearableReading, error) {
	var out []internal.WearableReading
	if err := c.http.Get(ctx, "/wearable-data", &out); err != nil {
		return nil, err
	}
	return out, nil
}
