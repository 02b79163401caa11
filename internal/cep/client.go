package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/httpclient"
	"github.com/Kauesamartino/WorksafeApp/internal/service"
	"github.com/tidwall/gjson"
)

// Client looks up Brazilian postal codes. It never sends credentials.
type Client struct {
	http   *httpclient.Client
	logger internal.Logger
}

func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, logger internal.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = internal.NopLogger()
	}
	return &Client{
		http: httpclient.New(httpclient.Options{
			BaseURL:   baseURL,
			Timeout:   timeout,
			Transport: transport,
			Logger:    logger,
		}),
		logger: logger,
	}
}

// Lookup strips formatting from code and fetches its address. Codes that do
// not reduce to exactly 8 digits fail without a network call.
func (c *Client) Lookup(ctx context.Context, code string) (*internal.PostalAddress, error) {
	digits := service.DigitsOnly(code)
	if len(digits) != 8 {
		return nil, internal.ErrInvalidPostalCode
	}

	raw, err := c.http.DoRaw(ctx, http.MethodGet, "/"+digits+"/json/", nil)
	if err != nil {
		c.logger.Errorf("cep lookup %s failed: %v", digits, err)
		return nil, err
	}
	if gjson.GetBytes(raw, "erro").Bool() {
		return nil, internal.ErrPostalCodeNotFound
	}

	var addr internal.PostalAddress
	if err := json.Unmarshal(raw, &addr); err != nil {
		return nil, fmt.Errorf("decode cep response: %w", err)
	}
	if addr.Code == "" {
		addr.Code = digits
	}
	return &addr, nil
}
