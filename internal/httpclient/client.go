package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/tidwall/gjson"
)

const maxBodySize = 4 << 20

type Options struct {
	BaseURL string
	Timeout time.Duration

	// NotFoundRetries bounds how many times a GET answered with 404 is
	// repeated, RetryDelay apart.
	NotFoundRetries int
	RetryDelay      time.Duration

	// Tokens enables bearer injection and 401 handling. Nil means an
	// unauthenticated client.
	Tokens TokenSource

	Transport http.RoundTripper
	Logger    internal.Logger
}

type Client struct {
	baseURL    string
	http       *http.Client
	retries    int
	retryDelay time.Duration
	logger     internal.Logger
}

func New(opts Options) *Client {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	logger := opts.Logger
	if logger == nil {
		logger = internal.NopLogger()
	}
	var rt http.RoundTripper = &requestIDTransport{base: base}
	if opts.Tokens != nil {
		rt = &authTransport{base: rt, tokens: opts.Tokens, logger: logger}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		http:       &http.Client{Timeout: opts.Timeout, Transport: rt},
		retries:    opts.NotFoundRetries,
		retryDelay: opts.RetryDelay,
		logger:     logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do sends body as JSON and decodes a 2xx answer into out (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.DoRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// DoRaw is Do without decoding. GETs answered with 404 are retried.
func (c *Client) DoRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		raw, err := c.send(ctx, method, path, body)
		if err == nil || method != http.MethodGet || !errors.Is(err, internal.ErrNotFound) || attempt >= c.retries {
			return raw, err
		}
		c.logger.Infof("GET %s not found, retrying (%d/%d)", path, attempt+1, c.retries)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
}

func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Errorf("%s %s failed: %v", method, path, err)
		return nil, &internal.APIError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &internal.APIError{Status: resp.StatusCode, Err: err}
	}
	c.logger.Debugf("%s %s -> %d (%v)", method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &internal.APIError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}
	return raw, nil
}

// serverMessage pulls a human-readable message out of an error body.
func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"message", "error.message", "error"} {
		if r := gjson.GetBytes(body, path); r.Type == gjson.String && r.String() != "" {
			return r.String()
		}
	}
	return ""
}
