package switchbot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// DefaultBaseURL is the SwitchBot Open API v1.1 endpoint
const DefaultBaseURL = "https://api.switch-bot.com/v1.1"

// DefaultTimeout bounds a single API call when the caller does not provide its own http.Client
const DefaultTimeout = 15 * time.Second

// Client calls the SwitchBot Open API with signed GET requests
type Client struct {
	token      string
	secret     string
	baseURL    string
	httpClient *http.Client
	log        logr.Logger
	now        func() time.Time
	nonce      func() string
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithClock overrides the time source used for the `t` header
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithNonce overrides the nonce generator (random UUIDs by default)
func WithNonce(nonce func() string) Option {
	return func(c *Client) {
		c.nonce = nonce
	}
}

// NewClient returns a client for the given credentials. When secret is
// empty the token doubles as signing secret.
func NewClient(token, secret string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	c := &Client{
		token:      token,
		secret:     strings.TrimSpace(secret),
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        logr.Discard(),
		now:        time.Now,
		nonce:      func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithName("switchbot.Client")

	if c.secret == "" {
		c.log.Info("No secret given, signing with the token", "base_url", c.baseURL)
		c.secret = c.token
	}
	return c, nil
}

// BaseURL returns the API root this client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Headers returns a freshly signed set of request headers
func (c *Client) Headers() http.Header {
	sig := Sign(c.token, c.secret, c.now(), c.nonce())

	h := make(http.Header)
	h.Set("Content-Type", "application/json; charset=utf8")
	h.Set("Authorization", c.token)
	h.Set("t", sig.Timestamp)
	h.Set("nonce", sig.Nonce)
	h.Set("sign", sig.Sign)
	return h
}

// get performs a signed GET on endpoint and returns the raw body of a 2xx answer
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	u := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", endpoint, err)
	}
	req.Header = c.Headers()

	c.log.V(1).Info("Calling", "url", u, "nonce", req.Header.Get("nonce"), "t", req.Header.Get("t"))
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", endpoint, err)
	}
	c.log.V(1).Info("Result", "url", u, "status", resp.StatusCode, "bytes", len(data), "dur", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// call GETs endpoint, decodes the envelope into out and checks its status code.
// The raw answer is returned even when the envelope reports an error.
func call[T any](ctx context.Context, c *Client, endpoint string) (*Response[T], Raw, error) {
	data, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, nil, err
	}

	var res Response[T]
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, Raw(data), fmt.Errorf("decode %s: %w", endpoint, err)
	}
	if res.StatusCode != StatusSuccess {
		c.log.Info("API error", "endpoint", endpoint, "status_code", res.StatusCode, "message", res.Message)
		return &res, Raw(data), &APIError{StatusCode: res.StatusCode, Message: res.Message}
	}
	return &res, Raw(data), nil
}
