package anylist

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"anylist/internal/protocol"
)

// Client is an authenticated session with the AnyList service.
//
// A Client is safe for concurrent use; token refresh is coordinated by
// the underlying engine.
type Client struct {
	eng *protocol.Client
}

type options struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option adjusts how a Client talks to the service.
type Option func(*options)

// WithBaseURL points the client at a different endpoint, e.g. a test
// server.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient substitutes the HTTP client used for all requests.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.http = h }
}

// WithLogger enables debug logging of requests.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newClient(opts []Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{eng: protocol.New(protocol.Config{
		BaseURL: o.baseURL,
		HTTP:    o.http,
		Logger:  o.logger,
	})}
}

// Login authenticates with an email and password and returns a ready
// client.
func Login(ctx context.Context, email, password string, opts ...Option) (*Client, error) {
	c := newClient(opts)
	if err := c.eng.Login(ctx, email, password); err != nil {
		return nil, err
	}
	return c, nil
}

// FromTokens rebuilds a client from a previously saved token set. No
// network call is made; stale tokens are renewed on the first request.
func FromTokens(tokens SavedTokens, opts ...Option) (*Client, error) {
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return nil, fmt.Errorf("anylist: incomplete saved tokens")
	}
	c := newClient(opts)
	c.eng.SetTokens(protocol.Tokens(tokens))
	return c, nil
}

// Tokens returns the current session tokens for persistence. The set
// changes whenever the engine refreshes, so save the value returned
// after the last call, not the one from login time.
func (c *Client) Tokens() SavedTokens {
	return SavedTokens(c.eng.CurrentTokens())
}

// UserID returns the authenticated account's ID.
func (c *Client) UserID() string { return c.eng.CurrentTokens().UserID }

// IsPremiumUser reports whether the account has a premium subscription.
func (c *Client) IsPremiumUser() bool { return c.eng.CurrentTokens().IsPremiumUser }

// ClientIdentifier returns the per-install identifier sent with every
// request.
func (c *Client) ClientIdentifier() string { return c.eng.ClientIdentifier() }
