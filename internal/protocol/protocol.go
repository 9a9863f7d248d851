package protocol

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// DefaultBaseURL is the production AnyList endpoint.
const DefaultBaseURL = "https://api.anylist.com"

// clientIDHeader identifies this install to the service; the value is
// generated per Client and is not part of the saved session.
const clientIDHeader = "X-AnyList-Client-Identifier"

// Config carries the knobs for building a Client.
type Config struct {
	BaseURL string       // service base URL; DefaultBaseURL when empty
	HTTP    *http.Client // optional; defaults to http.DefaultClient
	Logger  *slog.Logger // optional; discards when nil
}

// Client performs raw AnyList requests. It holds the session tokens and
// renews them transparently: proactively when the access token has
// expired, and once more on a 401 response.
type Client struct {
	base     string
	http     *http.Client
	log      *slog.Logger
	clientID string

	mu     sync.Mutex
	tokens Tokens
}

// New builds a Client with no session. Call Login or SetTokens before
// issuing authenticated requests.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		base:     base,
		http:     httpClient,
		log:      logger,
		clientID: newClientID(),
	}
}

// SetTokens installs a previously saved session. No network call is made;
// the tokens are validated lazily on the first request.
func (c *Client) SetTokens(t Tokens) {
	c.mu.Lock()
	c.tokens = t
	c.mu.Unlock()
}

// CurrentTokens returns a copy of the session tokens currently held.
func (c *Client) CurrentTokens() Tokens {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

// ClientIdentifier returns the per-install identifier sent with every
// request.
func (c *Client) ClientIdentifier() string { return c.clientID }

// do issues an authenticated JSON request. in is encoded as the request
// body when non-nil; out is decoded from the response when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = b
	}

	if err := c.freshen(ctx); err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, body, c.accessToken())
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// Access token rejected; refresh once and retry.
		resp.Body.Close()
		if err := c.refresh(ctx); err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, body, c.accessToken())
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return statusError(method, path, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// send performs a single HTTP round trip and logs it.
func (c *Client) send(ctx context.Context, method, path string, body []byte, bearer string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	req.Header.Set(clientIDHeader, c.clientID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", path, "err", err)
		return nil, err
	}
	c.log.Debug("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)
	return resp, nil
}

func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens.AccessToken
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// newClientID generates a random per-install identifier.
func newClientID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "unidentified-client"
	}
	return hex.EncodeToString(b[:])
}
