package protocol

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens is the session material issued by the service.
type Tokens struct {
	UserID        string `json:"user_id"`
	AccessToken   string `json:"access_token"`
	RefreshToken  string `json:"refresh_token"`
	IsPremiumUser bool   `json:"is_premium_user"`
}

// expiryLeeway refreshes slightly early so a token does not expire
// mid-flight.
const expiryLeeway = 30 * time.Second

// Login exchanges credentials for a token set and installs it on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var tok Tokens
	if err := c.authPost(ctx, "/auth/login", in, &tok); err != nil {
		return err
	}
	c.SetTokens(tok)
	return nil
}

// refresh trades the refresh token for a new token set.
func (c *Client) refresh(ctx context.Context) error {
	c.mu.Lock()
	rt := c.tokens.RefreshToken
	c.mu.Unlock()
	if rt == "" {
		return ErrNoRefreshToken
	}

	in := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: rt}

	var tok Tokens
	if err := c.authPost(ctx, "/auth/refresh", in, &tok); err != nil {
		return err
	}
	c.SetTokens(tok)
	return nil
}

// freshen refreshes ahead of a request when the held access token is a
// JWT whose expiry has passed. Opaque tokens are left alone; a 401 on the
// request itself still triggers a reactive refresh.
func (c *Client) freshen(ctx context.Context) error {
	c.mu.Lock()
	access := c.tokens.AccessToken
	c.mu.Unlock()
	if access == "" || !tokenExpired(access, time.Now()) {
		return nil
	}
	return c.refresh(ctx)
}

// authPost is a bare POST used by the auth endpoints themselves; it must
// not recurse into the refresh logic.
func (c *Client) authPost(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := c.send(ctx, http.MethodPost, path, body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(http.MethodPost, path, resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// tokenExpired reports whether tok is a JWT with an exp claim in the
// past. The signature is not checked: the claim is only used to decide
// when to refresh, never to grant anything.
func tokenExpired(tok string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return now.Add(expiryLeeway).After(claims.ExpiresAt.Time)
}
