package anylist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"anylist"
)

func savedTokens() anylist.SavedTokens {
	return anylist.SavedTokens{
		UserID:        "user-1",
		AccessToken:   "access-1",
		RefreshToken:  "refresh-1",
		IsPremiumUser: true,
	}
}

// loginServer accepts any credentials and issues savedTokens().
func loginServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewEncoder(w).Encode(savedTokens()); err != nil {
			t.Errorf("encode tokens: %v", err)
		}
	}))
}

// newTestClient builds a client from stored tokens pointed at a fixture
// server. The server is closed when the test finishes.
func newTestClient(t *testing.T, handler http.HandlerFunc) *anylist.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := anylist.FromTokens(savedTokens(), anylist.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	return c
}

func TestLogin_TokensRoundTrip(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	c, err := anylist.Login(context.Background(), "user@example.com", "pw", anylist.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if got := c.Tokens(); got != savedTokens() {
		t.Fatalf("Tokens() = %+v", got)
	}
	if c.UserID() != "user-1" {
		t.Fatalf("UserID() = %q", c.UserID())
	}
	if !c.IsPremiumUser() {
		t.Fatal("IsPremiumUser() = false")
	}
	if c.ClientIdentifier() == "" {
		t.Fatal("ClientIdentifier() is empty")
	}
}

func TestFromTokens_NoNetworkCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	c, err := anylist.FromTokens(savedTokens(), anylist.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	if got := c.Tokens(); got != savedTokens() {
		t.Fatalf("Tokens() = %+v", got)
	}
}

func TestFromTokens_Incomplete(t *testing.T) {
	if _, err := anylist.FromTokens(anylist.SavedTokens{UserID: "u"}); err == nil {
		t.Fatal("expected error for incomplete tokens")
	}
}
