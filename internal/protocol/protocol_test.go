package protocol_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"anylist/internal/protocol"
)

// tokensJSON writes a token set as the response body.
func tokensJSON(t *testing.T, w http.ResponseWriter, tok protocol.Tokens) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tok); err != nil {
		t.Fatalf("encode tokens: %v", err)
	}
}

// signedJWT mints an HS256 JWT expiring at exp.
func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return s
}

func newClient(srv *httptest.Server) *protocol.Client {
	return protocol.New(protocol.Config{BaseURL: srv.URL, HTTP: srv.Client()})
}

func TestLogin_StoresTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %s, want /auth/login", r.URL.Path)
		}
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if in.Email != "user@example.com" || in.Password != "hunter2hunter2" {
			t.Errorf("credentials not forwarded: %+v", in)
		}
		tokensJSON(t, w, protocol.Tokens{
			UserID:        "user-1",
			AccessToken:   "access-1",
			RefreshToken:  "refresh-1",
			IsPremiumUser: true,
		})
	}))
	defer srv.Close()

	c := newClient(srv)
	if err := c.Login(context.Background(), "user@example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	tok := c.CurrentTokens()
	if tok.UserID != "user-1" || tok.AccessToken != "access-1" || !tok.IsPremiumUser {
		t.Fatalf("tokens not stored: %+v", tok)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(srv)
	err := c.Login(context.Background(), "user@example.com", "wrong")
	if !errors.Is(err, protocol.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRequest_SendsAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer access-1" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-AnyList-Client-Identifier") == "" {
			t.Error("missing client identifier header")
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newClient(srv)
	c.SetTokens(protocol.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})

	if _, err := c.Lists(context.Background()); err != nil {
		t.Fatalf("Lists: %v", err)
	}
}

func TestRequest_RefreshOnceOn401(t *testing.T) {
	var listCalls, refreshCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls++
			var in struct {
				RefreshToken string `json:"refresh_token"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.RefreshToken != "refresh-old" {
				t.Errorf("refresh body = %+v, err %v", in, err)
			}
			tokensJSON(t, w, protocol.Tokens{
				UserID:       "user-1",
				AccessToken:  "access-new",
				RefreshToken: "refresh-new",
			})
		case "/v1/lists":
			listCalls++
			if r.Header.Get("Authorization") == "Bearer access-stale" {
				http.Error(w, "expired", http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`[{"id":"l1","name":"Groceries","items":[]}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newClient(srv)
	c.SetTokens(protocol.Tokens{AccessToken: "access-stale", RefreshToken: "refresh-old"})

	lists, err := c.Lists(context.Background())
	if err != nil {
		t.Fatalf("Lists: %v", err)
	}
	if len(lists) != 1 || lists[0].Name != "Groceries" {
		t.Fatalf("lists = %+v", lists)
	}
	if refreshCalls != 1 || listCalls != 2 {
		t.Fatalf("refreshCalls = %d, listCalls = %d; want 1 and 2", refreshCalls, listCalls)
	}
	if got := c.CurrentTokens().RefreshToken; got != "refresh-new" {
		t.Fatalf("refresh token not rotated: %q", got)
	}
}

func TestRequest_ProactiveRefreshOfExpiredJWT(t *testing.T) {
	var sawBearer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			tokensJSON(t, w, protocol.Tokens{
				AccessToken:  "access-fresh",
				RefreshToken: "refresh-2",
			})
		case "/v1/lists":
			sawBearer = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := newClient(srv)
	c.SetTokens(protocol.Tokens{
		AccessToken:  signedJWT(t, time.Now().Add(-time.Minute)),
		RefreshToken: "refresh-1",
	})

	if _, err := c.Lists(context.Background()); err != nil {
		t.Fatalf("Lists: %v", err)
	}
	if sawBearer != "Bearer access-fresh" {
		t.Fatalf("request used %q, want refreshed token", sawBearer)
	}
}

func TestRequest_UnexpiredJWTNotRefreshed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			t.Error("unexpected refresh")
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newClient(srv)
	c.SetTokens(protocol.Tokens{
		AccessToken:  signedJWT(t, time.Now().Add(time.Hour)),
		RefreshToken: "refresh-1",
	})

	if _, err := c.Lists(context.Background()); err != nil {
		t.Fatalf("Lists: %v", err)
	}
}

func TestRefresh_WithoutRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(srv)
	c.SetTokens(protocol.Tokens{AccessToken: "access-only"})

	_, err := c.Lists(context.Background())
	if !errors.Is(err, protocol.ErrNoRefreshToken) {
		t.Fatalf("err = %v, want ErrNoRefreshToken", err)
	}
}

func TestStatusError_Classification(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, protocol.ErrNotFound},
		{http.StatusPaymentRequired, protocol.ErrPremiumRequired},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no", tc.status)
		}))

		c := newClient(srv)
		c.SetTokens(protocol.Tokens{AccessToken: "a", RefreshToken: "r"})

		_, err := c.ListByID(context.Background(), "missing")
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
		var se *protocol.StatusError
		if !errors.As(err, &se) || se.StatusCode != tc.status {
			t.Errorf("status %d: StatusError not surfaced: %v", tc.status, err)
		}
		srv.Close()
	}
}

func TestUploadPhoto_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/photos" {
			t.Errorf("path = %s", r.URL.Path)
		}
		f, hdr, err := r.FormFile("photo")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "dinner.jpg" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		w.Write([]byte(`{"photo_id":"photo-9"}`))
	}))
	defer srv.Close()

	c := newClient(srv)
	c.SetTokens(protocol.Tokens{AccessToken: "a", RefreshToken: "r"})

	id, err := c.UploadPhoto(context.Background(), []byte{0xff, 0xd8, 0xff}, "dinner.jpg")
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if id != "photo-9" {
		t.Fatalf("photo id = %q", id)
	}
}
