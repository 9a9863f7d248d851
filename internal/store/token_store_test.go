package store_test

import (
	"errors"
	"testing"

	"anylist"
	"anylist/internal/store"
)

func testTokens() anylist.SavedTokens {
	return anylist.SavedTokens{
		UserID:        "user-1",
		AccessToken:   "access-1",
		RefreshToken:  "refresh-1",
		IsPremiumUser: true,
	}
}

func TestTokenStore_SaveLoad(t *testing.T) {
	s := store.NewTokenStore(t.TempDir())

	if err := s.Save("correct horse battery staple", testTokens()); err != nil {
		t.Fatalf("save tokens: %v", err)
	}

	got, ok, err := s.Load("correct horse battery staple")
	if err != nil {
		t.Fatalf("load tokens: %v", err)
	}
	if !ok {
		t.Fatal("ok = false after save")
	}
	if got != testTokens() {
		t.Fatalf("mismatch after load: %+v", got)
	}
}

func TestTokenStore_WrongPassphrase(t *testing.T) {
	s := store.NewTokenStore(t.TempDir())

	if err := s.Save("correct", testTokens()); err != nil {
		t.Fatalf("save tokens: %v", err)
	}
	_, _, err := s.Load("wrong")
	if !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("err = %v, want ErrWrongPassphrase", err)
	}
}

func TestTokenStore_Empty(t *testing.T) {
	s := store.NewTokenStore(t.TempDir())

	_, ok, err := s.Load("anything")
	if err != nil {
		t.Fatalf("load from empty store: %v", err)
	}
	if ok {
		t.Fatal("ok = true for empty store")
	}
}

func TestTokenStore_Clear(t *testing.T) {
	s := store.NewTokenStore(t.TempDir())

	// Clearing before anything is saved is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("clear empty store: %v", err)
	}

	if err := s.Save("pass-pass-pass", testTokens()); err != nil {
		t.Fatalf("save tokens: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	_, ok, err := s.Load("pass-pass-pass")
	if err != nil || ok {
		t.Fatalf("tokens survive clear: ok=%v err=%v", ok, err)
	}
}
