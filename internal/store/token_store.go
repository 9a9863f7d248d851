package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"anylist"
)

const tokenFile = "tokens.enc"

// TokenStore keeps the saved session tokens in an encrypted file under
// dir.
type TokenStore struct {
	dir string
	mu  sync.Mutex
}

// NewTokenStore returns a store rooted at dir. The directory must exist.
func NewTokenStore(dir string) *TokenStore { return &TokenStore{dir: dir} }

// Save seals tokens with the passphrase and writes them atomically.
func (s *TokenStore) Save(passphrase string, tokens anylist.SavedTokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	blob, err := seal(passphrase, raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, tokenFile), blob, 0o600)
}

// Load opens the stored tokens. ok is false when no tokens have been
// saved; a wrong passphrase returns ErrWrongPassphrase.
func (s *TokenStore) Load(passphrase string) (tokens anylist.SavedTokens, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if errors.Is(err, os.ErrNotExist) {
		return anylist.SavedTokens{}, false, nil
	}
	if err != nil {
		return anylist.SavedTokens{}, false, err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return anylist.SavedTokens{}, false, err
	}
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return anylist.SavedTokens{}, false, err
	}
	return tokens, true, nil
}

// Clear removes the stored tokens. Clearing an empty store is not an
// error.
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, tokenFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// writeFile writes bytes via a temp file, then atomically replaces the
// target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
