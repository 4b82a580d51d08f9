// Package file keeps the session bearer token in a mode-0600 file so a
// login survives restarts. The token is read before every authenticated
// call, written on successful login and removed on logout.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken - no stored session; the caller must log in first
var ErrNoToken = errors.New("no stored token")

// ErrTokenExpired - the stored session token's exp claim has passed
var ErrTokenExpired = errors.New("stored token expired")

// Store persists one bearer token at a fixed path.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore points the store at path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Save writes the token, replacing any previous session.
func (s *Store) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Load returns the stored token. A token whose JWT exp claim has passed
// reads as ErrTokenExpired so stale sessions surface as "not
// authenticated" before any request goes out. The claim is decoded
// without signature verification; only the backend can verify it, the
// client just avoids sending a call that is guaranteed to 401.
func (s *Store) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrNoToken
	}
	if expired(token, s.now()) {
		return "", ErrTokenExpired
	}
	return token, nil
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// expired reports whether token carries an exp claim in the past.
// Opaque (non-JWT) tokens never read as expired.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
