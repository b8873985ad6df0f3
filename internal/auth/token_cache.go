// Package auth provides Spotify OAuth2 authentication with token caching.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

const (
	cacheDirName  = "moodtune"
	cacheFileName = "token.json"
)

// TokenCache persists the OAuth token across runs so the browser consent
// flow only happens once per machine.
type TokenCache struct {
	path string
}

// DefaultTokenCache stores the token under the user config directory,
// ~/.config/moodtune/token.json on Linux.
func DefaultTokenCache() (*TokenCache, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving user config dir: %w", err)
	}
	return &TokenCache{path: filepath.Join(dir, cacheDirName, cacheFileName)}, nil
}

// Load returns the cached token, or nil when none has been saved yet.
func (c *TokenCache) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(c.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("reading token cache: %w", err)
	}

	token := new(oauth2.Token)
	if err := json.Unmarshal(data, token); err != nil {
		return nil, fmt.Errorf("parsing token cache %s: %w", c.path, err)
	}
	return token, nil
}

// Save writes the token with owner-only permissions, creating the cache
// directory on first use.
func (c *TokenCache) Save(token *oauth2.Token) error {
	if token == nil {
		return errors.New("refusing to cache nil token")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing token cache: %w", err)
	}
	return nil
}

// Delete removes the cached token. An already-absent cache is not an error.
func (c *TokenCache) Delete() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token cache: %w", err)
	}
	return nil
}
