// Package config loads Spotify credentials from the environment and
// recommender tunables from an optional TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Placeholder values shipped in the sample .env; using them is a setup
// error, not a credential.
const (
	placeholderClientID     = "your_client_id_here"
	placeholderClientSecret = "your_client_secret_here"
)

// defaultRedirectURI uses explicit IPv4 loopback as required by Spotify for
// local development.
const defaultRedirectURI = "http://127.0.0.1:8080/callback"

var (
	// ErrMissingCredentials is returned when SPOTIFY_CLIENT_ID or
	// SPOTIFY_CLIENT_SECRET is not set.
	ErrMissingCredentials = errors.New("missing SPOTIFY_CLIENT_ID or SPOTIFY_CLIENT_SECRET environment variable")

	// ErrPlaceholderCredentials is returned when the sample .env values were
	// never replaced with a real Spotify app's ID and secret.
	ErrPlaceholderCredentials = errors.New("placeholder Spotify credentials; create an app at https://developer.spotify.com/dashboard and fill in .env")
)

// Credentials holds the Spotify app credentials and redirect URI.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// LoadCredentials reads Spotify credentials from the environment, loading a
// .env file from the working directory first if one exists. Both missing and
// placeholder credentials are startup-fatal.
func LoadCredentials() (*Credentials, error) {
	// A missing .env is fine; the variables may be set directly.
	_ = godotenv.Load()

	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")

	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}
	if clientID == placeholderClientID || clientSecret == placeholderClientSecret {
		return nil, ErrPlaceholderCredentials
	}

	redirectURI := os.Getenv("SPOTIFY_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = defaultRedirectURI
	}

	return &Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
	}, nil
}

// Validate rechecks a Credentials value, for callers that build one by hand.
func (c *Credentials) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return ErrMissingCredentials
	}
	if c.ClientID == placeholderClientID || c.ClientSecret == placeholderClientSecret {
		return ErrPlaceholderCredentials
	}
	if c.RedirectURI == "" {
		return fmt.Errorf("empty redirect URI")
	}
	return nil
}
