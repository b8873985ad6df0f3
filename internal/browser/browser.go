// Package browser opens URLs in the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// playlistURLPrefix is the public URL prefix every recommended playlist must
// carry before being handed to the browser.
const playlistURLPrefix = "https://open.spotify.com/"

var (
	// ErrNotSpotifyURL is returned for URLs outside open.spotify.com.
	ErrNotSpotifyURL = errors.New("not an open.spotify.com URL")

	// ErrUnsupportedPlatform is returned when no opener is known for the OS.
	ErrUnsupportedPlatform = errors.New("no known browser opener for this platform")
)

// Open launches url in the user's default browser.
func Open(url string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}
}

// OpenPlaylist validates that url is a public Spotify URL before opening it.
func OpenPlaylist(url string) error {
	if err := ValidatePlaylistURL(url); err != nil {
		return err
	}
	return Open(url)
}

// ValidatePlaylistURL checks the expected public playlist URL prefix.
func ValidatePlaylistURL(url string) error {
	if !strings.HasPrefix(url, playlistURLPrefix) {
		return fmt.Errorf("%w: %s", ErrNotSpotifyURL, url)
	}
	return nil
}
