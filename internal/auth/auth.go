package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"moodtune/internal/config"
)

const callbackTimeout = 2 * time.Minute

var (
	// ErrAuthTimeout is returned when the OAuth callback is not received in time.
	ErrAuthTimeout = errors.New("authentication timed out waiting for callback")

	// ErrStateMismatch is returned when the OAuth state parameter doesn't match.
	ErrStateMismatch = errors.New("OAuth state mismatch")
)

// Authenticator handles Spotify OAuth2 authentication.
type Authenticator struct {
	auth     *spotifyauth.Authenticator
	cache    *TokenCache
	listen   string // host:port derived from the redirect URI
	callback string // path component of the redirect URI
	log      zerolog.Logger
}

// New creates an Authenticator for the given credentials. The callback
// server listens on whatever host:port the redirect URI names.
func New(creds *config.Credentials, log zerolog.Logger) (*Authenticator, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	redirect, err := url.Parse(creds.RedirectURI)
	if err != nil {
		return nil, fmt.Errorf("parsing redirect URI: %w", err)
	}

	cache, err := DefaultTokenCache()
	if err != nil {
		return nil, fmt.Errorf("creating token cache: %w", err)
	}

	auth := spotifyauth.New(
		spotifyauth.WithClientID(creds.ClientID),
		spotifyauth.WithClientSecret(creds.ClientSecret),
		spotifyauth.WithRedirectURL(creds.RedirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserReadPrivate,
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistReadCollaborative,
		),
	)

	return &Authenticator{
		auth:     auth,
		cache:    cache,
		listen:   redirect.Host,
		callback: redirect.Path,
		log:      log,
	}, nil
}

// Authenticate returns an authenticated Spotify client, reusing the cached
// token when it still works and falling back to the browser consent flow
// otherwise.
func (a *Authenticator) Authenticate(ctx context.Context) (*spotify.Client, error) {
	token, err := a.cache.Load()
	if err != nil {
		return nil, fmt.Errorf("loading cached token: %w", err)
	}
	if token == nil {
		return a.browserFlow(ctx)
	}

	// The oauth2 transport refreshes an expired access token on its own; a
	// cheap profile request tells us whether the refresh token is still good.
	client := spotify.New(a.auth.Client(ctx, token), spotify.WithRetry(true))
	if _, err := client.CurrentUser(ctx); err != nil {
		a.log.Warn().Err(err).Msg("cached token rejected, starting browser authentication")
		return a.browserFlow(ctx)
	}

	// Keep the cache current when the transport handed us a fresh token.
	if fresh, err := client.Token(); err == nil && fresh.AccessToken != token.AccessToken {
		_ = a.cache.Save(fresh)
	}
	return client, nil
}

// browserFlow runs the authorization code flow: a one-route callback server
// on the redirect address, the consent URL printed for the user to open, and
// a bounded wait for Spotify to redirect back.
func (a *Authenticator) browserFlow(ctx context.Context) (*spotify.Client, error) {
	state := uuid.NewString()
	tokens := make(chan *oauth2.Token, 1)
	fails := make(chan error, 1)

	server := a.callbackServer(state, tokens, fails)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fails <- fmt.Errorf("callback server: %w", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	fmt.Println("\nTo connect your Spotify account, open this URL in your browser:")
	fmt.Println(a.auth.AuthURL(state))
	fmt.Println("\nWaiting for Spotify...")

	var token *oauth2.Token
	select {
	case token = <-tokens:
	case err := <-fails:
		return nil, err
	case <-time.After(callbackTimeout):
		return nil, ErrAuthTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := a.cache.Save(token); err != nil {
		// Not fatal; the next run simply authenticates again.
		a.log.Warn().Err(err).Msg("could not cache token")
	}

	return spotify.New(a.auth.Client(ctx, token), spotify.WithRetry(true)), nil
}

// callbackServer builds the single-route HTTP server that receives the
// OAuth redirect and resolves it into either a token or an error.
func (a *Authenticator) callbackServer(state string, tokens chan<- *oauth2.Token, fails chan<- error) *http.Server {
	router := chi.NewRouter()
	router.Get(a.callback, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Query().Get("state") != state:
			http.Error(w, "state mismatch", http.StatusBadRequest)
			fails <- ErrStateMismatch
		case r.URL.Query().Get("error") != "":
			reason := r.URL.Query().Get("error")
			http.Error(w, "authorization denied: "+reason, http.StatusBadRequest)
			fails <- fmt.Errorf("spotify denied authorization: %s", reason)
		default:
			token, err := a.auth.Token(r.Context(), state, r)
			if err != nil {
				http.Error(w, "token exchange failed", http.StatusInternalServerError)
				fails <- fmt.Errorf("exchanging code for token: %w", err)
				return
			}
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, callbackPage)
			tokens <- token
		}
	})
	return &http.Server{Addr: a.listen, Handler: router}
}

const callbackPage = `<!DOCTYPE html>
<html>
<head><title>moodtune</title></head>
<body>
<h1>Connected to Spotify</h1>
<p>Close this tab and head back to the terminal.</p>
</body>
</html>`

// Logout removes the cached token.
func (a *Authenticator) Logout() error {
	return a.cache.Delete()
}
