// Package app wires the camera, mood model, and recommender into the
// interactive detect-and-recommend loop.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/rs/zerolog"
	"github.com/zmb3/spotify/v2"
	"gocv.io/x/gocv"

	"moodtune/internal/auth"
	"moodtune/internal/browser"
	"moodtune/internal/config"
	"moodtune/internal/mood"
	"moodtune/internal/playlist"
	"moodtune/internal/vision"
)

const (
	windowTitle = "Mood Playlist Recommender"

	// recommendationCooldown spaces out consecutive recommendations.
	recommendationCooldown = 10 * time.Second

	// interCycleDelay is the pause before a new detection cycle starts.
	interCycleDelay = time.Second
)

// Connect loads credentials, authenticates with Spotify, and greets the
// user. Credential problems are startup-fatal for the caller.
func Connect(ctx context.Context, log zerolog.Logger) (*spotify.Client, error) {
	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}

	authenticator, err := auth.New(creds, log)
	if err != nil {
		return nil, err
	}

	client, err := authenticator.Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticating with Spotify: %w", err)
	}

	if user, err := client.CurrentUser(ctx); err == nil {
		name := user.DisplayName
		if name == "" {
			name = user.ID
		}
		log.Info().Str("user", name).Msg("authenticated with Spotify")
	} else {
		log.Warn().Err(err).Msg("authenticated but couldn't fetch user info")
	}

	return client, nil
}

// App runs the interactive camera loop.
type App struct {
	settings config.Settings
	log      zerolog.Logger

	rec      *playlist.Recommender
	camera   *vision.Camera
	cascades *vision.CascadeSet
	window   *vision.Window
	rotation *mood.Rotation

	stdin              *bufio.Reader
	lastRecommendation time.Time
}

// New authenticates, opens the camera, and loads the cascades. Camera
// failures are fatal for the run; cascade failures are not (the demo
// rotation takes over).
func New(ctx context.Context, settings config.Settings, log zerolog.Logger) (*App, error) {
	client, err := Connect(ctx, log)
	if err != nil {
		return nil, err
	}

	rec := playlist.New(client, playlist.Config{
		Market: settings.Market,
		Limit:  settings.SearchLimit,
	}, log)

	camera, err := vision.OpenCamera(settings.CameraIndex, settings.FrameWidth, settings.FrameHeight, settings.FrameSkip)
	if err != nil {
		return nil, err
	}
	log.Info().Int("index", settings.CameraIndex).Msg("camera initialized")

	return &App{
		settings: settings,
		log:      log,
		rec:      rec,
		camera:   camera,
		cascades: vision.LoadCascades(settings.CascadeDir, log),
		window:   vision.NewWindow(windowTitle),
		rotation: mood.NewRotation(time.Now(), time.Duration(settings.RotationSeconds)*time.Second),
		stdin:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run drives detect → recommend → try-again until the user declines or the
// context is cancelled. Resources are released on every exit path.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printIntro()

	for {
		label, err := a.detectCycle(ctx)
		if err != nil {
			return err
		}

		if label != "" {
			a.recommend(ctx, label)
		} else {
			fmt.Println("Mood detection was cancelled or failed.")
		}

		if !a.askTryAgain() {
			return nil
		}
		time.Sleep(interCycleDelay)
	}
}

// detectCycle captures frames until a mood is confirmed by the stability
// gate. Returns "" with no error when the user cancels with the quit key.
func (a *App) detectCycle(ctx context.Context) (mood.Label, error) {
	a.log.Info().Msg("starting mood detection; look at the camera, press 'q' to quit")

	gate := mood.NewGate(a.settings.Stability)
	frame := gocv.NewMat()
	defer frame.Close()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		sample, err := a.camera.Read(&frame)
		if err != nil {
			return "", fmt.Errorf("capturing frame: %w", err)
		}

		if sample {
			label, ok := mood.Infer(a.cascades.Detect(&frame))
			if !ok {
				label = a.rotation.Next(time.Now())
				a.log.Debug().Str("mood", string(label)).Msg("no face found, using demo rotation")
			}

			held, done := gate.Observe(label)
			a.log.Info().
				Str("mood", string(held)).
				Int("count", gate.Count()).
				Int("threshold", gate.Threshold()).
				Msg("mood stability")

			if done {
				a.log.Info().Str("mood", string(held)).Msg("mood confirmed")
				return held, nil
			}
		}

		vision.DrawOverlay(&frame, gate.Held(), gate.Count(), gate.Threshold())
		a.window.Show(frame)

		if a.window.QuitRequested() {
			a.log.Info().Msg("detection cancelled by user")
			return "", nil
		}
	}
}

// recommend searches for a playlist matching the confirmed mood, prints it,
// and opens it in the browser. Finding nothing is reported, never fatal.
func (a *App) recommend(ctx context.Context, label mood.Label) {
	a.waitCooldown()

	keywords := config.KeywordsFor(label)
	a.log.Info().
		Str("mood", string(label)).
		Strs("keywords", keywords).
		Msg("searching for playlists")

	var (
		cand   playlist.Candidate
		recErr error
	)
	_ = spinner.New().
		Title("Searching Spotify for playlists...").
		Action(func() { cand, recErr = a.rec.Recommend(ctx, keywords) }).
		Run()

	if recErr != nil {
		if errors.Is(recErr, playlist.ErrNoPlaylists) {
			a.log.Warn().Str("mood", string(label)).Msg("no playlist found for mood")
			fmt.Println("No playlist recommendation this time, sorry.")
		} else {
			a.log.Error().Err(recErr).Msg("playlist recommendation failed")
		}
		return
	}

	PrintRecommendation(string(label), cand)

	if err := browser.OpenPlaylist(cand.URL); err != nil {
		a.log.Warn().Err(err).Msg("failed to open playlist in browser")
	} else {
		a.log.Info().Str("url", cand.URL).Msg("opened playlist in browser")
	}

	a.lastRecommendation = time.Now()
}

// waitCooldown sleeps out whatever remains of the recommendation cooldown.
func (a *App) waitCooldown() {
	if a.lastRecommendation.IsZero() {
		return
	}
	if d := recommendationCooldown - time.Since(a.lastRecommendation); d > 0 {
		a.log.Debug().Dur("wait", d).Msg("cooling down before next recommendation")
		time.Sleep(d)
	}
}

// askTryAgain prompts until the user answers yes or no. EOF counts as no.
func (a *App) askTryAgain() bool {
	for {
		fmt.Print("\nWould you like to try again? (y/n): ")
		line, err := a.stdin.ReadString('\n')
		if err != nil {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			fmt.Println("Thank you for using Mood Playlist Recommender!")
			return false
		default:
			fmt.Println("Please enter 'y' for yes or 'n' for no.")
		}
	}
}

// Close releases the camera, classifiers, and preview window.
func (a *App) Close() {
	if a.camera != nil {
		_ = a.camera.Close()
	}
	if a.cascades != nil {
		a.cascades.Close()
	}
	if a.window != nil {
		_ = a.window.Close()
	}
	a.log.Info().Msg("camera resources released")
}

// PrintRecommendation writes the recommendation block to stdout.
func PrintRecommendation(moodName string, c playlist.Candidate) {
	line := strings.Repeat("=", 60)
	fmt.Println("\n" + line)
	fmt.Printf("PLAYLIST RECOMMENDATION FOR %q MOOD:\n", strings.ToUpper(moodName))
	fmt.Printf("Name:        %s\n", c.Name)
	fmt.Printf("Creator:     %s\n", c.Owner)
	fmt.Printf("Tracks:      %d\n", c.Tracks)
	fmt.Printf("Description: %s\n", c.Description)
	fmt.Printf("URL:         %s\n", c.URL)
	fmt.Println(line)
}

func printIntro() {
	fmt.Println("\nMood-Based Spotify Playlist Recommender")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("1. The camera analyzes your facial expression")
	fmt.Println("2. Once a stable mood is detected, the camera stops")
	fmt.Println("3. You get a playlist recommendation in your browser")
	fmt.Println("4. Choose to try again or exit")
	fmt.Println(strings.Repeat("=", 50))
}
