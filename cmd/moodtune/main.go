// Command moodtune watches your webcam, infers your mood, and opens a
// matching Spotify playlist in the browser.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"moodtune/internal/config"
	"moodtune/internal/logging"
)

var (
	settingsPath string
	settings     config.Settings
	logger       zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "moodtune",
	Short: "Mood-based Spotify playlist recommender",
	Long: "moodtune watches the webcam, infers a coarse mood from your facial\n" +
		"expression, and opens a matching public Spotify playlist in your browser.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "",
		"path to settings.toml (default ~/.config/moodtune/settings.toml)")
	rootCmd.AddCommand(runCmd, recommendCmd, moodsCmd, logoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings loads tunables and sets up logging; called by commands that
// need either.
func loadSettings() error {
	path := settingsPath
	if path == "" {
		var err error
		path, err = config.DefaultSettingsPath()
		if err != nil {
			return err
		}
	}

	var err error
	settings, err = config.LoadSettings(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logger = logging.Setup(settings.LogLevel)
	return nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
