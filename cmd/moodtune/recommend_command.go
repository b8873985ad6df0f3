package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moodtune/internal/app"
	"moodtune/internal/browser"
	"moodtune/internal/config"
	"moodtune/internal/mood"
	"moodtune/internal/playlist"
)

var (
	recommendFeatured  bool
	recommendNoBrowser bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [mood]",
	Short: "Recommend a playlist without using the camera",
	Long: "Recommend a playlist for the given mood directly, skipping detection.\n" +
		"With --featured the pick comes from Spotify's featured playlists instead.",
	Args: cobra.MaximumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendFeatured, "featured", false,
		"pick from Spotify's featured playlists instead of keyword search")
	recommendCmd.Flags().BoolVar(&recommendNoBrowser, "no-browser", false,
		"print the recommendation without opening the browser")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if !recommendFeatured && len(args) == 0 {
		return fmt.Errorf("a mood is required unless --featured is set; one of %v", mood.All())
	}

	if err := loadSettings(); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	client, err := app.Connect(ctx, logger)
	if err != nil {
		return err
	}

	rec := playlist.New(client, playlist.Config{
		Market: settings.Market,
		Limit:  settings.SearchLimit,
	}, logger)

	var (
		cand     playlist.Candidate
		moodName = "featured"
	)

	if recommendFeatured {
		cands, err := rec.Featured(ctx)
		if err != nil {
			return err
		}
		cand, err = playlist.Pick(cands)
		if err != nil {
			return noRecommendation(err)
		}
	} else {
		label, err := mood.Parse(args[0])
		if err != nil {
			return fmt.Errorf("%w; one of %v", err, mood.All())
		}
		moodName = string(label)

		cand, err = rec.Recommend(ctx, config.KeywordsFor(label))
		if err != nil {
			return noRecommendation(err)
		}
	}

	app.PrintRecommendation(moodName, cand)

	if recommendNoBrowser {
		return nil
	}
	if err := browser.OpenPlaylist(cand.URL); err != nil {
		logger.Warn().Err(err).Msg("failed to open playlist in browser")
	}
	return nil
}

// noRecommendation turns playlist exhaustion into a friendly message; any
// other error propagates.
func noRecommendation(err error) error {
	if errors.Is(err, playlist.ErrNoPlaylists) {
		fmt.Println("No playlist recommendation this time, sorry.")
		return nil
	}
	return err
}
