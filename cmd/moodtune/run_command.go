package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"moodtune/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive camera loop",
	Long: "Open the webcam, wait for a stable mood, and recommend a playlist.\n" +
		"Press 'q' in the preview window to cancel a detection cycle.",
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := loadSettings(); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	a, err := app.New(ctx, settings, logger)
	if err != nil {
		return err
	}

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
