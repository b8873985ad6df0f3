package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"moodtune/internal/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete the cached Spotify token",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	cache, err := auth.DefaultTokenCache()
	if err != nil {
		return err
	}
	if err := cache.Delete(); err != nil {
		return fmt.Errorf("deleting cached token: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}
