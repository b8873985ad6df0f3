package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moodtune/internal/config"
	"moodtune/internal/mood"
)

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List the supported moods and their search keywords",
	RunE:  runMoods,
}

func runMoods(cmd *cobra.Command, args []string) error {
	for _, l := range mood.All() {
		fmt.Printf("%-9s %s\n", l, strings.Join(config.KeywordsFor(l), ", "))
	}
	return nil
}
