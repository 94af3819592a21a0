package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garry/songmatch/match"
)

func newPrunePlaceholdersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune-placeholders <playlist-id>",
		Short: "Remove placeholder entries like \"Track 12\" from a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(cmd)
			if err != nil {
				return err
			}
			return app.prunePlaceholders(cmd.Context(), args[0])
		},
	}
}

// prunePlaceholders removes playlist entries whose title is only a
// generic track number. The classifier requires the whole title to be
// "track" plus an optional number, so real titles that merely contain
// the word survive.
func (app *Application) prunePlaceholders(ctx context.Context, playlistID string) error {
	fmt.Println("Fetching playlist tracks...")
	entries, err := app.spotifyClient.GetPlaylistEntries(ctx, playlistID)
	if err != nil {
		return err
	}

	var removeIDs []string
	for _, entry := range entries {
		if match.IsPlaceholderTitle(entry.Title) {
			colorWarning.Printf("Found track to remove: %s\n", entry.Title)
			removeIDs = append(removeIDs, entry.ID)
		}
	}

	if len(removeIDs) == 0 {
		fmt.Println("No placeholder tracks found.")
		return nil
	}

	fmt.Printf("Removing %d tracks...\n", len(removeIDs))
	if err := app.spotifyClient.RemoveTracksFromPlaylist(ctx, playlistID, removeIDs); err != nil {
		return err
	}

	colorSuccess.Println("✅ Successfully removed tracks from the playlist!")
	return nil
}
