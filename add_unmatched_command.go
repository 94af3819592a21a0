package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garry/songmatch/match"
	"github.com/garry/songmatch/songfile"
)

func newAddUnmatchedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-unmatched <playlist-id> <song-file>",
		Short: "Retry matching songs from a text file and add hits to a playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(cmd)
			if err != nil {
				return err
			}
			return app.addUnmatched(cmd.Context(), args[0], args[1])
		},
	}
}

// addUnmatched parses each line of the song file, skips placeholder
// titles, tries the query variants in order, adds every hit to the
// playlist and writes the remaining misses back to the file. When
// everything matched the file ends up empty.
func (app *Application) addUnmatched(ctx context.Context, playlistID, songFile string) error {
	lines, err := songfile.ReadLines(songFile)
	if err != nil {
		return err
	}

	var foundIDs []string
	var notFound []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		ref := match.ParseSongLine(line)

		// "Track 3" style titles carry nothing to search for
		if match.IsPlaceholderTitle(ref.Title) {
			colorWarning.Printf("Skipping track number: %s\n", line)
			continue
		}

		if trackID, found := app.spotifyClient.FindTrack(ctx, ref.Title, ref.Artists); found {
			colorSuccess.Printf("Found: %s\n", line)
			foundIDs = append(foundIDs, trackID)
		} else {
			colorWarning.Printf("Not found: %s\n", line)
			notFound = append(notFound, line)
		}
	}

	if len(foundIDs) > 0 {
		fmt.Printf("\nAdding %d tracks to playlist...\n", len(foundIDs))
		if err := app.spotifyClient.AddTracksToPlaylist(ctx, playlistID, foundIDs); err != nil {
			return err
		}
		colorSuccess.Println("✅ Successfully added tracks to playlist!")
	}

	if err := songfile.WriteLines(songFile, notFound); err != nil {
		return err
	}

	if len(notFound) > 0 {
		fmt.Printf("\n%d tracks could not be found and were written back to %s\n", len(notFound), songFile)
	} else {
		fmt.Println("\nAll tracks were found and added to the playlist. The song list is now empty.")
	}
	return nil
}
