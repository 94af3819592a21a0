package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garry/songmatch/library"
	"github.com/garry/songmatch/songfile"
)

func newCreatePlaylistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-playlist <directory> <playlist-name>",
		Short: "Create a Spotify playlist from local music files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unmatchedFile, _ := cmd.Flags().GetString("unmatched-file")

			app, err := newApplication(cmd)
			if err != nil {
				return err
			}
			return app.createPlaylist(cmd.Context(), args[0], args[1], unmatchedFile)
		},
	}

	cmd.Flags().String("unmatched-file", "unmatched_songs.txt", "File to write songs that could not be matched")

	return cmd
}

// createPlaylist scans a music directory, matches each file against the
// catalog, and builds a new playlist from the hits. Songs without a
// match are written to the unmatched file in the "Title by Artist" line
// form, ready for a later add-unmatched run.
func (app *Application) createPlaylist(ctx context.Context, directory, playlistName, unmatchedFile string) error {
	tracks, err := library.Scan(directory)
	if err != nil {
		return err
	}
	fmt.Printf("🎵 Found %d audio files in %s\n\n", len(tracks), directory)

	playlistID, err := app.spotifyClient.CreatePlaylist(ctx, playlistName)
	if err != nil {
		return err
	}

	var trackIDs []string
	var unmatched []library.LocalTrack

	for _, track := range tracks {
		trackID, found := app.spotifyClient.FindTrack(ctx, track.Title, []string{track.Artist})
		if found {
			colorSuccess.Printf("Found match: %s by %s\n", track.Title, track.Artist)
			trackIDs = append(trackIDs, trackID)
		} else {
			colorWarning.Printf("No match found for: %s by %s\n", track.Title, track.Artist)
			unmatched = append(unmatched, track)
		}
	}

	if len(trackIDs) > 0 {
		if err := app.spotifyClient.AddTracksToPlaylist(ctx, playlistID, trackIDs); err != nil {
			return err
		}
	}

	if len(unmatched) > 0 {
		if err := app.writeUnmatchedReport(ctx, unmatched, unmatchedFile); err != nil {
			return err
		}
	}

	fmt.Printf("\n✅ Created playlist %q with %d tracks\n", playlistName, len(trackIDs))
	return nil
}

// writeUnmatchedReport writes the unmatched songs file and, where
// possible, prints a MusicBrainz recording link for each miss to help
// manual resolution.
func (app *Application) writeUnmatchedReport(ctx context.Context, unmatched []library.LocalTrack, path string) error {
	fmt.Println("\n🔍 Looking up MusicBrainz recordings for unmatched songs...")

	lines := make([]string, 0, len(unmatched))
	for _, track := range unmatched {
		lines = append(lines, fmt.Sprintf("%s by %s", track.Title, track.Artist))

		recordingID, err := app.musicBrainzClient.LookupRecordingID(ctx, track.Artist, track.Title)
		if err != nil || recordingID == "" {
			continue
		}
		colorInfo.Printf("  %s by %s: https://musicbrainz.org/recording/%s\n", track.Title, track.Artist, recordingID)
	}

	if err := songfile.WriteLines(path, lines); err != nil {
		return err
	}

	fmt.Printf("\nWrote %d unmatched songs to %s\n", len(lines), path)
	return nil
}
