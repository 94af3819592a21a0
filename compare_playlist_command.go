package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garry/songmatch/match"
	"github.com/garry/songmatch/songfile"
)

func newComparePlaylistCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare-playlist <playlist-id> <song-file>",
		Short: "Remove songs already present in a playlist from a song list file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(cmd)
			if err != nil {
				return err
			}
			return app.comparePlaylist(cmd.Context(), args[0], args[1])
		},
	}
}

// comparePlaylist builds a reference set from the playlist contents and
// rewrites the song file without the lines that are already present.
func (app *Application) comparePlaylist(ctx context.Context, playlistID, songFile string) error {
	entries, err := app.spotifyClient.GetPlaylistEntries(ctx, playlistID)
	if err != nil {
		return err
	}

	refs := make([]match.SongReference, 0, len(entries))
	for _, entry := range entries {
		refs = append(refs, entry.Reference())
	}
	referenceSet := match.BuildReferenceSet(refs)

	lines, err := songfile.ReadLines(songFile)
	if err != nil {
		return err
	}

	kept, removed := match.PartitionAgainstReferenceSet(lines, referenceSet)
	for _, line := range removed {
		colorWarning.Printf("Removing: %s\n", line)
	}

	if err := songfile.WriteLines(songFile, kept); err != nil {
		return err
	}

	fmt.Printf("\nRemoved %d duplicate songs from %s\n", len(removed), songFile)
	fmt.Printf("Kept %d unique songs\n", len(kept))
	return nil
}
