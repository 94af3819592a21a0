// Package library scans a local music directory tree into song
// references ready for catalog matching.
package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/garry/songmatch/match"
)

// LocalTrack is one audio file found in the music directory, with the
// artist inferred from its position in the tree and the title cleaned
// from its filename.
type LocalTrack struct {
	Path   string
	Title  string
	Artist string
}

var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".wav":  true,
	".flac": true,
}

// Scan walks root and returns its audio files as LocalTracks, in walk
// order. Layout conventions:
//
//   - The first directory level under root is the artist name, so
//     files directly in root have no artist and are skipped.
//   - An iTunes export is handled specially: directories named
//     "iTunes" are skipped unless the path runs through "iTunes
//     Music", in which case the file's parent directory is the artist.
func Scan(root string) ([]LocalTrack, error) {
	var tracks []LocalTrack

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !audioExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		dir := filepath.Dir(path)
		rel, err := filepath.Rel(root, dir)
		if err != nil || rel == "." {
			return nil
		}

		lowerDir := strings.ToLower(dir)
		inITunesMusic := strings.Contains(lowerDir, "itunes music")
		if strings.EqualFold(filepath.Base(dir), "itunes") && !inITunesMusic {
			return nil
		}

		artist := strings.Split(rel, string(filepath.Separator))[0]
		if inITunesMusic {
			artist = filepath.Base(dir)
		}

		tracks = append(tracks, LocalTrack{
			Path:   path,
			Title:  match.CleanFilename(filepath.Base(path)),
			Artist: artist,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return tracks, nil
}
