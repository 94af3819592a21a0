package match

import "strings"

const (
	// ArtistDelimiter separates title from artists in a song line, e.g.
	// "Bohemian Rhapsody by Queen".
	ArtistDelimiter = " by "

	// ArtistSeparator separates multiple artist names within the artist
	// portion of a song line.
	ArtistSeparator = " _ "
)

// SongReference is a locally-known song: a title and an ordered list of
// artist names. Immutable once parsed.
type SongReference struct {
	Title   string
	Artists []string
}

// Line renders the reference back into the text-file form it was parsed
// from.
func (r SongReference) Line() string {
	if len(r.Artists) == 0 {
		return r.Title
	}
	return r.Title + ArtistDelimiter + strings.Join(r.Artists, ArtistSeparator)
}

// ParseSongLine splits a raw text line into a SongReference. The split
// happens at the first occurrence of " by ", case-sensitively; a title
// like "Stand by Me by Ben E. King" therefore parses as title "Stand".
// That is deliberate: the files are written with the same convention,
// so first-occurrence splitting round-trips. A line without the
// delimiter is all title; a line with the delimiter but no artist text
// yields an empty artist list.
func ParseSongLine(line string) SongReference {
	title, artistText, found := strings.Cut(line, ArtistDelimiter)
	if !found {
		return SongReference{Title: strings.TrimSpace(line)}
	}

	ref := SongReference{Title: strings.TrimSpace(title)}
	artistText = strings.TrimSpace(artistText)
	if artistText == "" {
		return ref
	}

	for _, artist := range strings.Split(artistText, ArtistSeparator) {
		artist = strings.TrimSpace(artist)
		if artist != "" {
			ref.Artists = append(ref.Artists, artist)
		}
	}
	return ref
}
