package match

import "strings"

// English articles dropped from long titles for the loosest query
// variant.
var articles = map[string]bool{
	"the": true,
	"a":   true,
	"an":  true,
}

// GenerateQueries produces the ordered list of catalog search queries
// for a song, most specific first:
//
//  1. normalized title plus all normalized artists
//  2. normalized title alone
//  3. normalized title plus the first artist, when there are several
//  4. article-stripped title plus all artists, when the title has more
//     than two words and at least one word survives the filter
//
// The caller tries each query in order against the catalog and stops at
// the first hit. The result never contains duplicates or blank
// queries; for fully degenerate input it is empty.
func GenerateQueries(title string, artists []string) []string {
	cleanTitle := Normalize(title)

	cleanArtists := make([]string, 0, len(artists))
	for _, artist := range artists {
		if clean := Normalize(artist); clean != "" {
			cleanArtists = append(cleanArtists, clean)
		}
	}
	allArtists := strings.Join(cleanArtists, " ")

	candidates := []string{
		joinQuery(cleanTitle, allArtists),
		cleanTitle,
	}

	if len(cleanArtists) > 1 {
		candidates = append(candidates, joinQuery(cleanTitle, cleanArtists[0]))
	}

	if words := strings.Fields(cleanTitle); len(words) > 2 {
		kept := make([]string, 0, len(words))
		for _, word := range words {
			if !articles[word] {
				kept = append(kept, word)
			}
		}
		if len(kept) > 0 {
			candidates = append(candidates, joinQuery(strings.Join(kept, " "), allArtists))
		}
	}

	seen := make(map[string]bool, len(candidates))
	queries := make([]string, 0, len(candidates))
	for _, query := range candidates {
		if query == "" || seen[query] {
			continue
		}
		seen[query] = true
		queries = append(queries, query)
	}
	return queries
}

func joinQuery(parts ...string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}
