// Package match contains the pure matching and normalization core:
// parsing free-text song lines, cleaning titles and filenames for
// catalog search, generating fallback search queries, and reconciling
// song lists against a set of known tracks. Nothing in this package
// performs I/O.
package match

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Truncates a title at a featuring credit; everything from the
	// marker word onward is discarded.
	featuringRe = regexp.MustCompile(`\b(feat|featuring|ft)\b.*$`)

	// Anything that is not a letter, digit, underscore or whitespace
	// becomes a space.
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)

	// Leading track-number prefixes like "03-", "1.02 " or "12 ".
	trackNumberRe = regexp.MustCompile(`^\d+[-.]?\d*\s*`)

	// Parenthesized and bracketed tags like "(Live)" or "[HD]".
	parenthesesRe = regexp.MustCompile(`\([^)]*\)`)
	bracketsRe    = regexp.MustCompile(`\[[^\]]*\]`)

	// A placeholder title is the word "track" optionally followed by a
	// number, and nothing else.
	placeholderRe = regexp.MustCompile(`^track( \d+)?$`)
)

// Normalize produces the canonical form of a song reference used both
// as a search string and as the key for equality comparison: NFC fold,
// lowercase, featuring credit stripped, punctuation replaced with
// spaces, whitespace collapsed, trimmed. It is total and idempotent;
// two references name the same song iff their normalized forms are
// equal.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)
	text = featuringRe.ReplaceAllString(text, "")
	return scrub(text)
}

// CleanFilename strips the file-specific artifacts from an audio
// filename so it can be used as a song title: extension, hidden-file
// prefix, leading track number, parenthesized and bracketed tags.
// Unlike Normalize it preserves case and featuring credits, since the
// result is shown to the user and fed through Normalize later.
func CleanFilename(name string) string {
	name = norm.NFC.String(name)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ReplaceAll(name, "._", "")
	name = trackNumberRe.ReplaceAllString(name, "")
	name = parenthesesRe.ReplaceAllString(name, "")
	name = bracketsRe.ReplaceAllString(name, "")
	return scrub(name)
}

// IsPlaceholderTitle reports whether a title is a generic rip artifact
// like "Track" or "Track 12" rather than a real song name. Such
// entries carry no searchable information and are skipped or removed.
func IsPlaceholderTitle(title string) bool {
	return placeholderRe.MatchString(scrub(strings.ToLower(title)))
}

// scrub replaces punctuation with spaces, collapses whitespace and
// trims. Shared tail of the normalization pipelines.
func scrub(text string) string {
	text = punctuationRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
