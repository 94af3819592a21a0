package match

import "strings"

// ReferenceSet holds the normalized keys of songs already present in a
// target collection, e.g. the contents of a catalog playlist. Built
// once per operation and read-only afterward.
type ReferenceSet map[string]struct{}

// Add inserts a normalized key into the set.
func (s ReferenceSet) Add(key string) {
	s[key] = struct{}{}
}

// Contains reports whether a normalized key is in the set.
func (s ReferenceSet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// BuildReferenceSet normalizes each song reference into the same
// combined "title by artist" form the text files use and collects the
// keys. A playlist entry and a file line that name the same song
// therefore produce the same key.
func BuildReferenceSet(refs []SongReference) ReferenceSet {
	set := make(ReferenceSet, len(refs))
	for _, ref := range refs {
		set.Add(Normalize(ref.Title + ArtistDelimiter + strings.Join(ref.Artists, ArtistSeparator)))
	}
	return set
}

// DeduplicateLines removes lines whose normalized key has already been
// seen, keeping the first occurrence with its original text and
// relative order. Blank lines are not treated specially: the first one
// is kept, the rest deduplicate against it.
func DeduplicateLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		key := Normalize(line)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, line)
	}
	return kept
}

// PartitionAgainstReferenceSet splits lines into those not yet in refs
// and those already present, both in original order and trimmed. Blank
// lines are skipped entirely: they land in neither partition.
func PartitionAgainstReferenceSet(lines []string, refs ReferenceSet) (kept, removed []string) {
	kept = make([]string, 0, len(lines))
	removed = make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if refs.Contains(Normalize(line)) {
			removed = append(removed, line)
			continue
		}
		kept = append(kept, line)
	}
	return kept, removed
}

// FilterAgainstReferenceSet drops the lines whose normalized key is
// already in refs, returning the kept lines in order and the number
// removed. Blank lines are skipped entirely: neither kept nor counted.
func FilterAgainstReferenceSet(lines []string, refs ReferenceSet) ([]string, int) {
	kept, removed := PartitionAgainstReferenceSet(lines, refs)
	return kept, len(removed)
}
