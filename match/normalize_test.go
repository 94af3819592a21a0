package match

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Bohemian Rhapsody", "bohemian rhapsody"},
		{"punctuation becomes space", "Don't Stop Me Now!", "don t stop me now"},
		{"featuring stripped", "Airplanes feat. Hayley Williams", "airplanes"},
		{"featuring without period", "Airplanes featuring Hayley Williams", "airplanes"},
		{"ft stripped", "Forgot About Dre ft. Eminem", "forgot about dre"},
		{"feat mid-word not stripped", "Featherweight", "featherweight"},
		{"whitespace collapsed", "  So   Much    Space  ", "so much space"},
		{"combined line", "Song A by X", "song a by x"},
		{"cyrillic preserved", "Интерстеллар", "интерстеллар"},
		{"empty input", "", ""},
		{"pure punctuation", "!!!...???", ""},
		{"whitespace only", "   \t  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Bohemian Rhapsody by Queen",
		"Airplanes feat. Hayley Williams",
		"  Weird -- Spacing!! ",
		"Интерстеллар",
		"",
		"!!!",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize is not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"track number and tags", "03-Song Title (Live) [HD].mp3", "Song Title"},
		{"plain filename", "Song Title.mp3", "Song Title"},
		{"dotted track number", "01. Song Title.flac", "Song Title"},
		{"hidden file prefix", "._01. Song Title.m4a", "Song Title"},
		{"sub-numbered track", "1.02 Song Title.mp3", "Song Title"},
		{"parenthetical only", "Song Title (Official Video).wav", "Song Title"},
		{"case preserved", "SONG Title.mp3", "SONG Title"},
		{"featuring kept", "Song feat Artist.mp3", "Song feat Artist"},
		{"no extension", "Song Title", "Song Title"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanFilename(tt.input); got != tt.expected {
				t.Errorf("CleanFilename(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsPlaceholderTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Track", true},
		{"track", true},
		{"Track 12", true},
		{"TRACK 7", true},
		{"  Track   3  ", true},
		{"Track-01", true},
		{"Track Star", false},
		{"Soundtrack 3", false},
		{"Bonus Track 7 Remix", false},
		{"Track 12 Demo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPlaceholderTitle(tt.input); got != tt.expected {
			t.Errorf("IsPlaceholderTitle(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
