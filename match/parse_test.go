package match

import (
	"reflect"
	"testing"
)

func TestParseSongLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected SongReference
	}{
		{
			name:     "title and single artist",
			line:     "Bohemian Rhapsody by Queen",
			expected: SongReference{Title: "Bohemian Rhapsody", Artists: []string{"Queen"}},
		},
		{
			name:     "multiple artists",
			line:     "Airplanes by B.o.B _ Hayley Williams",
			expected: SongReference{Title: "Airplanes", Artists: []string{"B.o.B", "Hayley Williams"}},
		},
		{
			name:     "no delimiter",
			line:     "Интерстеллар",
			expected: SongReference{Title: "Интерстеллар"},
		},
		{
			name:     "no delimiter with surrounding whitespace",
			line:     "  Instrumental  ",
			expected: SongReference{Title: "Instrumental"},
		},
		{
			name:     "delimiter but empty artist text",
			line:     "Nameless by ",
			expected: SongReference{Title: "Nameless"},
		},
		{
			name: "first delimiter occurrence wins",
			line: "Stand by Me by Ben E. King",
			expected: SongReference{
				Title:   "Stand",
				Artists: []string{"Me by Ben E. King"},
			},
		},
		{
			name:     "empty line",
			line:     "",
			expected: SongReference{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSongLine(tt.line)
			if got.Title != tt.expected.Title {
				t.Errorf("ParseSongLine(%q).Title = %q, expected %q", tt.line, got.Title, tt.expected.Title)
			}
			if !reflect.DeepEqual(got.Artists, tt.expected.Artists) {
				t.Errorf("ParseSongLine(%q).Artists = %v, expected %v", tt.line, got.Artists, tt.expected.Artists)
			}
		})
	}
}

func TestSongReferenceLine(t *testing.T) {
	tests := []struct {
		ref      SongReference
		expected string
	}{
		{SongReference{Title: "Bohemian Rhapsody", Artists: []string{"Queen"}}, "Bohemian Rhapsody by Queen"},
		{SongReference{Title: "Airplanes", Artists: []string{"B.o.B", "Hayley Williams"}}, "Airplanes by B.o.B _ Hayley Williams"},
		{SongReference{Title: "Instrumental"}, "Instrumental"},
	}

	for _, tt := range tests {
		if got := tt.ref.Line(); got != tt.expected {
			t.Errorf("Line() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestParseSongLineRoundTrip(t *testing.T) {
	lines := []string{
		"Bohemian Rhapsody by Queen",
		"Airplanes by B.o.B _ Hayley Williams",
		"Instrumental",
	}

	for _, line := range lines {
		if got := ParseSongLine(line).Line(); got != line {
			t.Errorf("round trip of %q produced %q", line, got)
		}
	}
}
