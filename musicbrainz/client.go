// Package musicbrainz looks up MusicBrainz recording IDs for songs
// that could not be matched on the primary catalog, so the unmatched
// report can point at a canonical recording.
package musicbrainz

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client wraps the MusicBrainz API client
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// Recording represents a MusicBrainz recording
type Recording struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"title,attr"`
}

// Release represents a MusicBrainz release
type Release struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"title,attr"`
}

// Track represents a MusicBrainz track with recording and release info
type Track struct {
	Recording Recording `xml:"recording"`
	Release   Release   `xml:"release"`
}

// SearchResponse represents the response from MusicBrainz search API
type SearchResponse struct {
	TrackList struct {
		Tracks []Track `xml:"track"`
	} `xml:"track-list"`
}

// NewClient creates a new MusicBrainz client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: "songmatch/1.0 (https://github.com/garry/songmatch)",
		// MusicBrainz asks anonymous clients to stay at one request
		// per second.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// LookupRecordingID searches for a recording by artist and title and
// returns its MusicBrainz ID.
func (c *Client) LookupRecordingID(ctx context.Context, artist, title string) (string, error) {
	if artist == "" || title == "" {
		return "", fmt.Errorf("artist and title cannot be empty")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	// MusicBrainz API endpoint for searching recordings
	baseURL := "https://musicbrainz.org/ws/2/recording/"

	query := fmt.Sprintf("artist:\"%s\" AND recording:\"%s\"",
		strings.ReplaceAll(artist, "\"", "\\\""),
		strings.ReplaceAll(title, "\"", "\\\""))

	params := url.Values{}
	params.Add("query", query)
	params.Add("fmt", "xml")

	req, err := http.NewRequestWithContext(ctx, "GET", baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	// Set required headers for MusicBrainz API
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("MusicBrainz API returned status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp SearchResponse
	if err := xml.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return "", fmt.Errorf("failed to decode XML response: %w", err)
	}

	if len(searchResp.TrackList.Tracks) == 0 {
		return "", fmt.Errorf("no recordings found for artist: %s, title: %s", artist, title)
	}

	// Return the first track's recording ID
	return searchResp.TrackList.Tracks[0].Recording.ID, nil
}
