// Package spotify wraps the Spotify Web API as the remote catalog
// collaborator: searching for tracks, reading playlists, and mutating
// playlist contents.
package spotify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/garry/songmatch/config"
	"github.com/garry/songmatch/match"
)

const (
	// Spotify caps playlist add/remove operations at 100 tracks per
	// request.
	maxBatchSize = 100

	// Playlist pages are fetched 100 tracks at a time.
	pageSize = 100
)

// Client wraps the Spotify API client
type Client struct {
	client  *spotify.Client
	config  *config.Config
	limiter *rate.Limiter

	// search performs a single catalog query. It defaults to
	// SearchTrack and exists so the query fallback loop can be
	// exercised against a fake catalog.
	search func(ctx context.Context, query string) (string, error)
}

// PlaylistEntry is one track of a playlist as the matching core sees
// it: an opaque catalog ID plus title and artist names.
type PlaylistEntry struct {
	ID      string
	Title   string
	Artists []string
}

// Reference converts the entry into a song reference for key building.
func (e PlaylistEntry) Reference() match.SongReference {
	return match.SongReference{Title: e.Title, Artists: e.Artists}
}

// NewClient creates a new Spotify client with authentication
func NewClient(cfg *config.Config) (*Client, error) {
	auth := spotifyauth.New(
		spotifyauth.WithRedirectURL(cfg.Spotify.RedirectURI),
		spotifyauth.WithClientID(cfg.Spotify.ClientID),
		spotifyauth.WithClientSecret(cfg.Spotify.ClientSecret),
		spotifyauth.WithScopes(
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistModifyPublic,
			spotifyauth.ScopePlaylistModifyPrivate,
		),
	)

	// For CLI/cronjob usage, we'll use the client credentials flow
	// This is simpler than authorization code flow for automated tools
	ctx := context.Background()

	token, err := auth.Exchange(ctx, "", oauth2.SetAuthURLParam("grant_type", "client_credentials"))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)

	client := &Client{
		client: spotify.New(httpClient),
		config: cfg,
		// One request per half second keeps well under the API's rate
		// limits for sequential matching runs.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
	client.search = client.SearchTrack
	return client, nil
}

// SearchTrack searches the catalog for a single query string and
// returns the best matching track ID, or empty when nothing was found.
func (c *Client) SearchTrack(ctx context.Context, query string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	results, err := c.client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(1))
	if err != nil {
		return "", fmt.Errorf("search for %q failed: %w", query, err)
	}

	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		return "", nil
	}
	return string(results.Tracks.Tracks[0].ID), nil
}

// FindTrack tries each generated query variant in order and returns the
// first hit. Search errors count as "no match" for that variant; the
// remaining variants are still tried.
func (c *Client) FindTrack(ctx context.Context, title string, artists []string) (string, bool) {
	for _, query := range match.GenerateQueries(title, artists) {
		trackID, err := c.search(ctx, query)
		if err != nil {
			log.Printf("⚠️  Search error for %q: %v", query, err)
			continue
		}
		if trackID != "" {
			return trackID, true
		}
	}
	return "", false
}

// GetPlaylistEntries fetches all tracks from a playlist as a single
// flattened sequence, paginating under the hood.
func (c *Client) GetPlaylistEntries(ctx context.Context, playlistID string) ([]PlaylistEntry, error) {
	var entries []PlaylistEntry
	page := 1

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		playlistTracks, err := c.client.GetPlaylistTracks(ctx, spotify.ID(playlistID), spotify.Offset((page-1)*pageSize), spotify.Limit(pageSize))
		if err != nil {
			return nil, fmt.Errorf("failed to get playlist tracks (page %d): %w", page, err)
		}

		for _, item := range playlistTracks.Tracks {
			track := item.Track
			// Unavailable or local-only entries have no catalog ID
			if track.ID == "" {
				continue
			}
			entries = append(entries, convertTrackToEntry(track))
		}

		if len(playlistTracks.Tracks) < pageSize {
			break
		}
		page++
	}

	return entries, nil
}

// convertTrackToEntry converts a Spotify track to our PlaylistEntry struct
func convertTrackToEntry(track spotify.FullTrack) PlaylistEntry {
	artists := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}

	return PlaylistEntry{
		ID:      string(track.ID),
		Title:   track.Name,
		Artists: artists,
	}
}

// CreatePlaylist creates a new playlist for the current user and
// returns its ID.
func (c *Client) CreatePlaylist(ctx context.Context, name string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	user, err := c.client.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	playlist, err := c.client.CreatePlaylistForUser(ctx, user.ID, name, "", false, false)
	if err != nil {
		return "", fmt.Errorf("failed to create playlist %q: %w", name, err)
	}

	return string(playlist.ID), nil
}

// AddTracksToPlaylist adds tracks to a playlist in chunks of at most
// 100, the API's per-request maximum.
func (c *Client) AddTracksToPlaylist(ctx context.Context, playlistID string, trackIDs []string) error {
	for _, chunk := range chunkTrackIDs(trackIDs, maxBatchSize) {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := c.client.AddTracksToPlaylist(ctx, spotify.ID(playlistID), chunk...); err != nil {
			return fmt.Errorf("failed to add tracks to playlist %s: %w", playlistID, err)
		}
	}
	return nil
}

// RemoveTracksFromPlaylist removes tracks from a playlist in chunks of
// at most 100.
func (c *Client) RemoveTracksFromPlaylist(ctx context.Context, playlistID string, trackIDs []string) error {
	for _, chunk := range chunkTrackIDs(trackIDs, maxBatchSize) {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := c.client.RemoveTracksFromPlaylist(ctx, spotify.ID(playlistID), chunk...); err != nil {
			return fmt.Errorf("failed to remove tracks from playlist %s: %w", playlistID, err)
		}
	}
	return nil
}

// chunkTrackIDs splits track IDs into batches of at most size.
func chunkTrackIDs(trackIDs []string, size int) [][]spotify.ID {
	var chunks [][]spotify.ID
	for start := 0; start < len(trackIDs); start += size {
		end := start + size
		if end > len(trackIDs) {
			end = len(trackIDs)
		}
		chunk := make([]spotify.ID, 0, end-start)
		for _, id := range trackIDs[start:end] {
			chunk = append(chunk, spotify.ID(id))
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
