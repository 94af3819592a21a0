package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/garry/songmatch/config"
	"github.com/garry/songmatch/musicbrainz"
	"github.com/garry/songmatch/spotify"
)

// Version information - set during build
var version = "dev"

// Application represents the main application state
type Application struct {
	config            *config.Config
	spotifyClient     *spotify.Client
	musicBrainzClient *musicbrainz.Client
}

// newApplication creates a new application instance with an
// authenticated Spotify client, applying any credential flags on top
// of the environment configuration. Commands that work purely on local
// files do not call this and run without credentials.
func newApplication(cmd *cobra.Command) (*Application, error) {
	cfg, err := config.LoadWithOverrides(configOverrides(cmd.Root().PersistentFlags()))
	if err != nil {
		return nil, err
	}

	spotifyClient, err := spotify.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spotify client: %w", err)
	}

	return &Application{
		config:            cfg,
		spotifyClient:     spotifyClient,
		musicBrainzClient: musicbrainz.NewClient(),
	}, nil
}

// configOverrides maps the root credential flags onto the
// configuration override keys. Unset flags yield empty values, which
// the configuration loader skips.
func configOverrides(flags *pflag.FlagSet) map[string]string {
	overrides := make(map[string]string)
	for flagName, configKey := range map[string]string{
		"client-id":     "SPOTIFY_CLIENT_ID",
		"client-secret": "SPOTIFY_CLIENT_SECRET",
		"redirect-uri":  "SPOTIFY_REDIRECT_URI",
	} {
		if value, err := flags.GetString(flagName); err == nil {
			overrides[configKey] = value
		}
	}
	return overrides
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "songmatch",
		Short:         "Match local song lists against the Spotify catalog",
		Long:          "songmatch builds Spotify playlists from local music directories and reconciles plain-text song lists against playlist contents.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("client-id", "", "Spotify client ID (overrides SPOTIFY_CLIENT_ID)")
	root.PersistentFlags().String("client-secret", "", "Spotify client secret (overrides SPOTIFY_CLIENT_SECRET)")
	root.PersistentFlags().String("redirect-uri", "", "Spotify redirect URI (overrides SPOTIFY_REDIRECT_URI)")

	root.AddCommand(
		newCreatePlaylistCommand(),
		newRemoveDuplicatesCommand(),
		newComparePlaylistCommand(),
		newAddUnmatchedCommand(),
		newPrunePlaceholdersCommand(),
	)

	return root
}

func main() {
	initializeColors()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
