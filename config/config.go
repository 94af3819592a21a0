package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	Spotify SpotifyConfig
}

// SpotifyConfig holds Spotify API configuration
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Load loads configuration following the specified order:
// 1. Start with default values (SPOTIFY_REDIRECT_URI defaults to http://localhost:8080/callback)
// 2. Load from OS environment variables (only if they exist)
// 3. Load from .env file (only if it exists and values exist)
func Load() (*Config, error) {
	config := &Config{}

	config.initializeDefaults()
	config.loadFromOSEnv()
	config.loadFromEnvFile()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides
func LoadWithOverrides(overrides map[string]string) (*Config, error) {
	config := &Config{}

	config.initializeDefaults()
	config.loadFromOSEnv()
	config.loadFromEnvFile()
	config.applyOverrides(overrides)

	// Validate required configuration after all sources have been loaded
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// initializeDefaults sets up the initial configuration with default values
func (c *Config) initializeDefaults() {
	c.Spotify = SpotifyConfig{
		ClientID:     "",                               // Empty by default
		ClientSecret: "",                               // Empty by default
		RedirectURI:  "http://localhost:8080/callback", // Default value
	}
}

// loadFromOSEnv loads configuration from OS environment variables (only if they exist)
func (c *Config) loadFromOSEnv() {
	if value := os.Getenv("SPOTIFY_CLIENT_ID"); value != "" {
		c.Spotify.ClientID = value
	}
	if value := os.Getenv("SPOTIFY_CLIENT_SECRET"); value != "" {
		c.Spotify.ClientSecret = value
	}
	if value := os.Getenv("SPOTIFY_REDIRECT_URI"); value != "" {
		c.Spotify.RedirectURI = value
	}
}

// loadFromEnvFile loads configuration from .env file (only if it exists and values exist)
func (c *Config) loadFromEnvFile() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file doesn't exist, skip this step
		return
	}

	// Only replace if values exist and are not empty
	if value := os.Getenv("SPOTIFY_CLIENT_ID"); value != "" {
		c.Spotify.ClientID = value
	}
	if value := os.Getenv("SPOTIFY_CLIENT_SECRET"); value != "" {
		c.Spotify.ClientSecret = value
	}
	if value := os.Getenv("SPOTIFY_REDIRECT_URI"); value != "" {
		c.Spotify.RedirectURI = value
	}
}

// validate checks that all required configuration values are present
func (c *Config) validate() error {
	var missingFields []string

	if c.Spotify.ClientID == "" {
		missingFields = append(missingFields, "SPOTIFY_CLIENT_ID")
	}
	if c.Spotify.ClientSecret == "" {
		missingFields = append(missingFields, "SPOTIFY_CLIENT_SECRET")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required configuration values:\n%s\n\nSet these values via environment variables, .env file, or CLI flags", strings.Join(missingFields, "\n"))
	}

	return nil
}

// applyOverrides applies CLI flag overrides to the configuration (only if they exist)
func (c *Config) applyOverrides(overrides map[string]string) {
	for key, value := range overrides {
		// Only apply if the value is not empty
		if value == "" {
			continue
		}

		switch key {
		case "SPOTIFY_CLIENT_ID":
			c.Spotify.ClientID = value
		case "SPOTIFY_CLIENT_SECRET":
			c.Spotify.ClientSecret = value
		case "SPOTIFY_REDIRECT_URI":
			c.Spotify.RedirectURI = value
		}
	}
}
