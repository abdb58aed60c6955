// Package config provides configuration management for the Moru CLI.
//
// This file handles loading configuration from environment variables and .env files,
// and creating configured Moru SDK clients.
package config

import (
	"os"
	"strconv"

	moru "github.com/moru-ai/sdks"
	"github.com/moru-ai/sdks/cmd/moru/internal/utils"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey = "MORU_API_KEY"
	EnvAPIURL = "MORU_API_URL"
	EnvDebug  = "MORU_DEBUG"
)

// LoadClient loads configuration from environment and creates a Moru client
func LoadClient() (*moru.Client, error) {
	opts := []moru.ClientOption{moru.WithBaseURL(GetBaseURL())}
	if logger := utils.Logger(); logger != nil {
		opts = append(opts, moru.WithLogger(logger))
	}

	return moru.NewClient(GetAPIKey(), opts...)
}

// GetAPIKey returns the API key from environment
func GetAPIKey() string {
	godotenv.Load()
	return os.Getenv(EnvAPIKey)
}

// GetBaseURL returns the base URL from environment or default
func GetBaseURL() string {
	godotenv.Load()
	baseURL := os.Getenv(EnvAPIURL)
	if baseURL == "" {
		return moru.DefaultBaseURL
	}
	return baseURL
}

// IsDebug reports whether MORU_DEBUG is set to a true value
func IsDebug() bool {
	godotenv.Load()
	debug, _ := strconv.ParseBool(os.Getenv(EnvDebug))
	return debug
}
