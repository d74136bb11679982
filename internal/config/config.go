// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() for defaults and Load(ctx) for layered loading.
// - External errors are wrapped via this package's error helpers.
package config

import (
	"time"
)

// Default endpoint for the upstream medals page with embedded JSON data.
const defaultMedalsURL = "https://www.olympics.com/en/milano-cortina-2026/medals"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MedalsURL is the upstream results page to scrape.
	MedalsURL string `koanf:"medals_url"`

	// FetchTimeoutS bounds a single upstream fetch, in seconds.
	FetchTimeoutS int `koanf:"fetch_timeout_s"`

	// CacheTTLS is the snapshot cache lifetime, in seconds.
	CacheTTLS int `koanf:"cache_ttl_s"`

	// PollIntervalS is the background refresh/finalization interval, in seconds.
	PollIntervalS int `koanf:"poll_interval_s"`

	// PollerEnabled toggles the background result poller.
	PollerEnabled bool `koanf:"poller_enabled"`

	// MaxLeaderboardLimit caps GET /leaderboard result size.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// MaxRootingEvents caps remaining-event lists in rooting responses.
	MaxRootingEvents int `koanf:"max_rooting_events"`

	// Timezone is the schedule-local zone for urgency and completeness checks.
	Timezone string `koanf:"timezone"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		MedalsURL:           defaultMedalsURL,
		FetchTimeoutS:       20,
		CacheTTLS:           600,
		PollIntervalS:       600,
		PollerEnabled:       true,
		MaxLeaderboardLimit: 100,
		MaxRootingEvents:    10,
		Timezone:            "Europe/Rome",
	}
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutS) * time.Second
}

// CacheTTL returns the snapshot cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLS) * time.Second
}

// PollInterval returns the poller interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalS) * time.Second
}
