package fetcher

import (
	"fmt"
	"time"
)

const (
	// SourceHTTP polls the upstream simulation API.
	SourceHTTP = "http"
	// SourceStorage reads recorded payloads from object storage.
	SourceStorage = "storage"
)

// Config holds configuration for the feed poller.
type Config struct {
	// Source selects where payloads come from (http, storage).
	Source string `mapstructure:"source" default:"http"`
	// StateURL is the endpoint returning {"odds": "..."}.
	StateURL string `mapstructure:"state_url" default:"http://localhost:8080/api/state"`
	// MappingsURL is the endpoint returning {"mappings": "..."}.
	MappingsURL string `mapstructure:"mappings_url" default:"http://localhost:8080/api/mappings"`
	// StateObject is the object holding the state payload when Source is storage.
	StateObject string `mapstructure:"state_object" default:"state.json"`
	// MappingsObject is the object holding the mappings payload when Source is storage.
	MappingsObject string `mapstructure:"mappings_object" default:"mappings.json"`
	// StateIntervalMs is the state poll period in milliseconds.
	StateIntervalMs int `mapstructure:"state_interval_ms" default:"1000"`
	// MappingsIntervalMs is the mappings poll period in milliseconds.
	MappingsIntervalMs int `mapstructure:"mappings_interval_ms" default:"60000"`
	// TimeoutSeconds bounds a single fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Validate checks the source kind and poll intervals.
func (c Config) Validate() error {
	switch c.Source {
	case SourceHTTP:
		if c.StateURL == "" || c.MappingsURL == "" {
			return fmt.Errorf("state_url and mappings_url are required for source %q", c.Source)
		}
	case SourceStorage:
		if c.StateObject == "" || c.MappingsObject == "" {
			return fmt.Errorf("state_object and mappings_object are required for source %q", c.Source)
		}
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}

	if c.StateIntervalMs <= 0 || c.MappingsIntervalMs <= 0 {
		return fmt.Errorf("poll intervals must be positive")
	}
	return nil
}

// StateInterval returns the state poll period.
func (c Config) StateInterval() time.Duration {
	return time.Duration(c.StateIntervalMs) * time.Millisecond
}

// MappingsInterval returns the mappings poll period.
func (c Config) MappingsInterval() time.Duration {
	return time.Duration(c.MappingsIntervalMs) * time.Millisecond
}

// Timeout returns the per-fetch timeout, defaulting to ten seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
