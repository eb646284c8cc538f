package fetcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Source:             SourceHTTP,
		StateURL:           "http://localhost/api/state",
		MappingsURL:        "http://localhost/api/mappings",
		StateObject:        "state.json",
		MappingsObject:     "mappings.json",
		StateIntervalMs:    1000,
		MappingsIntervalMs: 60000,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid HTTP", func(c *Config) {}, false},
		{"Valid storage", func(c *Config) { c.Source = SourceStorage; c.StateURL = "" }, false},
		{"Unknown source", func(c *Config) { c.Source = "ftp" }, true},
		{"HTTP without URL", func(c *Config) { c.StateURL = "" }, true},
		{"Storage without object", func(c *Config) { c.Source = SourceStorage; c.MappingsObject = "" }, true},
		{"Zero state interval", func(c *Config) { c.StateIntervalMs = 0 }, true},
		{"Negative mappings interval", func(c *Config) { c.MappingsIntervalMs = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, time.Second, cfg.StateInterval())
	assert.Equal(t, time.Minute, cfg.MappingsInterval())
	assert.Equal(t, 10*time.Second, cfg.Timeout())

	cfg.TimeoutSeconds = 3
	assert.Equal(t, 3*time.Second, cfg.Timeout())
}
