package config

import (
	"fmt"
	"reflect"
	"strings"

	"event-state/core/logger"
	"event-state/core/server"
	"event-state/core/storage"
	"event-state/feature/fetcher"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Feed holds configuration for the upstream feed poller.
	Feed fetcher.Config `mapstructure:"feed"`
	// Storage holds configuration for the object storage feed source.
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration from environment variables and a .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := config.Feed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid feed configuration: %w", err)
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key with its `default` tag,
// so that AutomaticEnv can find keys that have no explicit default.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
