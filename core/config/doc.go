// Package config provides configuration management for the event-state service.
//
// It utilizes Viper for loading configuration from environment variables and an optional .env
// file. Defaults live next to each field as `default` struct tags.
//
// # Configuration Structure
//
//   - Server: HTTP listen address and shutdown timeout
//   - Log: Logging level and format
//   - Feed: Upstream source kind, endpoints, object names and poll intervals
//   - Storage: S3/MinIO credentials and bucket, used when Feed.Source is "storage"
//
// Nested keys map to upper-case environment variables with underscores, e.g. feed.state_url is
// read from FEED_STATE_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Feed.StateURL)
package config
