package storage_test

import (
	"testing"

	"event-state/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"ValidConfig", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "feeds", Region: "us-east-1"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true}},
		{"ZeroTimeout", storage.Config{Endpoint: "localhost:9000", TimeoutSeconds: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClient_InvalidEndpoint(t *testing.T) {
	client, err := storage.NewClient(storage.Config{Endpoint: "bad endpoint/with/path"})
	assert.Error(t, err)
	assert.Nil(t, client)
}
