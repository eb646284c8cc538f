package server_test

import (
	"testing"
	"time"

	"event-state/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		cfg  server.Config
		want string
	}{
		{"Port only", server.Config{Port: "3000"}, ":3000"},
		{"Host and port", server.Config{Host: "127.0.0.1", Port: "8080"}, "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Address())
		})
	}
}

func TestConfig_ShutdownTimeout(t *testing.T) {
	assert.Equal(t, 10*time.Second, server.Config{}.ShutdownTimeout())
	assert.Equal(t, 3*time.Second, server.Config{ShutdownTimeoutSeconds: 3}.ShutdownTimeout())
}
