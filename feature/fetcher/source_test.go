package fetcher

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event-state/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, routes map[string]func(w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		handler(w)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func jsonBody(body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func httpConfig(base string) Config {
	return Config{
		Source:         SourceHTTP,
		StateURL:       base + "/api/state",
		MappingsURL:    base + "/api/mappings",
		TimeoutSeconds: 2,
	}
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := newUpstream(t, map[string]func(w http.ResponseWriter){
		"/api/state":    jsonBody(`{"odds":"E1,S1,C1,1700000000000,TEAM_A,TEAM_B,ST1,P1@1:0"}`),
		"/api/mappings": jsonBody(`{"mappings":"S1:FOOTBALL;"}`),
	})
	src := NewHTTPSource(httpConfig(srv.URL))

	state, err := src.FetchState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "E1,S1,C1,1700000000000,TEAM_A,TEAM_B,ST1,P1@1:0", state)

	mappings, err := src.FetchMappings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "S1:FOOTBALL;", mappings)
}

func TestHTTPSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler func(w http.ResponseWriter)
		wantErr error
	}{
		{
			name:    "Server error",
			handler: func(w http.ResponseWriter) { w.WriteHeader(http.StatusInternalServerError) },
			wantErr: ErrUnexpectedStatus,
		},
		{
			name:    "Not JSON",
			handler: jsonBody(`<html>`),
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "Missing field",
			handler: jsonBody(`{"other":"x"}`),
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "Field not a string",
			handler: jsonBody(`{"odds":42}`),
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "Null field",
			handler: jsonBody(`{"odds":null}`),
			wantErr: ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, map[string]func(w http.ResponseWriter){"/api/state": tt.handler})
			src := NewHTTPSource(httpConfig(srv.URL))

			_, err := src.FetchState(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := newUpstream(t, nil)
	cfg := httpConfig(srv.URL)
	srv.Close()

	_, err := NewHTTPSource(cfg).FetchMappings(context.Background())
	assert.ErrorContains(t, err, "failed to fetch")
}

func TestStorageSource_Fetch(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "feeds", "state.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"odds":"E1,S1"}`)), nil)
	client.On("GetObject", mock.Anything, "feeds", "mappings.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"mappings":"S1:FOOTBALL"}`)), nil)

	src := NewStorageSource(client, "feeds", "state.json", "mappings.json")

	state, err := src.FetchState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "E1,S1", state)

	mappings, err := src.FetchMappings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "S1:FOOTBALL", mappings)

	client.AssertExpectations(t)
}

func TestStorageSource_Errors(t *testing.T) {
	t.Run("GetObject fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "feeds", "state.json", mock.Anything).Return(nil, assert.AnError)

		_, err := NewStorageSource(client, "feeds", "state.json", "mappings.json").FetchState(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Invalid payload", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "feeds", "mappings.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"mappings":[]}`)), nil)

		_, err := NewStorageSource(client, "feeds", "state.json", "mappings.json").FetchMappings(context.Background())
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestStorageSource_Check(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		err     error
		wantErr error
	}{
		{"Exists", true, nil, nil},
		{"Missing", false, nil, ErrBucketNotFound},
		{"Error", false, assert.AnError, assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("BucketExists", mock.Anything, "feeds").Return(tt.exists, tt.err)

			err := NewStorageSource(client, "feeds", "s", "m").Check(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Config{Source: SourceHTTP}, nil, "")
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)

	src, err = NewSource(Config{Source: SourceStorage}, new(mocks.Client), "feeds")
	require.NoError(t, err)
	assert.IsType(t, &StorageSource{}, src)

	_, err = NewSource(Config{Source: SourceStorage}, nil, "feeds")
	assert.Error(t, err)

	_, err = NewSource(Config{Source: "ftp"}, nil, "")
	assert.Error(t, err)
}

func TestDecodePayloads(t *testing.T) {
	state, err := DecodeState(strings.NewReader(`{"odds": "E1,S1"}`))
	require.NoError(t, err)
	assert.Equal(t, "E1,S1", state)

	mappings, err := DecodeMappings(strings.NewReader(`{"mappings": "S1:FOOTBALL"}`))
	require.NoError(t, err)
	assert.Equal(t, "S1:FOOTBALL", mappings)

	_, err = DecodeState(strings.NewReader(`{"mappings": "S1:FOOTBALL"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
