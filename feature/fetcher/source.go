package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"event-state/core/storage"

	"github.com/minio/minio-go/v7"
)

const (
	stateField    = "odds"
	mappingsField = "mappings"
)

var (
	// ErrUnexpectedStatus is returned when the upstream answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrInvalidPayload is returned when a payload is not JSON or lacks its string field.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)

// Source retrieves raw feed text. Implementations validate the payload shape so callers only
// ever see the delimited text.
type Source interface {
	FetchMappings(ctx context.Context) (string, error)
	FetchState(ctx context.Context) (string, error)
}

// NewSource builds the Source selected by cfg.Source.
// client and bucket are only used for the storage source.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceHTTP:
		return NewHTTPSource(cfg), nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("storage source requires a storage client")
		}
		return NewStorageSource(client, bucket, cfg.StateObject, cfg.MappingsObject), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// HTTPSource fetches payloads from the upstream HTTP API.
type HTTPSource struct {
	client      *http.Client
	stateURL    string
	mappingsURL string
}

// NewHTTPSource creates an HTTP source with timeouts taken from cfg.
func NewHTTPSource(cfg Config) *HTTPSource {
	timeout := cfg.Timeout()
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}

	return &HTTPSource{
		client:      &http.Client{Transport: transport, Timeout: timeout},
		stateURL:    cfg.StateURL,
		mappingsURL: cfg.MappingsURL,
	}
}

// FetchMappings returns the "mappings" field of the mappings endpoint.
func (s *HTTPSource) FetchMappings(ctx context.Context) (string, error) {
	return s.fetch(ctx, s.mappingsURL, mappingsField)
}

// FetchState returns the "odds" field of the state endpoint.
func (s *HTTPSource) FetchState(ctx context.Context) (string, error) {
	return s.fetch(ctx, s.stateURL, stateField)
}

func (s *HTTPSource) fetch(ctx context.Context, url, field string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s from %s", ErrUnexpectedStatus, resp.Status, url)
	}

	value, err := decodeField(resp.Body, field)
	if err != nil {
		return "", fmt.Errorf("%s: %w", url, err)
	}
	return value, nil
}

// StorageSource reads recorded payloads from object storage.
type StorageSource struct {
	client         storage.Client
	bucket         string
	stateObject    string
	mappingsObject string
}

// NewStorageSource creates a source over bucket.
func NewStorageSource(client storage.Client, bucket, stateObject, mappingsObject string) *StorageSource {
	return &StorageSource{
		client:         client,
		bucket:         bucket,
		stateObject:    stateObject,
		mappingsObject: mappingsObject,
	}
}

// Check verifies the bucket is reachable.
func (s *StorageSource) Check(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, s.bucket)
	}
	return nil
}

// FetchMappings returns the "mappings" field of the mappings object.
func (s *StorageSource) FetchMappings(ctx context.Context) (string, error) {
	return s.fetch(ctx, s.mappingsObject, mappingsField)
}

// FetchState returns the "odds" field of the state object.
func (s *StorageSource) FetchState(ctx context.Context) (string, error) {
	return s.fetch(ctx, s.stateObject, stateField)
}

func (s *StorageSource) fetch(ctx context.Context, object, field string) (string, error) {
	rc, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get %s/%s: %w", s.bucket, object, err)
	}
	defer rc.Close()

	value, err := decodeField(rc, field)
	if err != nil {
		return "", fmt.Errorf("%s/%s: %w", s.bucket, object, err)
	}
	return value, nil
}

// DecodeState extracts the feed text from a state payload such as {"odds": "..."}.
func DecodeState(r io.Reader) (string, error) {
	return decodeField(r, stateField)
}

// DecodeMappings extracts the mapping text from a payload such as {"mappings": "..."}.
func DecodeMappings(r io.Reader) (string, error) {
	return decodeField(r, mappingsField)
}

// decodeField reads a JSON object and returns its string field.
func decodeField(r io.Reader, field string) (string, error) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	raw, ok := body[field]
	if !ok || string(raw) == "null" {
		return "", fmt.Errorf("%w: %q field is missing", ErrInvalidPayload, field)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%w: %q field is not a string", ErrInvalidPayload, field)
	}
	return value, nil
}
