package events

import (
	"errors"

	"event-state/core/reconcile"

	"go.uber.org/zap"
)

// ErrEventNotFound is returned when an event is unknown or has been removed.
var ErrEventNotFound = errors.New("event not found")

// Store is the read side of the reconciliation engine.
type Store interface {
	ClientView() reconcile.ClientView
	VisibleEvents() []reconcile.Event
	Event(id string) (reconcile.Event, bool)
	Stats() reconcile.Stats
}

// Health is the payload of the health endpoint.
type Health struct {
	Status string          `json:"status"`
	Ready  bool            `json:"ready"`
	Stats  reconcile.Stats `json:"stats"`
}

// Service exposes the current event state to HTTP handlers.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new events service.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// State returns the client view of all visible events.
func (s *Service) State() reconcile.ClientView {
	return s.store.ClientView()
}

// StateEvent returns the client projection of one visible event.
func (s *Service) StateEvent(id string) (reconcile.ClientEvent, error) {
	event, ok := s.store.Event(id)
	if !ok || event.Removed {
		return reconcile.ClientEvent{}, ErrEventNotFound
	}

	view := reconcile.Project(map[string]*reconcile.Event{id: &event})
	return view[id], nil
}

// Events returns the visible canonical events sorted by id.
func (s *Service) Events() []reconcile.Event {
	return s.store.VisibleEvents()
}

// Health reports engine statistics. The service is ready once a snapshot has been merged.
func (s *Service) Health() Health {
	stats := s.store.Stats()
	return Health{
		Status: "ok",
		Ready:  stats.Merges > 0 && stats.Mappings > 0,
		Stats:  stats,
	}
}
