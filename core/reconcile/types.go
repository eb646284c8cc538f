package reconcile

import (
	"slices"
	"time"

	"event-state/core/feed"
)

// StatusRemoved is the status written to events that disappeared from the feed.
const StatusRemoved = "REMOVED"

// Event is the canonical, name-resolved state of one sport event.
type Event struct {
	// ID is the upstream sport event id.
	ID string `json:"id"`

	// Sport is the resolved sport name.
	Sport string `json:"sport"`

	// Competition is the resolved competition name.
	Competition string `json:"competition"`

	// StartTime is the ISO-8601 UTC start time, e.g. "2023-11-14T22:13:20.000Z".
	StartTime string `json:"startTime"`

	// HomeCompetitor is the resolved home competitor name.
	HomeCompetitor string `json:"homeCompetitor"`

	// AwayCompetitor is the resolved away competitor name.
	AwayCompetitor string `json:"awayCompetitor"`

	// Status is the resolved status name, or StatusRemoved after a soft delete.
	Status string `json:"status"`

	// Scores holds per-period scores in feed order.
	Scores []feed.Score `json:"scores"`

	// Removed is set when the event was absent from the latest merged snapshot.
	Removed bool `json:"removed,omitempty"`
}

func (e Event) clone() Event {
	e.Scores = slices.Clone(e.Scores)
	return e
}

// ChangeField names the field a Change refers to.
type ChangeField string

const (
	// FieldStatus is reported when the resolved status differs.
	FieldStatus ChangeField = "status"
	// FieldScores is reported when the ordered score list differs.
	FieldScores ChangeField = "scores"
)

// Change describes one field-level difference detected during a merge.
type Change struct {
	EventID string      `json:"event_id"`
	Field   ChangeField `json:"field"`
	Old     string      `json:"old"`
	New     string      `json:"new"`
}

// MergeResult summarises a single MergeBatch call.
type MergeResult struct {
	// Received is the number of records in the batch.
	Received int `json:"received"`

	// Created counts events seen for the first time.
	Created int `json:"created"`

	// Updated counts existing events with at least one changed field.
	Updated int `json:"updated"`

	// Unchanged counts existing events whose status and scores did not change.
	Unchanged int `json:"unchanged"`

	// Revived counts previously removed events that reappeared.
	Revived int `json:"revived"`

	// Removed counts events newly soft deleted by this batch.
	Removed int `json:"removed"`

	// Rejected counts records dropped for unresolved ids or an invalid start time.
	Rejected int `json:"rejected"`

	// Changes lists every status and score change in processing order.
	Changes []Change `json:"changes"`
}

// Stats is a point-in-time summary of the engine state.
type Stats struct {
	Events            int       `json:"events"`
	Visible           int       `json:"visible"`
	Removed           int       `json:"removed"`
	Mappings          int       `json:"mappings"`
	Merges            int       `json:"merges"`
	LastMerge         time.Time `json:"lastMerge"`
	LastMappingUpdate time.Time `json:"lastMappingUpdate"`
}
