package reconcile

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"event-state/core/feed"
	"event-state/core/mapping"

	"go.uber.org/zap"
)

// isoLayout matches JavaScript's Date.prototype.toISOString output.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// maxEpochMillis is the largest instant a JavaScript Date can represent.
const maxEpochMillis = 8.64e15

// Engine holds the canonical event set and the mapping table used to resolve it.
type Engine struct {
	mu sync.RWMutex

	events   map[string]*Event
	mappings mapping.Table

	merges            int
	lastMerge         time.Time
	lastMappingUpdate time.Time

	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates an engine with an empty event set and mapping table.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		events:   make(map[string]*Event),
		mappings: mapping.Table{},
		logger:   logger,
		now:      time.Now,
	}
}

// UpdateMappings replaces the mapping table used by subsequent merges.
// Events already stored keep the names they were resolved with.
func (e *Engine) UpdateMappings(table mapping.Table) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mappings = table.Clone()
	e.lastMappingUpdate = e.now()
	e.logger.Info("Mappings updated", zap.Int("entries", len(table)))
}

// HasMappings reports whether a non-empty mapping table has been loaded.
func (e *Engine) HasMappings() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.mappings) > 0
}

// MergeBatch reconciles a complete feed snapshot into the event set.
// Records are applied in order; the removal sweep runs after every record has been processed.
func (e *Engine) MergeBatch(records []feed.Record) MergeResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := MergeResult{
		Received: len(records),
		Changes:  []Change{},
	}

	seen := make(map[string]struct{}, len(records))
	resolver := mapping.NewResolver(e.mappings, e.logger)

	for _, record := range records {
		seen[record.SportEventID] = struct{}{}

		resolved, ok := e.resolve(resolver, record)
		if !ok {
			result.Rejected++
			continue
		}

		existing, exists := e.events[record.SportEventID]
		if !exists {
			e.events[resolved.ID] = &resolved
			result.Created++
			continue
		}

		changes := diff(existing, &resolved)
		for _, c := range changes {
			e.logger.Info("Event changed",
				zap.String("event_id", c.EventID),
				zap.String("field", string(c.Field)),
				zap.String("old", c.Old),
				zap.String("new", c.New),
			)
		}
		result.Changes = append(result.Changes, changes...)

		if existing.Removed {
			result.Revived++
			e.logger.Info("Event reappeared", zap.String("event_id", resolved.ID))
		}
		if len(changes) > 0 {
			result.Updated++
		} else {
			result.Unchanged++
		}

		e.events[resolved.ID] = &resolved
	}

	for id, event := range e.events {
		if _, ok := seen[id]; ok || event.Removed {
			continue
		}
		event.Removed = true
		event.Status = StatusRemoved
		result.Removed++
		e.logger.Info("Event removed", zap.String("event_id", id))
	}

	e.merges++
	e.lastMerge = e.now()

	return result
}

// resolve turns a raw record into a canonical event.
// Every identifier is resolved before giving up so that all misses are logged.
func (e *Engine) resolve(resolver *mapping.Resolver, record feed.Record) (Event, bool) {
	sport, sportOK := resolver.Resolve(record.SportID)
	competition, competitionOK := resolver.Resolve(record.CompetitionID)
	home, homeOK := resolver.Resolve(record.HomeCompetitorID)
	away, awayOK := resolver.Resolve(record.AwayCompetitorID)
	status, statusOK := resolver.Resolve(record.StatusID)

	if !sportOK || !competitionOK || !homeOK || !awayOK || !statusOK {
		e.logger.Warn("Skipping event due to missing mappings", zap.String("event_id", record.SportEventID))
		return Event{}, false
	}

	startTime, ok := parseStartTime(record.StartTime)
	if !ok {
		e.logger.Warn("Skipping event due to invalid start time",
			zap.String("event_id", record.SportEventID),
			zap.String("start_time", record.StartTime),
		)
		return Event{}, false
	}

	scores := slices.Clone(record.Scores)
	if scores == nil {
		scores = []feed.Score{}
	}

	return Event{
		ID:             record.SportEventID,
		Sport:          sport,
		Competition:    competition,
		StartTime:      startTime.Format(isoLayout),
		HomeCompetitor: home,
		AwayCompetitor: away,
		Status:         status,
		Scores:         scores,
	}, true
}

// parseStartTime interprets value as epoch milliseconds.
// Fractional milliseconds are truncated.
func parseStartTime(value string) (time.Time, bool) {
	ms, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(math.Trunc(ms))).UTC(), true
}

// diff compares the fields that drive change notifications.
func diff(old, updated *Event) []Change {
	var changes []Change
	if old.Status != updated.Status {
		changes = append(changes, Change{
			EventID: updated.ID,
			Field:   FieldStatus,
			Old:     old.Status,
			New:     updated.Status,
		})
	}
	if !slices.Equal(old.Scores, updated.Scores) {
		changes = append(changes, Change{
			EventID: updated.ID,
			Field:   FieldScores,
			Old:     formatScores(old.Scores),
			New:     formatScores(updated.Scores),
		})
	}
	return changes
}

// formatScores renders scores back into feed notation.
func formatScores(scores []feed.Score) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = s.PeriodID + feed.PeriodSeparator + s.Home + feed.HomeAwaySeparator + s.Away
	}
	return strings.Join(parts, feed.ScoreSeparator)
}

// ClientView projects the visible events under the read lock.
func (e *Engine) ClientView() ClientView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Project(e.events)
}

// VisibleEvents returns copies of all non-removed events sorted by id.
func (e *Engine) VisibleEvents() []Event {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Event, 0, len(e.events))
	for _, event := range e.events {
		if !event.Removed {
			out = append(out, event.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Event returns a copy of the stored event, including removed ones.
func (e *Engine) Event(id string) (Event, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	event, ok := e.events[id]
	if !ok {
		return Event{}, false
	}
	return event.clone(), true
}

// Stats returns counters describing the current state.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := Stats{
		Events:            len(e.events),
		Mappings:          len(e.mappings),
		Merges:            e.merges,
		LastMerge:         e.lastMerge,
		LastMappingUpdate: e.lastMappingUpdate,
	}
	for _, event := range e.events {
		if event.Removed {
			stats.Removed++
		} else {
			stats.Visible++
		}
	}
	return stats
}
