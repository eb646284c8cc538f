// Package reconcile owns the live event state and merges feed snapshots into it.
//
// Every feed snapshot is a complete picture of the events currently on offer. The Engine keeps
// one canonical Event per sport event id and reconciles each snapshot against what it already
// holds:
//
//   - New ids are resolved against the current mapping table and inserted.
//   - Known ids are re-resolved and overwritten; status and score changes are reported.
//   - Ids missing from the snapshot are soft deleted: the entry stays addressable by id but is
//     flagged Removed, its status is set to StatusRemoved, and it is hidden from the client view.
//
// A record is only applied when all five of its identifiers (sport, competition, home, away,
// status) resolve and its start time is a valid epoch-milliseconds instant. Rejected records
// leave the stored entry untouched but still count as present for the removal sweep.
//
// # Architecture
//
//  1. Engine: single-writer state holder guarded by a sync.RWMutex. MergeBatch and
//     UpdateMappings take the write lock; every read helper takes the read lock, so readers see
//     either the state before a merge or after it, never in between.
//
//  2. Projection: Project reshapes canonical events into the ClientView served by the HTTP
//     layer. It is pure and never mutates its input.
//
//  3. MergeResult: a per-merge summary (created, updated, removed, rejected counts plus every
//     field-level Change) returned to the caller for logging and tests.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(logger)
//	engine.UpdateMappings(mapping.Parse(rawMappings, logger))
//
//	result := engine.MergeBatch(feed.Parse(rawFeed, logger))
//	logger.Info("merged", zap.Int("created", result.Created))
//
//	view := engine.ClientView()
package reconcile
