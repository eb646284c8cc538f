// Package fetcher retrieves the upstream mapping and state payloads and feeds them to the
// reconcile engine on a schedule.
//
// # Sources
//
// Two Source implementations return the raw delimited text:
//
//   - HTTPSource: GETs {"mappings": "..."} and {"odds": "..."} from the upstream API.
//   - StorageSource: reads the same JSON documents as objects from an S3/MinIO bucket, which is
//     handy for replaying a recorded session.
//
// Both validate the payload shape before returning, so ErrUnexpectedStatus and
// ErrInvalidPayload never reach the engine.
//
// # Poller
//
// The Poller runs two independent loops (mappings, state) under an errgroup. Each loop fetches
// once on start and then on every tick. A failed fetch is logged and the engine is left alone.
// State fetch and merge happen under one mutex so snapshots are merged in the order they were
// fetched. Mapping refreshes are coalesced with singleflight, which lets the state loop load
// mappings on demand before its first merge without racing the mappings loop.
package fetcher
