// Package events serves the reconciled event state over HTTP.
//
// Routes:
//
//	GET /state        client view keyed by event id
//	GET /state/:id    one visible event, 404 when unknown or removed
//	GET /events       visible canonical events sorted by id
//	GET /health       engine statistics
//
// The feature only reads; the engine is written by the fetcher's poller.
package events
