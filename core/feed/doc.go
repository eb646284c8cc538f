// Package feed parses the upstream live-state feed into typed event records.
//
// The feed is one event per line, comma separated:
//
//	sportEventId,sportId,competitionId,startTime,homeCompetitorId,awayCompetitorId,statusId[,scores]
//
// The optional scores field is a `|` separated list of `periodId@home:away` entries.
//
// Parsing happens in three steps that can be used independently:
//   - ParseText splits the payload into rows of trimmed, non-empty fields.
//   - ParseRecord turns one row into a Record, or an error when the row is too short.
//   - ParseAll runs ParseRecord over every row and logs the rows it drops.
//
// Blank fields are dropped before positional decoding, so `a,,b` decodes like `a,b`.
// Score entries are recovered individually: a malformed entry is logged and dropped while the
// well-formed entries next to it are kept.
package feed
