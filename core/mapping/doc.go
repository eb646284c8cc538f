// Package mapping turns the upstream mapping feed into an identifier lookup table.
//
// The mapping feed is a flat string of `id:value` pairs separated by `;`, for example:
//
//	S1:FOOTBALL;C1:LeagueX;TEAM_A:Home FC;
//
// # Parsing
//
// Parse is lenient. Entries that do not split into exactly one key and one value, or whose key
// or value is blank, are skipped with a warning and the remaining entries are still parsed.
// Duplicate identifiers overwrite earlier ones. Empty input yields an empty Table.
//
// # Resolution
//
// Table.Resolve reports a miss as a plain boolean rather than an error, because a missing id only
// disqualifies the record that referenced it. The Resolver wrapper adds the warning log that the
// reconcile engine relies on.
//
// # Usage
//
//	table := mapping.Parse(raw, logger)
//	name, ok := mapping.NewResolver(table, logger).Resolve("TEAM_A")
package mapping
