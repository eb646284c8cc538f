package feed

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// LineSeparator separates event rows.
	LineSeparator = "\n"
	// FieldSeparator separates fields within a row.
	FieldSeparator = ","
	// ScoreSeparator separates period entries in the scores field.
	ScoreSeparator = "|"
	// PeriodSeparator separates the period id from its score.
	PeriodSeparator = "@"
	// HomeAwaySeparator separates the home score from the away score.
	HomeAwaySeparator = ":"

	// MinFields is the number of positional fields every row must carry.
	MinFields = 7
)

// ErrTooFewFields is returned by ParseRecord for rows shorter than MinFields.
var ErrTooFewFields = errors.New("too few fields")

// ParseText splits the raw feed into rows of trimmed fields.
// Fields that are empty after trimming are dropped.
func ParseText(raw string) [][]string {
	lines := strings.Split(strings.TrimSpace(raw), LineSeparator)

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		fields := make([]string, 0, MinFields+1)
		for _, field := range strings.Split(line, FieldSeparator) {
			if field = strings.TrimSpace(field); field != "" {
				fields = append(fields, field)
			}
		}
		rows = append(rows, fields)
	}
	return rows
}

// ParseRecord decodes a single row.
// A missing scores field yields an empty score list.
func ParseRecord(fields []string, logger *zap.Logger) (Record, error) {
	if len(fields) < MinFields {
		return Record{}, fmt.Errorf("%w: expected at least %d, got %d", ErrTooFewFields, MinFields, len(fields))
	}

	record := Record{
		SportEventID:     fields[0],
		SportID:          fields[1],
		CompetitionID:    fields[2],
		StartTime:        fields[3],
		HomeCompetitorID: fields[4],
		AwayCompetitorID: fields[5],
		StatusID:         fields[6],
		Scores:           []Score{},
	}
	if len(fields) > MinFields {
		record.Scores = ParseScores(fields[MinFields], logger)
	}

	return record, nil
}

// ParseAll decodes every row, dropping and logging the ones that fail.
func ParseAll(rows [][]string, logger *zap.Logger) []Record {
	if logger == nil {
		logger = zap.NewNop()
	}

	records := make([]Record, 0, len(rows))
	for i, fields := range rows {
		if len(fields) == 0 {
			continue
		}
		record, err := ParseRecord(fields, logger)
		if err != nil {
			logger.Warn("Invalid feed line skipped",
				zap.Int("line", i+1),
				zap.Strings("fields", fields),
				zap.Error(err),
			)
			continue
		}
		records = append(records, record)
	}
	return records
}

// Parse is ParseText followed by ParseAll.
func Parse(raw string, logger *zap.Logger) []Record {
	return ParseAll(ParseText(raw), logger)
}

// ParseScores decodes a `periodId@home:away|...` list.
// Malformed entries are logged and dropped individually.
func ParseScores(raw string, logger *zap.Logger) []Score {
	if logger == nil {
		logger = zap.NewNop()
	}

	scores := []Score{}
	for _, entry := range strings.Split(strings.TrimSpace(raw), ScoreSeparator) {
		score, reason := parseScore(entry)
		if reason != "" {
			logger.Warn("Invalid score entry skipped", zap.String("entry", entry), zap.String("reason", reason))
			continue
		}
		scores = append(scores, score)
	}
	return scores
}

func parseScore(entry string) (Score, string) {
	parts := strings.Split(entry, PeriodSeparator)
	if len(parts) != 2 {
		return Score{}, "missing '" + PeriodSeparator + "'"
	}

	periodID := strings.TrimSpace(parts[0])
	if periodID == "" {
		return Score{}, "empty period id"
	}
	value := strings.TrimSpace(parts[1])
	if value == "" {
		return Score{}, "empty score"
	}

	halves := strings.Split(value, HomeAwaySeparator)
	if len(halves) != 2 {
		return Score{}, "expected home" + HomeAwaySeparator + "away"
	}
	home := strings.TrimSpace(halves[0])
	away := strings.TrimSpace(halves[1])
	if home == "" || away == "" {
		return Score{}, "empty home or away score"
	}

	return Score{PeriodID: periodID, Home: home, Away: away}, ""
}
