package feed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want [][]string
	}{
		{
			name: "Single line",
			raw:  "E1,S1,C1,1700000000000,TEAM_A,TEAM_B,ST1,P1@1:0",
			want: [][]string{{"E1", "S1", "C1", "1700000000000", "TEAM_A", "TEAM_B", "ST1", "P1@1:0"}},
		},
		{
			name: "Trims fields and surrounding whitespace",
			raw:  "\n  a , b ,c \n d,e\n",
			want: [][]string{{"a", "b", "c"}, {"d", "e"}},
		},
		{
			name: "Drops empty fields",
			raw:  "a,,  ,b",
			want: [][]string{{"a", "b"}},
		},
		{
			name: "Carriage returns",
			raw:  "a,b\r\nc,d\r\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "Empty payload",
			raw:  "",
			want: [][]string{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseText(tt.raw))
		})
	}
}

func TestParseRecord(t *testing.T) {
	t.Run("With scores", func(t *testing.T) {
		record, err := ParseRecord([]string{"E1", "S1", "C1", "1700000000000", "H", "A", "ST1", "P1@1:0|P2@2:1"}, zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t, Record{
			SportEventID:     "E1",
			SportID:          "S1",
			CompetitionID:    "C1",
			StartTime:        "1700000000000",
			HomeCompetitorID: "H",
			AwayCompetitorID: "A",
			StatusID:         "ST1",
			Scores: []Score{
				{PeriodID: "P1", Home: "1", Away: "0"},
				{PeriodID: "P2", Home: "2", Away: "1"},
			},
		}, record)
	})

	t.Run("Without scores", func(t *testing.T) {
		record, err := ParseRecord([]string{"E1", "S1", "C1", "1700000000000", "H", "A", "ST1"}, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, record.Scores)
		assert.Empty(t, record.Scores)
	})

	t.Run("Extra fields ignored", func(t *testing.T) {
		record, err := ParseRecord([]string{"E1", "S1", "C1", "1", "H", "A", "ST1", "P1@0:0", "junk"}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, []Score{{PeriodID: "P1", Home: "0", Away: "0"}}, record.Scores)
	})

	t.Run("Too few fields", func(t *testing.T) {
		_, err := ParseRecord([]string{"E1", "S1", "C1", "1", "H", "A"}, zap.NewNop())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooFewFields))
		assert.Contains(t, err.Error(), "got 6")
	})
}

func TestParseAll(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rows := ParseText("E1,S1,C1,1,H,A,ST1\nshort,row\n\nE2,S1,C1,2,H,A,ST1,P1@1:1")

	records := ParseAll(rows, zap.New(core))

	require.Len(t, records, 2)
	assert.Equal(t, "E1", records[0].SportEventID)
	assert.Equal(t, "E2", records[1].SportEventID)

	// Only the short row is reported; the blank line is skipped silently.
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Invalid feed line skipped", logs.All()[0].Message)
	assert.EqualValues(t, 2, logs.All()[0].ContextMap()["line"])
}

func TestParse_EmptyPayload(t *testing.T) {
	assert.Empty(t, Parse("", zap.NewNop()))
	assert.Empty(t, Parse("   \n  ", nil))
}

func TestParseScores(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Score
	}{
		{
			name: "Single entry",
			raw:  "P1@1:0",
			want: []Score{{PeriodID: "P1", Home: "1", Away: "0"}},
		},
		{
			name: "Multiple entries keep order",
			raw:  "P1@1:0|P2@2:1",
			want: []Score{{PeriodID: "P1", Home: "1", Away: "0"}, {PeriodID: "P2", Home: "2", Away: "1"}},
		},
		{
			name: "Partial recovery",
			raw:  "broken|P2@2:1",
			want: []Score{{PeriodID: "P2", Home: "2", Away: "1"}},
		},
		{
			name: "Empty period id",
			raw:  "@1:0|P2@0:0",
			want: []Score{{PeriodID: "P2", Home: "0", Away: "0"}},
		},
		{
			name: "Empty score half",
			raw:  "P1@|P2@0:0",
			want: []Score{{PeriodID: "P2", Home: "0", Away: "0"}},
		},
		{
			name: "Missing home away separator",
			raw:  "P1@10|P2@0:0",
			want: []Score{{PeriodID: "P2", Home: "0", Away: "0"}},
		},
		{
			name: "Blank away score",
			raw:  "P1@1:|P2@0:0",
			want: []Score{{PeriodID: "P2", Home: "0", Away: "0"}},
		},
		{
			name: "Double at sign",
			raw:  "P1@@1:0",
			want: []Score{},
		},
		{
			name: "Whitespace inside entry",
			raw:  " P1 @ 3 : 2 ",
			want: []Score{{PeriodID: "P1", Home: "3", Away: "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScores(tt.raw, zap.NewNop()))
		})
	}
}

func TestParseScores_LogsEachDroppedEntry(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	scores := ParseScores("bad|@1:0|P3@1:1", zap.New(core))

	assert.Len(t, scores, 1)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "missing '@'", logs.All()[0].ContextMap()["reason"])
	assert.Equal(t, "empty period id", logs.All()[1].ContextMap()["reason"])
}
