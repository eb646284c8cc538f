package feed

// Score is the home/away score of a single period.
type Score struct {
	PeriodID string `json:"periodId"`
	Home     string `json:"home"`
	Away     string `json:"away"`
}

// Record is one parsed feed row with identifiers still unresolved.
type Record struct {
	SportEventID     string
	SportID          string
	CompetitionID    string
	StartTime        string
	HomeCompetitorID string
	AwayCompetitorID string
	StatusID         string
	Scores           []Score
}
