package reconcile

const (
	// CompetitorHome keys the home competitor in ClientEvent.Competitors.
	CompetitorHome = "HOME"
	// CompetitorAway keys the away competitor in ClientEvent.Competitors.
	CompetitorAway = "AWAY"
	// ScoreCurrent keys the latest period score in ClientEvent.Scores.
	ScoreCurrent = "CURRENT"

	defaultScore = "0"
)

// Competitor is a named side of an event in the client view.
type Competitor struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// ScoreLine is a home/away score in the client view.
type ScoreLine struct {
	Type string `json:"type"`
	Home string `json:"home"`
	Away string `json:"away"`
}

// ClientEvent is the client-facing shape of a visible event.
type ClientEvent struct {
	ID          string                `json:"id"`
	Status      string                `json:"status"`
	StartTime   string                `json:"startTime"`
	Sport       string                `json:"sport"`
	Competition string                `json:"competition"`
	Competitors map[string]Competitor `json:"competitors"`
	Scores      map[string]ScoreLine  `json:"scores"`
}

// ClientView is the full client-facing state keyed by event id.
type ClientView map[string]ClientEvent

// Project builds the client view from canonical events.
// Removed events are left out. The current score is the last period entry, or 0:0 when there
// are none.
func Project(events map[string]*Event) ClientView {
	view := make(ClientView, len(events))
	for id, event := range events {
		if event == nil || event.Removed {
			continue
		}
		view[id] = projectEvent(event)
	}
	return view
}

func projectEvent(event *Event) ClientEvent {
	current := ScoreLine{Type: ScoreCurrent, Home: defaultScore, Away: defaultScore}
	if n := len(event.Scores); n > 0 {
		last := event.Scores[n-1]
		current.Home = last.Home
		current.Away = last.Away
	}

	return ClientEvent{
		ID:          event.ID,
		Status:      event.Status,
		StartTime:   event.StartTime,
		Sport:       event.Sport,
		Competition: event.Competition,
		Competitors: map[string]Competitor{
			CompetitorHome: {Type: CompetitorHome, Name: event.HomeCompetitor},
			CompetitorAway: {Type: CompetitorAway, Name: event.AwayCompetitor},
		},
		Scores: map[string]ScoreLine{
			ScoreCurrent: current,
		},
	}
}
