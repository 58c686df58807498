package sportradar

// Typed envelopes for the reference endpoints. The game-statistics payload is
// deliberately left untyped (map[string]any) so the category field maps drive
// which stats survive normalization.

type TeamsPayload struct {
	Teams []TeamItem `json:"teams"`
}

type TeamItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Market string `json:"market"`
	Alias  string `json:"alias"`
}

type SchedulePayload struct {
	Type  string         `json:"type"`
	Weeks []ScheduleWeek `json:"weeks"`
}

type ScheduleWeek struct {
	ID       string         `json:"id"`
	Sequence int            `json:"sequence"`
	Games    []ScheduleGame `json:"games"`
}

type ScheduleGame struct {
	ID        string `json:"id"`
	Scheduled string `json:"scheduled"`
	Home      struct {
		ID string `json:"id"`
	} `json:"home"`
	Away struct {
		ID string `json:"id"`
	} `json:"away"`
	Scoring struct {
		HomePoints *int `json:"home_points"`
		AwayPoints *int `json:"away_points"`
	} `json:"scoring"`
}

type DepthChartsPayload struct {
	Season struct {
		Year int `json:"year"`
	} `json:"season"`
	Week struct {
		Sequence int `json:"sequence"`
	} `json:"week"`
	Teams []DepthChartTeam `json:"teams"`
}

type DepthChartTeam struct {
	ID           string               `json:"id"`
	Offense      []DepthPositionGroup `json:"offense"`
	Defense      []DepthPositionGroup `json:"defense"`
	SpecialTeams []DepthPositionGroup `json:"special_teams"`
}

type DepthPositionGroup struct {
	Position struct {
		Name    string             `json:"name"`
		Players []DepthChartPlayer `json:"players"`
	} `json:"position"`
}

type DepthChartPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Jersey   string `json:"jersey"`
	Depth    *int   `json:"depth"`
}

type InjuriesPayload struct {
	Week struct {
		ID string `json:"id"`
	} `json:"week"`
	Teams []InjuryTeam `json:"teams"`
}

type InjuryTeam struct {
	ID      string         `json:"id"`
	Players []InjuryPlayer `json:"players"`
}

type InjuryPlayer struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Position string       `json:"position"`
	Jersey   string       `json:"jersey"`
	Injuries []InjuryItem `json:"injuries"`
}

type InjuryItem struct {
	Status     string `json:"status"`
	StatusDate string `json:"status_date"`
	Primary    string `json:"primary"`
	Practice   struct {
		Status string `json:"status"`
	} `json:"practice"`
}
