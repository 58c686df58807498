package refdata

import "time"

// Team is an NFL franchise keyed internally by TeamID and externally by the
// provider UUID.
type Team struct {
	TeamID       int64  `db:"team_id"`
	UUID         string `db:"team_sr_uuid"`
	Name         string `db:"team_name"`
	Market       string `db:"team_market"`
	Abbreviation string `db:"team_abbreviation"`
}

// PlayerDraft carries the identifying fields available when a player is first
// seen in a provider payload. Position and Jersey may be empty; the upsert
// preserves previously known values in that case.
type PlayerDraft struct {
	UUID     string
	Name     string
	TeamUUID string
	Position string
	Jersey   string
}

// Game is a scheduled NFL game as stored in refdata.
type Game struct {
	GameID     int64  `db:"game_id"`
	UUID       string `db:"game_sr_uuid"`
	Week       int    `db:"game_week"`
	SeasonYear int    `db:"game_season_year"`
}

// Week is one week of a season, with bounds derived from the earliest and
// latest scheduled kickoff in that week.
type Week struct {
	UUID       string    `db:"week_sr_uuid"`
	SeasonYear int       `db:"week_season_year"`
	SeasonType string    `db:"week_season_type"`
	Number     int       `db:"week_number"`
	StartDate  time.Time `db:"week_start_date"`
	EndDate    time.Time `db:"week_end_date"`
}

// ScheduledGame is the full schedule row for one game.
type ScheduledGame struct {
	Week       int       `db:"game_week"`
	SeasonYear int       `db:"game_season_year"`
	HomeTeamID int64     `db:"game_home_team_id"`
	AwayTeamID int64     `db:"game_away_team_id"`
	Date       time.Time `db:"game_date"`
	HomeScore  *int      `db:"game_home_score"`
	AwayScore  *int      `db:"game_away_score"`
	UUID       string    `db:"game_sr_uuid"`
	WeekID     int64     `db:"game_week_id"`
}

// Injury is a practice-report entry for a player in a given week.
type Injury struct {
	PlayerID              int64     `db:"inj_player_id"`
	TeamID                int64     `db:"inj_team_id"`
	SeasonYear            int       `db:"inj_season_year"`
	WeekNumber            int       `db:"inj_week_number"`
	Status                string    `db:"inj_status"`
	StatusDate            time.Time `db:"inj_status_date"`
	PrimaryInjury         string    `db:"inj_primary_injury"`
	WeekID                int64     `db:"inj_week_id"`
	PracticeParticipation string    `db:"inj_practice_participation"`
}

// DepthChartEntry places a player on a team's weekly depth chart. Rank is -1
// when the provider omits depth.
type DepthChartEntry struct {
	TeamID     int64  `db:"dc_team_id"`
	SeasonYear int    `db:"dc_season_year"`
	Week       int    `db:"dc_week"`
	PlayerID   int64  `db:"dc_player_id"`
	Position   string `db:"dc_player_position"`
	Alignment  string `db:"dc_player_position_alignment"`
	Rank       int    `db:"dc_rank"`
}
