package weekly

import "strings"

// CategoryConfig describes how one statistical category maps from the
// provider payload into its destination table: which subtree of the
// game-statistics response it comes from, which columns form the natural
// upsert key, which columns carry data, and how provider field names are
// renamed to destination columns. Provider fields without a mapping are
// dropped, which keeps the loader tolerant of API additions.
type CategoryConfig struct {
	Name        string
	Table       string
	ResponseKey string
	KeyColumns  []string
	DataColumns []string
	FieldMap    map[string]string
}

// Column spellings differ per category (psw_pass_*, psw_rush_*, ...), so key
// roles are recovered by suffix rather than by position.
func (c CategoryConfig) PlayerIDColumn() string { return c.keyColumnWithSuffix("player_id") }
func (c CategoryConfig) TeamIDColumn() string   { return c.keyColumnWithSuffix("team_id") }
func (c CategoryConfig) GameIDColumn() string   { return c.keyColumnWithSuffix("game_id") }
func (c CategoryConfig) SeasonColumn() string   { return c.keyColumnWithSuffix("season_year") }
func (c CategoryConfig) WeekColumn() string     { return c.keyColumnWithSuffix("week_number") }

func (c CategoryConfig) keyColumnWithSuffix(suffix string) string {
	for _, col := range c.KeyColumns {
		if strings.HasSuffix(col, suffix) {
			return col
		}
	}
	return ""
}

const (
	CategoryPassing     = "passing"
	CategoryRushing     = "rushing"
	CategoryReceiving   = "receiving"
	CategoryPunting     = "punting"
	CategoryPuntReturns = "punt_returns"
	CategoryFieldGoals  = "field_goals"
	CategoryExtraPoints = "extra_points"
	CategoryKickoffs    = "kickoffs"
	CategoryKickReturns = "kick_returns"
	CategoryDefense     = "defense"
	CategoryFumbles     = "fumbles"
)

// Rushing fumble columns are special-cased twice: coerced to integers during
// normalization and overwritten later by the fumbles-category reconciliation.
const (
	RushingTable          = "player_stats_weekly_rushing"
	RushingFumblesColumn  = "psw_rush_fumbles"
	RushingFumblesLostCol = "psw_rush_fumbles_lost"
	FumblesColumn         = "psw_fum_fumbles"
	FumblesLostColumn     = "psw_fum_lost_fumbles"
	KickingTable          = "player_stats_weekly_kicking"
)

// Categories returns every configured category in processing order. The
// order is part of the contract: the reconciliation pass assumes rushing
// rows are written before fumbles are re-read.
func Categories() []CategoryConfig {
	return categories
}

// CategoryByName returns the config for name, if configured.
func CategoryByName(name string) (CategoryConfig, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryConfig{}, false
}

var categories = []CategoryConfig{
	{
		Name:        CategoryPassing,
		Table:       "player_stats_weekly_passing",
		ResponseKey: "passing",
		KeyColumns: []string{
			"psw_pass_player_id", "psw_pass_team_id", "psw_pass_game_id",
			"psw_pass_season_year", "psw_pass_week_number",
		},
		DataColumns: []string{
			"psw_pass_attempts", "psw_pass_completions", "psw_pass_yards",
			"psw_pass_avg_yards", "psw_pass_air_yards", "psw_pass_longest",
			"psw_pass_longest_touchdown", "psw_pass_touchdowns",
			"psw_pass_interceptions", "psw_pass_rz_attempts",
			"psw_pass_pick_sixes", "psw_pass_throw_aways",
			"psw_pass_poor_throws", "psw_pass_on_target_throws",
			"psw_pass_defended_passes", "psw_pass_batted_passes",
			"psw_pass_dropped_passes", "psw_pass_spikes",
			"psw_pass_blitzes", "psw_pass_hurries",
			"psw_pass_knockdowns", "psw_pass_avg_pocket_time",
			"psw_pass_net_yards", "psw_pass_sacks",
			"psw_pass_sack_yards",
		},
		FieldMap: map[string]string{
			"attempts":          "psw_pass_attempts",
			"completions":       "psw_pass_completions",
			"yards":             "psw_pass_yards",
			"avg_yards":         "psw_pass_avg_yards",
			"air_yards":         "psw_pass_air_yards",
			"longest":           "psw_pass_longest",
			"longest_touchdown": "psw_pass_longest_touchdown",
			"touchdowns":        "psw_pass_touchdowns",
			"interceptions":     "psw_pass_interceptions",
			"redzone_attempts":  "psw_pass_rz_attempts",
			"int_touchdowns":    "psw_pass_pick_sixes",
			"throw_aways":       "psw_pass_throw_aways",
			"poor_throws":       "psw_pass_poor_throws",
			"on_target_throws":  "psw_pass_on_target_throws",
			"defended_passes":   "psw_pass_defended_passes",
			"batted_passes":     "psw_pass_batted_passes",
			"dropped_passes":    "psw_pass_dropped_passes",
			"spikes":            "psw_pass_spikes",
			"blitzes":           "psw_pass_blitzes",
			"hurries":           "psw_pass_hurries",
			"knockdowns":        "psw_pass_knockdowns",
			"avg_pocket_time":   "psw_pass_avg_pocket_time",
			"net_yards":         "psw_pass_net_yards",
			"sacks":             "psw_pass_sacks",
			"sack_yards":        "psw_pass_sack_yards",
		},
	},
	{
		Name:        CategoryRushing,
		Table:       RushingTable,
		ResponseKey: "rushing",
		KeyColumns: []string{
			"psw_rush_player_id", "psw_rush_team_id", "psw_rush_game_id",
			"psw_rush_season_year", "psw_rush_week_number",
		},
		DataColumns: []string{
			"psw_rush_attempts", "psw_rush_yards", "psw_rush_avg_yards",
			"psw_rush_touchdowns", "psw_rush_first_downs", "psw_rush_longest",
			"psw_rush_rz_attempts", "psw_rush_tfl", "psw_rush_tfl_yards",
			"psw_rush_broken_tackles", "psw_rush_yards_after_contact",
			"psw_rush_kneel_downs", "psw_rush_scrambles", "psw_rush_fumbles",
			"psw_rush_fumbles_lost",
		},
		FieldMap: map[string]string{
			"attempts":            "psw_rush_attempts",
			"yards":               "psw_rush_yards",
			"avg_yards":           "psw_rush_avg_yards",
			"touchdowns":          "psw_rush_touchdowns",
			"first_downs":         "psw_rush_first_downs",
			"longest":             "psw_rush_longest",
			"redzone_attempts":    "psw_rush_rz_attempts",
			"tlost":               "psw_rush_tfl",
			"tlost_yards":         "psw_rush_tfl_yards",
			"broken_tackles":      "psw_rush_broken_tackles",
			"yards_after_contact": "psw_rush_yards_after_contact",
			"kneel_downs":         "psw_rush_kneel_downs",
			"scrambles":           "psw_rush_scrambles",
			"fumbles":             "psw_rush_fumbles",
			"lost_fumbles":        "psw_rush_fumbles_lost",
		},
	},
	{
		Name:        CategoryReceiving,
		Table:       "player_stats_weekly_receiving",
		ResponseKey: "receiving",
		KeyColumns: []string{
			"psw_rec_player_id", "psw_rec_team_id", "psw_rec_game_id",
			"psw_rec_season_year", "psw_rec_week_number",
		},
		DataColumns: []string{
			"psw_rec_receptions", "psw_rec_yards", "psw_rec_avg_yards",
			"psw_rec_touchdowns", "psw_rec_first_downs", "psw_rec_longest",
			"psw_rec_longest_touchdown", "psw_rec_targets", "psw_rec_rz_targets",
			"psw_rec_tfl_yards", "psw_rec_broken_tackles", "psw_rec_yards_after_contact",
			"psw_rec_yards_after_catch", "psw_rec_air_yards", "psw_rec_dropped_passes",
			"psw_rec_catchable_passes",
		},
		FieldMap: map[string]string{
			"receptions":          "psw_rec_receptions",
			"yards":               "psw_rec_yards",
			"avg_yards":           "psw_rec_avg_yards",
			"touchdowns":          "psw_rec_touchdowns",
			"first_downs":         "psw_rec_first_downs",
			"longest":             "psw_rec_longest",
			"longest_touchdown":   "psw_rec_longest_touchdown",
			"targets":             "psw_rec_targets",
			"redzone_targets":     "psw_rec_rz_targets",
			"broken_tackles":      "psw_rec_broken_tackles",
			"yards_after_contact": "psw_rec_yards_after_contact",
			"yards_after_catch":   "psw_rec_yards_after_catch",
			"air_yards":           "psw_rec_air_yards",
			"dropped_passes":      "psw_rec_dropped_passes",
			"catchable_passes":    "psw_rec_catchable_passes",
		},
	},
	{
		Name:        CategoryPunting,
		Table:       "player_stats_weekly_punting",
		ResponseKey: "punts",
		KeyColumns: []string{
			"psw_punt_player_id", "psw_punt_team_id", "psw_punt_game_id",
			"psw_punt_season_year", "psw_punt_week_number",
		},
		DataColumns: []string{
			"psw_punt_attempts", "psw_punt_yards", "psw_punt_avg_yards",
			"psw_punt_net_yards", "psw_punt_avg_net_yards", "psw_punt_longest",
			"psw_punt_hangtime", "psw_punt_avg_hangtime", "psw_punt_blocked",
			"psw_punt_touchbacks", "psw_punt_inside_20", "psw_punt_return_yards",
		},
		FieldMap: map[string]string{
			"attempts":      "psw_punt_attempts",
			"yards":         "psw_punt_yards",
			"avg_yards":     "psw_punt_avg_yards",
			"net_yards":     "psw_punt_net_yards",
			"avg_net_yards": "psw_punt_avg_net_yards",
			"longest":       "psw_punt_longest",
			"hang_time":     "psw_punt_hangtime",
			"avg_hang_time": "psw_punt_avg_hangtime",
			"blocked":       "psw_punt_blocked",
			"touchbacks":    "psw_punt_touchbacks",
			"inside_20":     "psw_punt_inside_20",
			"return_yards":  "psw_punt_return_yards",
		},
	},
	{
		Name:        CategoryPuntReturns,
		Table:       "player_stats_weekly_punt_returns",
		ResponseKey: "punt_returns",
		KeyColumns: []string{
			"psw_punt_ret_player_id", "psw_punt_ret_team_id", "psw_punt_ret_game_id",
			"psw_punt_ret_season_year", "psw_punt_ret_week_number",
		},
		DataColumns: []string{
			"psw_punt_ret_attempts", "psw_punt_ret_yards", "psw_punt_ret_avg_yards",
			"psw_punt_ret_touchdowns", "psw_punt_ret_longest", "psw_punt_ret_fair_catches",
		},
		FieldMap: map[string]string{
			"number":      "psw_punt_ret_attempts",
			"yards":       "psw_punt_ret_yards",
			"avg_yards":   "psw_punt_ret_avg_yards",
			"touchdowns":  "psw_punt_ret_touchdowns",
			"longest":     "psw_punt_ret_longest",
			"faircatches": "psw_punt_ret_fair_catches",
		},
	},
	{
		Name:        CategoryFieldGoals,
		Table:       KickingTable,
		ResponseKey: "field_goals",
		KeyColumns: []string{
			"psw_kick_player_id", "psw_kick_team_id", "psw_kick_game_id",
			"psw_kick_season_year", "psw_kick_week_number",
		},
		DataColumns: []string{
			"psw_kick_fg_attempts", "psw_kick_fg_made", "psw_kick_fg_block",
			"psw_kick_fg_yards", "psw_kick_fg_avg_yards", "psw_kick_fg_longest",
			"psw_kick_fg_net_attempts", "psw_kick_fg_missed", "psw_kick_fg_pct",
			"psw_kick_fg_attempts_19", "psw_kick_fg_attempts_20_to_29", "psw_kick_fg_attempts_30_to_39",
			"psw_kick_fg_attempts_40_to_49", "psw_kick_fg_attempts_50_or_more",
			"psw_kick_fg_made_19", "psw_kick_fg_made_20_to_29", "psw_kick_fg_made_30_to_39",
			"psw_kick_fg_made_40_to_49", "psw_kick_fg_made_50_or_more",
		},
		FieldMap: map[string]string{
			"attempts":         "psw_kick_fg_attempts",
			"made":             "psw_kick_fg_made",
			"blocked":          "psw_kick_fg_block",
			"yards":            "psw_kick_fg_yards",
			"avg_yards":        "psw_kick_fg_avg_yards",
			"longest":          "psw_kick_fg_longest",
			"net_attempts":     "psw_kick_fg_net_attempts",
			"missed":           "psw_kick_fg_missed",
			"pct":              "psw_kick_fg_pct",
			"attempts_1_19":    "psw_kick_fg_attempts_19",
			"attempts_20_29":   "psw_kick_fg_attempts_20_to_29",
			"attempts_30_39":   "psw_kick_fg_attempts_30_to_39",
			"attempts_40_49":   "psw_kick_fg_attempts_40_to_49",
			"attempts_50_plus": "psw_kick_fg_attempts_50_or_more",
			"made_1_19":        "psw_kick_fg_made_19",
			"made_20_29":       "psw_kick_fg_made_20_to_29",
			"made_30_39":       "psw_kick_fg_made_30_to_39",
			"made_40_49":       "psw_kick_fg_made_40_to_49",
			"made_50_plus":     "psw_kick_fg_made_50_or_more",
		},
	},
	{
		Name:        CategoryExtraPoints,
		Table:       KickingTable,
		ResponseKey: "extra_points",
		KeyColumns: []string{
			"psw_kick_player_id", "psw_kick_team_id", "psw_kick_game_id",
			"psw_kick_season_year", "psw_kick_week_number",
		},
		DataColumns: []string{
			"psw_kick_xp_attempts", "psw_kick_xp_made", "psw_kick_xp_blocked",
			"psw_kick_xp_missed", "psw_kick_xp_pct",
		},
		FieldMap: map[string]string{
			"attempts": "psw_kick_xp_attempts",
			"made":     "psw_kick_xp_made",
			"blocked":  "psw_kick_xp_blocked",
			"missed":   "psw_kick_xp_missed",
			"pct":      "psw_kick_xp_pct",
		},
	},
	{
		Name:        CategoryKickoffs,
		Table:       "player_stats_weekly_kickoffs",
		ResponseKey: "kickoffs",
		KeyColumns: []string{
			"psw_kickoff_player_id", "psw_kickoff_team_id", "psw_kickoff_game_id",
			"psw_kickoff_season_year", "psw_kickoff_week_number",
		},
		DataColumns: []string{
			"psw_kickoff_attempts", "psw_kickoff_yards", "psw_kickoff_avg_yards",
			"psw_kickoff_touchbacks", "psw_kickoff_onside_attempts", "psw_kickoff_onside_made",
			"psw_kickoff_out_of_bounds",
		},
		FieldMap: map[string]string{
			"number":           "psw_kickoff_attempts",
			"yards":            "psw_kickoff_yards",
			"avg_yards":        "psw_kickoff_avg_yards",
			"touchbacks":       "psw_kickoff_touchbacks",
			"onside_attempts":  "psw_kickoff_onside_attempts",
			"onside_successes": "psw_kickoff_onside_made",
			"out_of_bounds":    "psw_kickoff_out_of_bounds",
		},
	},
	{
		Name:        CategoryKickReturns,
		Table:       "player_stats_weekly_kick_returns",
		ResponseKey: "kick_returns",
		KeyColumns: []string{
			"psw_kick_ret_player_id", "psw_kick_ret_team_id", "psw_kick_ret_game_id",
			"psw_kick_ret_season_year", "psw_kick_ret_week_number",
		},
		DataColumns: []string{
			"psw_kick_ret_attempts", "psw_kick_ret_yards", "psw_kick_ret_avg_yards",
			"psw_kick_ret_touchdowns", "psw_kick_ret_longest", "psw_kick_ret_fair_catches",
		},
		FieldMap: map[string]string{
			"number":      "psw_kick_ret_attempts",
			"yards":       "psw_kick_ret_yards",
			"avg_yards":   "psw_kick_ret_avg_yards",
			"touchdowns":  "psw_kick_ret_touchdowns",
			"longest":     "psw_kick_ret_longest",
			"faircatches": "psw_kick_ret_fair_catches",
		},
	},
	{
		Name:        CategoryDefense,
		Table:       "player_stats_weekly_defense",
		ResponseKey: "defense",
		KeyColumns: []string{
			"psw_def_player_id", "psw_def_team_id", "psw_def_game_id",
			"psw_def_season_year", "psw_def_week_number",
		},
		DataColumns: []string{
			"psw_def_tackles", "psw_def_assists", "psw_def_combined",
			"psw_def_sacks", "psw_def_sack_yards", "psw_def_interceptions",
			"psw_def_passes_defended", "psw_def_forced_fumbles", "psw_def_fumble_recoveries",
			"psw_def_qb_hits", "psw_def_tloss", "psw_def_tloss_yards",
			"psw_def_safeties", "psw_def_sp_tackles", "psw_def_sp_assists",
			"psw_def_sp_forced_fumbles", "psw_def_sp_fumble_recoveries", "psw_def_sp_blocks",
			"psw_def_misc_tackles", "psw_def_misc_assists", "psw_def_misc_forced_fumbles",
			"psw_def_misc_fumble_recoveries", "psw_def_sp_own_fumble_recoveries", "psw_def_sp_opp_fumble_recoveries",
			"psw_def_def_targets", "psw_def_def_comps", "psw_def_blitzes",
			"psw_def_hurries", "psw_def_knockdowns", "psw_def_missed_tackles",
			"psw_def_batted_passes",
		},
		FieldMap: map[string]string{
			"tackles":                  "psw_def_tackles",
			"assists":                  "psw_def_assists",
			"combined":                 "psw_def_combined",
			"sacks":                    "psw_def_sacks",
			"sack_yards":               "psw_def_sack_yards",
			"interceptions":            "psw_def_interceptions",
			"passes_defended":          "psw_def_passes_defended",
			"forced_fumbles":           "psw_def_forced_fumbles",
			"fumble_recoveries":        "psw_def_fumble_recoveries",
			"qb_hits":                  "psw_def_qb_hits",
			"tloss":                    "psw_def_tloss",
			"tloss_yards":              "psw_def_tloss_yards",
			"safeties":                 "psw_def_safeties",
			"sp_tackles":               "psw_def_sp_tackles",
			"sp_assists":               "psw_def_sp_assists",
			"sp_forced_fumbles":        "psw_def_sp_forced_fumbles",
			"sp_fumble_recoveries":     "psw_def_sp_fumble_recoveries",
			"sp_blocks":                "psw_def_sp_blocks",
			"misc_tackles":             "psw_def_misc_tackles",
			"misc_assists":             "psw_def_misc_assists",
			"misc_forced_fumbles":      "psw_def_misc_forced_fumbles",
			"misc_fumble_recoveries":   "psw_def_misc_fumble_recoveries",
			"sp_own_fumble_recoveries": "psw_def_sp_own_fumble_recoveries",
			"sp_opp_fumble_recoveries": "psw_def_sp_opp_fumble_recoveries",
			"def_targets":              "psw_def_def_targets",
			"def_comps":                "psw_def_def_comps",
			"blitzes":                  "psw_def_blitzes",
			"hurries":                  "psw_def_hurries",
			"knockdowns":               "psw_def_knockdowns",
			"missed_tackles":           "psw_def_missed_tackles",
			"batted_passes":            "psw_def_batted_passes",
		},
	},
	{
		Name:        CategoryFumbles,
		Table:       "player_stats_weekly_fumbles",
		ResponseKey: "fumbles",
		KeyColumns: []string{
			"psw_fum_player_id", "psw_fum_team_id", "psw_fum_game_id",
			"psw_fum_season_year", "psw_fum_week_number",
		},
		DataColumns: []string{
			"psw_fum_fumbles", "psw_fum_lost_fumbles", "psw_fum_own_rec",
			"psw_fum_own_rec_yards", "psw_fum_opp_rec", "psw_fum_opp_rec_yards",
			"psw_fum_forced_fumbles",
		},
		FieldMap: map[string]string{
			"fumbles":        "psw_fum_fumbles",
			"lost_fumbles":   "psw_fum_lost_fumbles",
			"own_rec":        "psw_fum_own_rec",
			"own_rec_yards":  "psw_fum_own_rec_yards",
			"opp_rec":        "psw_fum_opp_rec",
			"opp_rec_yards":  "psw_fum_opp_rec_yards",
			"forced_fumbles": "psw_fum_forced_fumbles",
		},
	},
}
