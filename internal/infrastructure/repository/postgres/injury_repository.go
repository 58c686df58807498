package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	qb "github.com/riskibarqy/gridiron-ingest/internal/platform/querybuilder"
)

type InjuryRepository struct {
	db *sqlx.DB
}

func NewInjuryRepository(db *sqlx.DB) *InjuryRepository {
	return &InjuryRepository{db: db}
}

// Insert records one practice-report entry. A player gets at most one row per
// season week; replays of the same report are no-ops.
func (r *InjuryRepository) Insert(ctx context.Context, injury refdata.Injury) error {
	query, args, err := qb.InsertInto("refdata.injury_weekly").
		Columns(
			"inj_player_id", "inj_team_id", "inj_season_year", "inj_week_number",
			"inj_status", "inj_status_date", "inj_primary_injury",
			"inj_week_id", "inj_practice_participation",
		).
		Values(
			injury.PlayerID, injury.TeamID, injury.SeasonYear, injury.WeekNumber,
			injury.Status, injury.StatusDate, nullableString(injury.PrimaryInjury),
			injury.WeekID, injury.PracticeParticipation,
		).
		Suffix("ON CONFLICT (inj_player_id, inj_season_year, inj_week_number) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert injury query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert injury player=%d week=%d: %w", injury.PlayerID, injury.WeekNumber, err)
	}

	return nil
}
