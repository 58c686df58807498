package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	qb "github.com/riskibarqy/gridiron-ingest/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) InsertWeek(ctx context.Context, week refdata.Week) error {
	query, args, err := qb.InsertInto("refdata.week").
		Columns(
			"week_sr_uuid", "week_season_year", "week_season_type",
			"week_number", "week_start_date", "week_end_date",
		).
		Values(
			week.UUID, week.SeasonYear, week.SeasonType,
			week.Number, week.StartDate, week.EndDate,
		).
		Suffix("ON CONFLICT (week_season_year, week_season_type, week_number) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert week query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert week uuid=%s: %w", week.UUID, err)
	}

	return nil
}

func (r *ScheduleRepository) WeekIDByUUID(ctx context.Context, uuid string) (int64, bool, error) {
	query, args, err := qb.Select("week_id").From("refdata.week").
		Where(qb.Eq("week_sr_uuid", uuid)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select week by uuid query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select week by uuid: %w", err)
	}

	return id, true, nil
}

func (r *ScheduleRepository) InsertGame(ctx context.Context, game refdata.ScheduledGame) error {
	query, args, err := qb.InsertInto("refdata.game").
		Columns(
			"game_week", "game_season_year", "game_home_team_id", "game_away_team_id",
			"game_date", "game_home_score", "game_away_score", "game_sr_uuid", "game_week_id",
		).
		Values(
			game.Week, game.SeasonYear, game.HomeTeamID, game.AwayTeamID,
			game.Date, game.HomeScore, game.AwayScore, game.UUID, game.WeekID,
		).
		Suffix("ON CONFLICT (game_week, game_season_year, game_home_team_id, game_away_team_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert game uuid=%s: %w", game.UUID, err)
	}

	return nil
}
