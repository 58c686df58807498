package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	qb "github.com/riskibarqy/gridiron-ingest/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

var gameSelectColumns = []string{
	"game_id",
	"game_sr_uuid",
	"game_week",
	"game_season_year",
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListByWeek(ctx context.Context, seasonYear, week int) ([]refdata.Game, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("refdata.game").
		Where(
			qb.Eq("game_season_year", seasonYear),
			qb.Eq("game_week", week),
		).
		OrderBy("game_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games by week query: %w", err)
	}

	var rows []refdata.Game
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games by week: %w", err)
	}

	return rows, nil
}

func (r *GameRepository) ListBySeason(ctx context.Context, seasonYear int) ([]refdata.Game, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("refdata.game").
		Where(qb.Eq("game_season_year", seasonYear)).
		OrderBy("game_week", "game_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games by season query: %w", err)
	}

	var rows []refdata.Game
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games by season: %w", err)
	}

	return rows, nil
}
