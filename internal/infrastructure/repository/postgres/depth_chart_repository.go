package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	qb "github.com/riskibarqy/gridiron-ingest/internal/platform/querybuilder"
)

type DepthChartRepository struct {
	db *sqlx.DB
}

func NewDepthChartRepository(db *sqlx.DB) *DepthChartRepository {
	return &DepthChartRepository{db: db}
}

type depthChartRow struct {
	TeamID     int64  `db:"dc_team_id"`
	SeasonYear int    `db:"dc_season_year"`
	Week       int    `db:"dc_week"`
	PlayerID   int64  `db:"dc_player_id"`
	Position   string `db:"dc_player_position"`
	Alignment  string `db:"dc_player_position_alignment"`
	Rank       int    `db:"dc_rank"`
}

const depthChartInsertConflict = `ON CONFLICT (dc_team_id, dc_season_year, dc_week, dc_player_id,
    dc_player_position, dc_player_position_alignment) DO NOTHING`

func (r *DepthChartRepository) Insert(ctx context.Context, entry refdata.DepthChartEntry) error {
	row := depthChartRow{
		TeamID:     entry.TeamID,
		SeasonYear: entry.SeasonYear,
		Week:       entry.Week,
		PlayerID:   entry.PlayerID,
		Position:   entry.Position,
		Alignment:  entry.Alignment,
		Rank:       entry.Rank,
	}

	query, args, err := qb.InsertModel("refdata.depth_chart_weekly", row, depthChartInsertConflict)
	if err != nil {
		return fmt.Errorf("build insert depth chart entry query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert depth chart entry player=%d week=%d: %w", entry.PlayerID, entry.Week, err)
	}

	return nil
}
