package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	qb "github.com/riskibarqy/gridiron-ingest/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) UUIDMap(ctx context.Context) (map[string]int64, error) {
	return teamUUIDMap(ctx, r.db)
}

func (r *TeamRepository) IDByUUID(ctx context.Context, uuid string) (int64, bool, error) {
	return teamIDByUUID(ctx, r.db, uuid)
}

// InsertTeams inserts teams that are not yet known, keyed by provider UUID.
// Existing teams are left untouched. Returns the number of rows actually
// written.
func (r *TeamRepository) InsertTeams(ctx context.Context, teams []refdata.Team) (int, error) {
	inserted := 0
	for _, team := range teams {
		query, args, err := qb.InsertInto("refdata.team").
			Columns("team_sr_uuid", "team_name", "team_market", "team_abbreviation").
			Values(team.UUID, team.Name, team.Market, team.Abbreviation).
			Suffix("ON CONFLICT (team_sr_uuid) DO NOTHING").
			ToSQL()
		if err != nil {
			return inserted, fmt.Errorf("build insert team query: %w", err)
		}

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("insert team uuid=%s: %w", team.UUID, err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected > 0 {
			inserted++
		}
	}

	return inserted, nil
}

type teamIDRow struct {
	ID   int64  `db:"team_id"`
	UUID string `db:"team_sr_uuid"`
}

func teamUUIDMap(ctx context.Context, q sqlx.QueryerContext) (map[string]int64, error) {
	query, args, err := qb.Select("team_id", "team_sr_uuid").From("refdata.team").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team map query: %w", err)
	}

	var rows []teamIDRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team map: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.UUID] = row.ID
	}
	return out, nil
}

func teamIDByUUID(ctx context.Context, q sqlx.QueryerContext, uuid string) (int64, bool, error) {
	query, args, err := qb.Select("team_id").From("refdata.team").
		Where(qb.Eq("team_sr_uuid", uuid)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select team by uuid query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, q, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select team by uuid: %w", err)
	}

	return id, true, nil
}
