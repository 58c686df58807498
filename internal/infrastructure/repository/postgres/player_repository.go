package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	qb "github.com/riskibarqy/gridiron-ingest/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) IDByUUID(ctx context.Context, uuid string) (int64, bool, error) {
	return playerIDByUUID(ctx, r.db, uuid)
}

func (r *PlayerRepository) Upsert(ctx context.Context, draft refdata.PlayerDraft) (int64, error) {
	return upsertPlayer(ctx, r.db, draft)
}

func playerIDByUUID(ctx context.Context, q sqlx.QueryerContext, uuid string) (int64, bool, error) {
	query, args, err := qb.Select("player_id").From("refdata.player").
		Where(qb.Eq("player_sr_uuid", uuid)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select player by uuid query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, q, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select player by uuid: %w", err)
	}

	return id, true, nil
}

// Optional fields never clobber known values: COALESCE keeps the stored
// team, position, and number when the incoming draft omits them.
const playerUpsertConflict = `ON CONFLICT (player_sr_uuid) DO UPDATE SET
    player_name = EXCLUDED.player_name,
    player_first_name = EXCLUDED.player_first_name,
    player_last_name = EXCLUDED.player_last_name,
    player_team_id = COALESCE(EXCLUDED.player_team_id, refdata.player.player_team_id),
    player_position = COALESCE(EXCLUDED.player_position, refdata.player.player_position),
    player_number = COALESCE(EXCLUDED.player_number, refdata.player.player_number)`

func upsertPlayer(ctx context.Context, ext sqlx.ExtContext, draft refdata.PlayerDraft) (int64, error) {
	var teamID *int64
	if draft.TeamUUID != "" {
		id, ok, err := teamIDByUUID(ctx, ext, draft.TeamUUID)
		if err != nil {
			return 0, err
		}
		if ok {
			teamID = &id
		}
	}

	query, args, err := buildPlayerUpsert(draft, teamID)
	if err != nil {
		return 0, fmt.Errorf("build upsert player query: %w", err)
	}

	var playerID int64
	if err := sqlx.GetContext(ctx, ext, &playerID, query, args...); err != nil {
		return 0, fmt.Errorf("upsert player uuid=%s: %w", draft.UUID, err)
	}

	return playerID, nil
}

func buildPlayerUpsert(draft refdata.PlayerDraft, teamID *int64) (string, []any, error) {
	first, last := splitPlayerName(draft.Name)

	return qb.InsertInto("refdata.player").
		Columns(
			"player_name", "player_first_name", "player_last_name",
			"player_team_id", "player_position", "player_sr_uuid", "player_number",
		).
		Values(
			draft.Name, first, last,
			teamID, nullableString(draft.Position), draft.UUID, nullableString(draft.Jersey),
		).
		Suffix(playerUpsertConflict).
		Returning("player_id").
		ToSQL()
}

func splitPlayerName(name string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
