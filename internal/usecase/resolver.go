package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/riskibarqy/gridiron-ingest/internal/domain/weekly"
)

// rowResolver turns provider UUIDs into internal ids within one game
// transaction. The team map is loaded once per game; players are cached as
// they resolve so a player appearing in several categories costs one lookup.
type rowResolver struct {
	tx      weekly.GameTx
	logger  *zap.Logger
	teams   map[string]int64
	players map[string]int64
}

func newRowResolver(ctx context.Context, tx weekly.GameTx, logger *zap.Logger) (*rowResolver, error) {
	teams, err := tx.TeamMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("load team map: %w", err)
	}
	return &rowResolver{
		tx:      tx,
		logger:  logger,
		teams:   teams,
		players: make(map[string]int64, 64),
	}, nil
}

// resolve converts normalized rows into keyed rows ready for upsert. Rows
// whose team UUID cannot be resolved are skipped with a warning; unknown
// players are created on the spot.
func (r *rowResolver) resolve(ctx context.Context, cfg weekly.CategoryConfig, rows []weekly.Row, key weekly.GameKey) ([]weekly.KeyedRow, error) {
	keyed := make([]weekly.KeyedRow, 0, len(rows))
	for _, row := range rows {
		teamID, ok, err := r.teamID(ctx, row.TeamUUID)
		if err != nil {
			return nil, err
		}
		if !ok {
			r.logger.Warn("unknown team uuid, skipping row",
				zap.String("category", cfg.Name),
				zap.String("team_uuid", row.TeamUUID),
				zap.String("player_uuid", row.PlayerUUID))
			continue
		}

		playerID, err := r.playerID(ctx, row)
		if err != nil {
			return nil, err
		}

		keyed = append(keyed, weekly.KeyedRow{
			Key: map[string]any{
				cfg.PlayerIDColumn(): playerID,
				cfg.TeamIDColumn():   teamID,
				cfg.GameIDColumn():   key.GameID,
				cfg.SeasonColumn():   key.SeasonYear,
				cfg.WeekColumn():     key.Week,
			},
			Values: row.Values,
		})
	}
	return keyed, nil
}

func (r *rowResolver) teamID(ctx context.Context, uuid string) (int64, bool, error) {
	if id, ok := r.teams[uuid]; ok {
		return id, true, nil
	}
	id, ok, err := r.tx.TeamIDByUUID(ctx, uuid)
	if err != nil {
		return 0, false, fmt.Errorf("resolve team uuid=%s: %w", uuid, err)
	}
	if ok {
		r.teams[uuid] = id
	}
	return id, ok, nil
}

func (r *rowResolver) playerID(ctx context.Context, row weekly.Row) (int64, error) {
	if id, ok := r.players[row.PlayerUUID]; ok {
		return id, nil
	}

	id, ok, err := r.tx.PlayerIDByUUID(ctx, row.PlayerUUID)
	if err != nil {
		return 0, fmt.Errorf("resolve player uuid=%s: %w", row.PlayerUUID, err)
	}
	if !ok {
		draft := row.Draft
		if draft.Name == "" {
			draft.Name = placeholderPlayerName(draft.UUID)
		}
		if draft.Position == "" {
			draft.Position = "UNK"
		}
		r.logger.Warn("player not found, creating from payload",
			zap.String("player_uuid", draft.UUID),
			zap.String("player_name", draft.Name))
		id, err = r.tx.UpsertPlayer(ctx, draft)
		if err != nil {
			return 0, err
		}
	}

	r.players[row.PlayerUUID] = id
	return id, nil
}

// placeholderPlayerName labels a player the provider never named. The UUID
// tail keeps placeholders distinguishable in reports.
func placeholderPlayerName(uuid string) string {
	tail := uuid
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}
	return "Player-" + tail
}
