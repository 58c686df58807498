package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/riskibarqy/gridiron-ingest/internal/domain/weekly"
)

// fumbleLinesFromRows projects resolved fumbles-category rows down to the
// fields the rushing reconciliation needs.
func fumbleLinesFromRows(cfg weekly.CategoryConfig, rows []weekly.KeyedRow) []weekly.FumbleLine {
	lines := make([]weekly.FumbleLine, 0, len(rows))
	for _, row := range rows {
		playerID, ok := row.Key[cfg.PlayerIDColumn()].(int64)
		if !ok {
			continue
		}
		line := weekly.FumbleLine{
			PlayerID: playerID,
			Fumbles:  asInt(row.Values[weekly.FumblesColumn]),
			Lost:     asInt(row.Values[weekly.FumblesLostColumn]),
		}
		if teamID, ok := row.Key[cfg.TeamIDColumn()].(int64); ok {
			line.TeamID = &teamID
		}
		lines = append(lines, line)
	}
	return lines
}

// reconcileRushingFumbles copies fumbles-category totals onto each player's
// rushing row for the same game, inserting a zeroed rushing row when the
// player never carried the ball. Skipped entirely when the rushing table does
// not carry the fumble columns.
func reconcileRushingFumbles(ctx context.Context, tx weekly.GameTx, key weekly.GameKey, lines []weekly.FumbleLine, logger *zap.Logger) (updated, inserted int, err error) {
	if len(lines) == 0 {
		return 0, 0, nil
	}

	present, err := tx.RushingFumbleColumnsPresent(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("check rushing fumble columns: %w", err)
	}
	if !present {
		logger.Warn("rushing table has no fumble columns, skipping reconciliation",
			zap.Int64("game_id", key.GameID))
		return 0, 0, nil
	}

	for _, line := range lines {
		rowID, ok, err := tx.RushingRowID(ctx, line.PlayerID, key)
		if err != nil {
			return updated, inserted, fmt.Errorf("find rushing row player=%d: %w", line.PlayerID, err)
		}
		if ok {
			if err := tx.SetRushingFumbles(ctx, rowID, line.Fumbles, line.Lost); err != nil {
				return updated, inserted, fmt.Errorf("update rushing fumbles player=%d: %w", line.PlayerID, err)
			}
			updated++
			continue
		}
		if err := tx.InsertRushingFumbleRow(ctx, line.PlayerID, line.TeamID, key, line.Fumbles, line.Lost); err != nil {
			return updated, inserted, fmt.Errorf("insert rushing fumble row player=%d: %w", line.PlayerID, err)
		}
		inserted++
	}
	return updated, inserted, nil
}
