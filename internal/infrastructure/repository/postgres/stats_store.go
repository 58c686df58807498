package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/weekly"
	qb "github.com/riskibarqy/gridiron-ingest/internal/platform/querybuilder"
)

// StatsStore writes weekly player statistics. All writes for one game share a
// single transaction opened by BeginGame.
type StatsStore struct {
	db *sqlx.DB
}

func NewStatsStore(db *sqlx.DB) *StatsStore {
	return &StatsStore{db: db}
}

func (s *StatsStore) BeginGame(ctx context.Context) (weekly.GameTx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin game tx: %w", err)
	}
	return &gameTx{tx: tx}, nil
}

type gameTx struct {
	tx *sqlx.Tx
}

func (g *gameTx) TeamMap(ctx context.Context) (map[string]int64, error) {
	return teamUUIDMap(ctx, g.tx)
}

func (g *gameTx) TeamIDByUUID(ctx context.Context, uuid string) (int64, bool, error) {
	return teamIDByUUID(ctx, g.tx, uuid)
}

func (g *gameTx) PlayerIDByUUID(ctx context.Context, uuid string) (int64, bool, error) {
	return playerIDByUUID(ctx, g.tx, uuid)
}

func (g *gameTx) UpsertPlayer(ctx context.Context, draft refdata.PlayerDraft) (int64, error) {
	return upsertPlayer(ctx, g.tx, draft)
}

func (g *gameTx) UpsertStatRows(ctx context.Context, table string, keyColumns, dataColumns []string, rows []weekly.KeyedRow) error {
	if len(rows) == 0 {
		return nil
	}

	query, args, err := buildStatUpsert(table, keyColumns, dataColumns, rows)
	if err != nil {
		return fmt.Errorf("build upsert %s query: %w", table, err)
	}

	if _, err := g.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s rows: %w", table, err)
	}

	return nil
}

// buildStatUpsert assembles one multi-row INSERT whose conflict target is the
// natural key, so replaying a game overwrites data columns in place.
func buildStatUpsert(table string, keyColumns, dataColumns []string, rows []weekly.KeyedRow) (string, []any, error) {
	columns := make([]string, 0, len(keyColumns)+len(dataColumns))
	columns = append(columns, keyColumns...)
	columns = append(columns, dataColumns...)

	builder := qb.InsertInto("stats." + table).Columns(columns...)
	for _, row := range rows {
		values := make([]any, 0, len(columns))
		for _, col := range keyColumns {
			values = append(values, row.Key[col])
		}
		for _, col := range dataColumns {
			value, ok := row.Values[col]
			if !ok {
				value = 0
			}
			values = append(values, value)
		}
		builder.Values(values...)
	}

	var suffix strings.Builder
	suffix.WriteString("ON CONFLICT (")
	suffix.WriteString(strings.Join(keyColumns, ", "))
	suffix.WriteString(")")
	if len(dataColumns) == 0 {
		suffix.WriteString(" DO NOTHING")
	} else {
		suffix.WriteString(" DO UPDATE SET ")
		for i, col := range dataColumns {
			if i > 0 {
				suffix.WriteString(", ")
			}
			suffix.WriteString(col)
			suffix.WriteString(" = EXCLUDED.")
			suffix.WriteString(col)
		}
	}

	return builder.Suffix(suffix.String()).ToSQL()
}

// RushingFumbleColumnsPresent reports whether the rushing table carries the
// fumble columns the reconciliation pass writes. Older schemas predate them.
func (g *gameTx) RushingFumbleColumnsPresent(ctx context.Context) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("information_schema.columns").
		Where(
			qb.Eq("table_schema", "stats"),
			qb.Eq("table_name", weekly.RushingTable),
			qb.Expr("column_name IN (?, ?)", weekly.RushingFumblesColumn, weekly.RushingFumblesLostCol),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build rushing fumble columns query: %w", err)
	}

	var count int
	if err := g.tx.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check rushing fumble columns: %w", err)
	}

	return count == 2, nil
}

func (g *gameTx) RushingRowID(ctx context.Context, playerID int64, key weekly.GameKey) (int64, bool, error) {
	query, args, err := qb.Select("psw_rush_id").From("stats."+weekly.RushingTable).
		Where(
			qb.Eq("psw_rush_player_id", playerID),
			qb.Eq("psw_rush_game_id", key.GameID),
			qb.Eq("psw_rush_season_year", key.SeasonYear),
			qb.Eq("psw_rush_week_number", key.Week),
		).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select rushing row query: %w", err)
	}

	var id int64
	if err := g.tx.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select rushing row: %w", err)
	}

	return id, true, nil
}

func (g *gameTx) SetRushingFumbles(ctx context.Context, rowID int64, fumbles, lost int) error {
	query, args, err := qb.Update("stats."+weekly.RushingTable).
		Set(weekly.RushingFumblesColumn, fumbles).
		Set(weekly.RushingFumblesLostCol, lost).
		SetExpr("psw_rush_updated_at", "NOW()").
		Where(qb.Eq("psw_rush_id", rowID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update rushing fumbles query: %w", err)
	}

	if _, err := g.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update rushing fumbles row=%d: %w", rowID, err)
	}

	return nil
}

// InsertRushingFumbleRow creates a rushing line for a player who fumbled but
// never rushed, with every non-fumble numeric column zeroed.
func (g *gameTx) InsertRushingFumbleRow(ctx context.Context, playerID int64, teamID *int64, key weekly.GameKey, fumbles, lost int) error {
	query, args, err := qb.InsertInto("stats."+weekly.RushingTable).
		Columns(
			"psw_rush_player_id", "psw_rush_team_id", "psw_rush_game_id",
			"psw_rush_season_year", "psw_rush_week_number",
			"psw_rush_attempts", "psw_rush_yards",
			weekly.RushingFumblesColumn, weekly.RushingFumblesLostCol,
			"psw_rush_touchdowns", "psw_rush_avg_yards", "psw_rush_longest",
		).
		Values(
			playerID, teamID, key.GameID,
			key.SeasonYear, key.Week,
			0, 0,
			fumbles, lost,
			0, 0.0, 0,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert rushing fumble row query: %w", err)
	}

	if _, err := g.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert rushing fumble row player=%d: %w", playerID, err)
	}

	return nil
}

func (g *gameTx) Commit() error {
	if err := g.tx.Commit(); err != nil {
		return fmt.Errorf("commit game tx: %w", err)
	}
	return nil
}

func (g *gameTx) Rollback() error {
	return g.tx.Rollback()
}
