package weekly

import (
	"context"

	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
)

// Row is one player's stat line for a single category, normalized to
// destination column names but not yet resolved to internal ids.
type Row struct {
	PlayerUUID string
	Draft      refdata.PlayerDraft
	TeamUUID   string
	Values     map[string]any
}

// KeyedRow is a fully resolved row ready for upsert: key column values plus
// data column values, both keyed by destination column name.
type KeyedRow struct {
	Key    map[string]any
	Values map[string]any
}

// GameKey identifies the game a batch of stat rows belongs to.
type GameKey struct {
	GameID     int64
	SeasonYear int
	Week       int
}

// FumbleLine is the reconciliation view of one fumbles-category row.
type FumbleLine struct {
	PlayerID int64
	TeamID   *int64
	Fumbles  int
	Lost     int
}

// Store opens per-game transactions against the stats schema. Every write
// for one game happens inside a single GameTx.
type Store interface {
	BeginGame(ctx context.Context) (GameTx, error)
}

// GameTx is the unit of work for one game: entity resolution, batched stat
// upserts, and the rushing/fumbles reconciliation all share its transaction.
type GameTx interface {
	TeamMap(ctx context.Context) (map[string]int64, error)
	TeamIDByUUID(ctx context.Context, uuid string) (int64, bool, error)
	PlayerIDByUUID(ctx context.Context, uuid string) (int64, bool, error)
	UpsertPlayer(ctx context.Context, draft refdata.PlayerDraft) (int64, error)
	UpsertStatRows(ctx context.Context, table string, keyColumns, dataColumns []string, rows []KeyedRow) error

	RushingFumbleColumnsPresent(ctx context.Context) (bool, error)
	RushingRowID(ctx context.Context, playerID int64, key GameKey) (int64, bool, error)
	SetRushingFumbles(ctx context.Context, rowID int64, fumbles, lost int) error
	InsertRushingFumbleRow(ctx context.Context, playerID int64, teamID *int64, key GameKey, fumbles, lost int) error

	Commit() error
	Rollback() error
}
