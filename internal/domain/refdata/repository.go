package refdata

import "context"

type TeamRepository interface {
	// UUIDMap returns provider UUID -> internal team id for every known team.
	UUIDMap(ctx context.Context) (map[string]int64, error)
	IDByUUID(ctx context.Context, uuid string) (int64, bool, error)
	InsertTeams(ctx context.Context, teams []Team) (int, error)
}

type PlayerRepository interface {
	IDByUUID(ctx context.Context, uuid string) (int64, bool, error)
	// Upsert inserts or refreshes a player by provider UUID and returns the
	// internal id. Empty optional fields never clobber known values.
	Upsert(ctx context.Context, draft PlayerDraft) (int64, error)
}

type GameRepository interface {
	ListByWeek(ctx context.Context, seasonYear, week int) ([]Game, error)
	ListBySeason(ctx context.Context, seasonYear int) ([]Game, error)
}

type ScheduleRepository interface {
	InsertWeek(ctx context.Context, week Week) error
	WeekIDByUUID(ctx context.Context, uuid string) (int64, bool, error)
	InsertGame(ctx context.Context, game ScheduledGame) error
}

type InjuryRepository interface {
	Insert(ctx context.Context, injury Injury) error
}

type DepthChartRepository interface {
	Insert(ctx context.Context, entry DepthChartEntry) error
}
