package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"

	"github.com/riskibarqy/gridiron-ingest/external/sportradar"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/weekly"
)

const defaultRateLimitBackoff = 60 * time.Second

const (
	StatsModeWeek   = "week"
	StatsModeSeason = "season"
)

// GameStatisticsFetcher fetches one game's raw statistics payload.
type GameStatisticsFetcher interface {
	GameStatistics(ctx context.Context, gameUUID string) (map[string]any, []byte, error)
}

// SnapshotWriter persists raw provider payloads for replay and debugging.
type SnapshotWriter interface {
	Write(kind string, raw []byte) (string, error)
}

// StatsIngestService loads weekly player statistics game by game. Each game
// runs in its own transaction; a failing game is logged and skipped so the
// rest of the batch still lands.
type StatsIngestService struct {
	games    refdata.GameRepository
	store    weekly.Store
	client   GameStatisticsFetcher
	snapshot SnapshotWriter
	logger   *zap.Logger
	backoff  time.Duration
	sleep    func(time.Duration)
	validate *validator.Validate
}

func NewStatsIngestService(
	games refdata.GameRepository,
	store weekly.Store,
	client GameStatisticsFetcher,
	snapshot SnapshotWriter,
	logger *zap.Logger,
	backoff time.Duration,
) *StatsIngestService {
	if backoff <= 0 {
		backoff = defaultRateLimitBackoff
	}
	return &StatsIngestService{
		games:    games,
		store:    store,
		client:   client,
		snapshot: snapshot,
		logger:   logger,
		backoff:  backoff,
		sleep:    time.Sleep,
		validate: validator.New(),
	}
}

type StatsRunOptions struct {
	Mode string `validate:"required,oneof=week season"`
	Year int    `validate:"required,gte=2000,lte=2100"`
	Week int    `validate:"omitempty,gte=1,lte=23"`
}

type StatsRunResult struct {
	GamesProcessed  int
	GamesFailed     int
	RowsUpserted    int
	FumblesUpdated  int
	FumblesInserted int
}

type gameResult struct {
	rows            int
	fumblesUpdated  int
	fumblesInserted int
}

func (s *StatsIngestService) Run(ctx context.Context, opts StatsRunOptions) (StatsRunResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsIngestService.Run")
	defer span.End()

	var result StatsRunResult
	if err := s.validate.StructCtx(ctx, opts); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if opts.Mode == StatsModeWeek && opts.Week <= 0 {
		return result, fmt.Errorf("%w: week is required in week mode", ErrInvalidInput)
	}

	var games []refdata.Game
	var err error
	switch opts.Mode {
	case StatsModeWeek:
		games, err = s.games.ListByWeek(ctx, opts.Year, opts.Week)
	case StatsModeSeason:
		games, err = s.games.ListBySeason(ctx, opts.Year)
	}
	if err != nil {
		return result, fmt.Errorf("list games: %w", err)
	}
	if len(games) == 0 {
		s.logger.Warn("no games found",
			zap.String("mode", opts.Mode),
			zap.Int("year", opts.Year),
			zap.Int("week", opts.Week))
		return result, nil
	}

	for _, game := range games {
		gr, err := s.processGameSafe(ctx, game)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			s.logger.Error("game ingest failed",
				zap.String("game_uuid", game.UUID),
				zap.Int("week", game.Week),
				zap.Error(err))
			result.GamesFailed++
			continue
		}
		result.GamesProcessed++
		result.RowsUpserted += gr.rows
		result.FumblesUpdated += gr.fumblesUpdated
		result.FumblesInserted += gr.fumblesInserted
		s.logger.Info("game ingested",
			zap.String("game_uuid", game.UUID),
			zap.Int("week", game.Week),
			zap.Int("rows", gr.rows))
	}
	return result, nil
}

// processGameSafe keeps a panicking game from taking down the whole run.
func (s *StatsIngestService) processGameSafe(ctx context.Context, game refdata.Game) (gameResult, error) {
	var result gameResult
	var err error
	recovered := panics.Try(func() {
		result, err = s.processGame(ctx, game)
	})
	if recovered != nil {
		return gameResult{}, fmt.Errorf("game %s panicked: %w", game.UUID, recovered.AsError())
	}
	return result, err
}

func (s *StatsIngestService) processGame(ctx context.Context, game refdata.Game) (gameResult, error) {
	var result gameResult

	payload, raw, err := s.fetchWithBackoff(ctx, game.UUID)
	if err != nil {
		return result, fmt.Errorf("fetch statistics: %w", err)
	}
	if s.snapshot != nil {
		if _, err := s.snapshot.Write("game_stats_"+game.UUID, raw); err != nil {
			s.logger.Warn("write snapshot", zap.String("game_uuid", game.UUID), zap.Error(err))
		}
	}

	tx, err := s.store.BeginGame(ctx)
	if err != nil {
		return result, fmt.Errorf("begin game tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	resolver, err := newRowResolver(ctx, tx, s.logger)
	if err != nil {
		return result, err
	}

	key := weekly.GameKey{GameID: game.GameID, SeasonYear: game.SeasonYear, Week: game.Week}
	sides := gameTeamSides(payload)
	if len(sides) == 0 {
		s.logger.Warn("payload has no team statistics", zap.String("game_uuid", game.UUID))
	}

	xpConfig, _ := weekly.CategoryByName(weekly.CategoryExtraPoints)

	var fumbleLines []weekly.FumbleLine
	for _, cfg := range weekly.Categories() {
		if cfg.Name == weekly.CategoryExtraPoints {
			// Folded into the field-goals pass; both share the kicking table.
			continue
		}

		var normalized []weekly.Row
		for _, side := range sides {
			if cfg.Name == weekly.CategoryFieldGoals {
				fieldGoals := normalizeCategory(cfg, side)
				extraPoints := normalizeCategory(xpConfig, side)
				normalized = append(normalized, mergeKickingRows(fieldGoals, extraPoints)...)
				continue
			}
			normalized = append(normalized, normalizeCategory(cfg, side)...)
		}

		keyed, err := resolver.resolve(ctx, cfg, normalized, key)
		if err != nil {
			return result, err
		}

		dataColumns := cfg.DataColumns
		if cfg.Name == weekly.CategoryFieldGoals {
			dataColumns = kickingDataColumns()
		}
		if err := tx.UpsertStatRows(ctx, cfg.Table, cfg.KeyColumns, dataColumns, keyed); err != nil {
			return result, err
		}
		result.rows += len(keyed)
		s.logger.Debug("category ingested",
			zap.String("game_uuid", game.UUID),
			zap.String("category", cfg.Name),
			zap.Int("rows", len(keyed)),
			zap.Int("skipped", len(normalized)-len(keyed)))

		if cfg.Name == weekly.CategoryFumbles {
			fumbleLines = fumbleLinesFromRows(cfg, keyed)
		}
	}

	updated, inserted, err := reconcileRushingFumbles(ctx, tx, key, fumbleLines, s.logger)
	if err != nil {
		return result, err
	}
	result.fumblesUpdated = updated
	result.fumblesInserted = inserted

	if err := tx.Commit(); err != nil {
		return result, err
	}
	return result, nil
}

// fetchWithBackoff retries a rate-limited fetch forever with a fixed pause.
// Any other error is returned to the caller, which abandons the game.
func (s *StatsIngestService) fetchWithBackoff(ctx context.Context, gameUUID string) (map[string]any, []byte, error) {
	for {
		payload, raw, err := s.client.GameStatistics(ctx, gameUUID)
		if err == nil {
			return payload, raw, nil
		}
		if !sportradar.IsRateLimited(err) {
			return nil, nil, err
		}
		s.logger.Warn("provider rate limited, backing off",
			zap.String("game_uuid", gameUUID),
			zap.Duration("backoff", s.backoff))
		s.sleep(s.backoff)
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
	}
}
