package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/riskibarqy/gridiron-ingest/external/sportradar"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
)

// SeasonScheduleFetcher fetches a season's full regular-season schedule.
type SeasonScheduleFetcher interface {
	SeasonSchedule(ctx context.Context, year int) (sportradar.SchedulePayload, []byte, error)
}

// ScheduleLoadService loads refdata.week and refdata.game from the season
// schedule. Week date bounds come from the earliest and latest kickoff in
// each week.
type ScheduleLoadService struct {
	teams    refdata.TeamRepository
	schedule refdata.ScheduleRepository
	client   SeasonScheduleFetcher
	snapshot SnapshotWriter
	logger   *zap.Logger
	validate *validator.Validate
}

func NewScheduleLoadService(
	teams refdata.TeamRepository,
	schedule refdata.ScheduleRepository,
	client SeasonScheduleFetcher,
	snapshot SnapshotWriter,
	logger *zap.Logger,
) *ScheduleLoadService {
	return &ScheduleLoadService{
		teams:    teams,
		schedule: schedule,
		client:   client,
		snapshot: snapshot,
		logger:   logger,
		validate: validator.New(),
	}
}

type ScheduleLoadOptions struct {
	Year int `validate:"required,gte=2000,lte=2100"`
}

type ScheduleLoadResult struct {
	Weeks int
	Games int
}

func (s *ScheduleLoadService) Run(ctx context.Context, opts ScheduleLoadOptions) (ScheduleLoadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleLoadService.Run")
	defer span.End()

	var result ScheduleLoadResult
	if err := s.validate.StructCtx(ctx, opts); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	payload, raw, err := s.client.SeasonSchedule(ctx, opts.Year)
	if err != nil {
		return result, fmt.Errorf("fetch schedule: %w", err)
	}
	if s.snapshot != nil {
		if _, err := s.snapshot.Write("schedule", raw); err != nil {
			s.logger.Warn("write snapshot", zap.Error(err))
		}
	}

	teamMap, err := s.teams.UUIDMap(ctx)
	if err != nil {
		return result, fmt.Errorf("load team map: %w", err)
	}

	for _, week := range payload.Weeks {
		kickoffs := make(map[string]time.Time, len(week.Games))
		for _, game := range week.Games {
			at, err := time.Parse(time.RFC3339, game.Scheduled)
			if err != nil {
				s.logger.Warn("unparseable kickoff, skipping game",
					zap.String("game_uuid", game.ID),
					zap.String("scheduled", game.Scheduled))
				continue
			}
			kickoffs[game.ID] = at
		}
		if len(kickoffs) == 0 {
			s.logger.Warn("week has no scheduled games", zap.Int("week", week.Sequence))
			continue
		}

		start, end := kickoffBounds(kickoffs)
		if err := s.schedule.InsertWeek(ctx, refdata.Week{
			UUID:       week.ID,
			SeasonYear: opts.Year,
			SeasonType: payload.Type,
			Number:     week.Sequence,
			StartDate:  start,
			EndDate:    end,
		}); err != nil {
			return result, err
		}
		result.Weeks++

		weekID, ok, err := s.schedule.WeekIDByUUID(ctx, week.ID)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, fmt.Errorf("week %d missing after insert", week.Sequence)
		}

		for _, game := range week.Games {
			kickoff, ok := kickoffs[game.ID]
			if !ok {
				continue
			}
			homeID, homeOK := teamMap[game.Home.ID]
			awayID, awayOK := teamMap[game.Away.ID]
			if !homeOK || !awayOK {
				s.logger.Warn("unknown team in schedule, skipping game",
					zap.String("game_uuid", game.ID),
					zap.String("home_uuid", game.Home.ID),
					zap.String("away_uuid", game.Away.ID))
				continue
			}

			if err := s.schedule.InsertGame(ctx, refdata.ScheduledGame{
				Week:       week.Sequence,
				SeasonYear: opts.Year,
				HomeTeamID: homeID,
				AwayTeamID: awayID,
				Date:       kickoff,
				HomeScore:  game.Scoring.HomePoints,
				AwayScore:  game.Scoring.AwayPoints,
				UUID:       game.ID,
				WeekID:     weekID,
			}); err != nil {
				return result, err
			}
			result.Games++
		}
	}

	s.logger.Info("schedule loaded",
		zap.Int("year", opts.Year),
		zap.Int("weeks", result.Weeks),
		zap.Int("games", result.Games))
	return result, nil
}

func kickoffBounds(kickoffs map[string]time.Time) (start, end time.Time) {
	for _, at := range kickoffs {
		if start.IsZero() || at.Before(start) {
			start = at
		}
		if end.IsZero() || at.After(end) {
			end = at
		}
	}
	return start, end
}
