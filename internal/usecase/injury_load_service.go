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

// InjuriesFetcher fetches one week's practice injury reports.
type InjuriesFetcher interface {
	WeeklyInjuries(ctx context.Context, year, week int) (sportradar.InjuriesPayload, []byte, error)
}

// practiceStatusMap canonicalizes the provider's long-form practice
// participation strings. Reports with an unrecognized status are skipped.
var practiceStatusMap = map[string]string{
	"Did Not Participate In Practice":   "DNP",
	"Limited Participation In Practice": "Limited",
	"Full Participation In Practice":    "Full",
}

// InjuryLoadService loads refdata.injury_weekly from weekly practice
// reports. Players the reports mention before any stats ingest are created
// from the report itself.
type InjuryLoadService struct {
	teams    refdata.TeamRepository
	players  refdata.PlayerRepository
	schedule refdata.ScheduleRepository
	injuries refdata.InjuryRepository
	client   InjuriesFetcher
	snapshot SnapshotWriter
	logger   *zap.Logger
	backoff  time.Duration
	sleep    func(time.Duration)
	validate *validator.Validate
}

func NewInjuryLoadService(
	teams refdata.TeamRepository,
	players refdata.PlayerRepository,
	schedule refdata.ScheduleRepository,
	injuries refdata.InjuryRepository,
	client InjuriesFetcher,
	snapshot SnapshotWriter,
	logger *zap.Logger,
	backoff time.Duration,
) *InjuryLoadService {
	if backoff <= 0 {
		backoff = defaultRateLimitBackoff
	}
	return &InjuryLoadService{
		teams:    teams,
		players:  players,
		schedule: schedule,
		injuries: injuries,
		client:   client,
		snapshot: snapshot,
		logger:   logger,
		backoff:  backoff,
		sleep:    time.Sleep,
		validate: validator.New(),
	}
}

type InjuryLoadOptions struct {
	Year int `validate:"required,gte=2000,lte=2100"`
	Week int `validate:"required,gte=1,lte=23"`
}

func (s *InjuryLoadService) Run(ctx context.Context, opts InjuryLoadOptions) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InjuryLoadService.Run")
	defer span.End()

	if err := s.validate.StructCtx(ctx, opts); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	payload, raw, err := s.fetchWithBackoff(ctx, opts.Year, opts.Week)
	if err != nil {
		return 0, fmt.Errorf("fetch injuries: %w", err)
	}
	if s.snapshot != nil {
		if _, err := s.snapshot.Write("injuries", raw); err != nil {
			s.logger.Warn("write snapshot", zap.Error(err))
		}
	}

	weekID, ok, err := s.schedule.WeekIDByUUID(ctx, payload.Week.ID)
	if err != nil {
		return 0, fmt.Errorf("resolve week uuid=%s: %w", payload.Week.ID, err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: week uuid=%s not loaded, run the schedule loader first", ErrNotFound, payload.Week.ID)
	}

	inserted := 0
	for _, team := range payload.Teams {
		teamID, ok, err := s.teams.IDByUUID(ctx, team.ID)
		if err != nil {
			return inserted, fmt.Errorf("resolve team uuid=%s: %w", team.ID, err)
		}
		if !ok {
			s.logger.Warn("unknown team in injury report, skipping",
				zap.String("team_uuid", team.ID))
			continue
		}

		for _, player := range team.Players {
			playerID, err := s.resolvePlayer(ctx, team.ID, player)
			if err != nil {
				s.logger.Error("resolve injured player",
					zap.String("player_uuid", player.ID),
					zap.Error(err))
				continue
			}

			for _, item := range player.Injuries {
				practice, ok := practiceStatusMap[item.Practice.Status]
				if !ok {
					s.logger.Warn("unrecognized practice status, skipping report",
						zap.String("player_uuid", player.ID),
						zap.String("practice_status", item.Practice.Status))
					continue
				}

				status := item.Status
				if status == "" {
					status = "Healthy"
				}

				if err := s.injuries.Insert(ctx, refdata.Injury{
					PlayerID:              playerID,
					TeamID:                teamID,
					SeasonYear:            opts.Year,
					WeekNumber:            opts.Week,
					Status:                status,
					StatusDate:            parseStatusDate(item.StatusDate),
					PrimaryInjury:         item.Primary,
					WeekID:                weekID,
					PracticeParticipation: practice,
				}); err != nil {
					s.logger.Error("insert injury",
						zap.String("player_uuid", player.ID),
						zap.Error(err))
					continue
				}
				inserted++
			}
		}
	}

	s.logger.Info("injuries loaded",
		zap.Int("year", opts.Year),
		zap.Int("week", opts.Week),
		zap.Int("reports", inserted))
	return inserted, nil
}

func (s *InjuryLoadService) resolvePlayer(ctx context.Context, teamUUID string, player sportradar.InjuryPlayer) (int64, error) {
	id, ok, err := s.players.IDByUUID(ctx, player.ID)
	if err != nil {
		return 0, err
	}
	if ok {
		return id, nil
	}
	return s.players.Upsert(ctx, refdata.PlayerDraft{
		UUID:     player.ID,
		Name:     player.Name,
		TeamUUID: teamUUID,
		Position: player.Position,
		Jersey:   player.Jersey,
	})
}

func (s *InjuryLoadService) fetchWithBackoff(ctx context.Context, year, week int) (sportradar.InjuriesPayload, []byte, error) {
	for {
		payload, raw, err := s.client.WeeklyInjuries(ctx, year, week)
		if err == nil {
			return payload, raw, nil
		}
		if !sportradar.IsRateLimited(err) {
			return sportradar.InjuriesPayload{}, nil, err
		}
		s.logger.Warn("provider rate limited, backing off",
			zap.Int("week", week),
			zap.Duration("backoff", s.backoff))
		s.sleep(s.backoff)
		if err := ctx.Err(); err != nil {
			return sportradar.InjuriesPayload{}, nil, err
		}
	}
}

// parseStatusDate falls back to the Unix epoch when the provider omits or
// mangles the report date, so the row still satisfies the schema.
func parseStatusDate(raw string) time.Time {
	if raw == "" {
		return time.Unix(0, 0).UTC()
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return at
}
