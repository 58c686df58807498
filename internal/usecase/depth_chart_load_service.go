package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/riskibarqy/gridiron-ingest/external/sportradar"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
)

// DepthChartsFetcher fetches one week's depth charts for every team.
type DepthChartsFetcher interface {
	WeeklyDepthCharts(ctx context.Context, year, week int) (sportradar.DepthChartsPayload, []byte, error)
}

// DepthChartLoadService loads refdata.depth_chart_weekly. Every charted
// player is upserted into refdata.player first so the chart row always has an
// internal id to point at.
type DepthChartLoadService struct {
	teams       refdata.TeamRepository
	players     refdata.PlayerRepository
	depthCharts refdata.DepthChartRepository
	client      DepthChartsFetcher
	snapshot    SnapshotWriter
	logger      *zap.Logger
	validate    *validator.Validate
}

func NewDepthChartLoadService(
	teams refdata.TeamRepository,
	players refdata.PlayerRepository,
	depthCharts refdata.DepthChartRepository,
	client DepthChartsFetcher,
	snapshot SnapshotWriter,
	logger *zap.Logger,
) *DepthChartLoadService {
	return &DepthChartLoadService{
		teams:       teams,
		players:     players,
		depthCharts: depthCharts,
		client:      client,
		snapshot:    snapshot,
		logger:      logger,
		validate:    validator.New(),
	}
}

type DepthChartLoadOptions struct {
	Year int `validate:"required,gte=2000,lte=2100"`
	Week int `validate:"required,gte=1,lte=23"`
}

func (s *DepthChartLoadService) Run(ctx context.Context, opts DepthChartLoadOptions) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartLoadService.Run")
	defer span.End()

	if err := s.validate.StructCtx(ctx, opts); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	payload, raw, err := s.client.WeeklyDepthCharts(ctx, opts.Year, opts.Week)
	if err != nil {
		return 0, fmt.Errorf("fetch depth charts: %w", err)
	}
	if s.snapshot != nil {
		if _, err := s.snapshot.Write("depth_charts", raw); err != nil {
			s.logger.Warn("write snapshot", zap.Error(err))
		}
	}

	year := payload.Season.Year
	if year == 0 {
		year = opts.Year
	}
	week := payload.Week.Sequence
	if week == 0 {
		week = opts.Week
	}

	teamMap, err := s.teams.UUIDMap(ctx)
	if err != nil {
		return 0, fmt.Errorf("load team map: %w", err)
	}

	inserted := 0
	for _, team := range payload.Teams {
		teamID, ok := teamMap[team.ID]
		if !ok {
			s.logger.Warn("unknown team in depth chart, skipping",
				zap.String("team_uuid", team.ID))
			continue
		}

		groups := make([]sportradar.DepthPositionGroup, 0, 32)
		groups = append(groups, team.Offense...)
		groups = append(groups, team.Defense...)
		groups = append(groups, team.SpecialTeams...)

		for _, group := range groups {
			alignment := group.Position.Name
			for _, player := range group.Position.Players {
				playerID, err := s.players.Upsert(ctx, refdata.PlayerDraft{
					UUID:     player.ID,
					Name:     player.Name,
					TeamUUID: team.ID,
					Position: player.Position,
					Jersey:   player.Jersey,
				})
				if err != nil {
					s.logger.Error("upsert charted player",
						zap.String("player_uuid", player.ID),
						zap.Error(err))
					continue
				}

				rank := -1
				if player.Depth != nil {
					rank = *player.Depth
				} else {
					s.logger.Warn("player has no depth, defaulting rank",
						zap.String("player_name", player.Name),
						zap.String("player_uuid", player.ID))
				}

				if err := s.depthCharts.Insert(ctx, refdata.DepthChartEntry{
					TeamID:     teamID,
					SeasonYear: year,
					Week:       week,
					PlayerID:   playerID,
					Position:   player.Position,
					Alignment:  alignment,
					Rank:       rank,
				}); err != nil {
					s.logger.Error("insert depth chart entry",
						zap.String("player_uuid", player.ID),
						zap.Error(err))
					continue
				}
				inserted++
			}
		}
	}

	s.logger.Info("depth charts loaded",
		zap.Int("year", year),
		zap.Int("week", week),
		zap.Int("entries", inserted))
	return inserted, nil
}
